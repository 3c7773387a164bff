package commentHandler

import (
	commentService "inkwell/internal/api/comment/service"
	"inkwell/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CommentHandler struct {
	log            *logrus.Logger
	commentService commentService.CommentService
	validator      *validator.Validate
	middleware     middleware.Middleware
}

func New(
	log *logrus.Logger,
	cs commentService.CommentService,
	validate *validator.Validate,
	middleware middleware.Middleware) *CommentHandler {
	return &CommentHandler{
		log:            log,
		commentService: cs,
		validator:      validate,
		middleware:     middleware,
	}
}

func (h *CommentHandler) Start(srv fiber.Router) {
	comment := srv.Group("/comments")
	comment.Get("/:blogId", h.middleware.NewOptionalTokenMiddleware, h.HandleListByBlog)
	comment.Post("/", h.middleware.NewTokenMiddleware, h.HandleCreateComment)
	comment.Put("/:id", h.middleware.NewTokenMiddleware, h.HandleUpdateComment)
	comment.Delete("/:id", h.middleware.NewTokenMiddleware, h.HandleDeleteComment)
	comment.Post("/:id/like", h.middleware.NewTokenMiddleware, h.HandleToggleLike)
}
