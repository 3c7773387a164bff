package blogHandler

import (
	blogService "inkwell/internal/api/blog/service"
	"inkwell/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BlogHandler struct {
	log         *logrus.Logger
	blogService blogService.BlogService
	validator   *validator.Validate
	middleware  middleware.Middleware
}

func New(
	log *logrus.Logger,
	bs blogService.BlogService,
	validate *validator.Validate,
	middleware middleware.Middleware) *BlogHandler {
	return &BlogHandler{
		log:         log,
		blogService: bs,
		validator:   validate,
		middleware:  middleware,
	}
}

func (h *BlogHandler) Start(srv fiber.Router) {
	blog := srv.Group("/blogs")
	blog.Get("/", h.middleware.NewOptionalTokenMiddleware, h.HandleListBlogs)
	blog.Post("/", h.middleware.NewTokenMiddleware, h.HandleCreateBlog)
	blog.Post("/upload", h.middleware.NewTokenMiddleware, h.HandleUploadImage)
	blog.Get("/my-blogs", h.middleware.NewTokenMiddleware, h.HandleMyBlogs)
	blog.Get("/edit/:id", h.middleware.NewTokenMiddleware, h.HandleGetForEdit)
	blog.Get("/:slug", h.middleware.NewOptionalTokenMiddleware, h.HandleGetBySlug)
	blog.Put("/:id", h.middleware.NewTokenMiddleware, h.HandleUpdateBlog)
	blog.Delete("/:id", h.middleware.NewTokenMiddleware, h.HandleDeleteBlog)
	blog.Post("/:id/like", h.middleware.NewTokenMiddleware, h.HandleToggleLike)
}
