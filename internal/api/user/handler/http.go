package userHandler

import (
	authService "inkwell/internal/api/auth/service"
	userService "inkwell/internal/api/user/service"
	"inkwell/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	log         *logrus.Logger
	userService userService.UserService
	authService authService.AuthService
	validator   *validator.Validate
	middleware  middleware.Middleware
}

func New(
	log *logrus.Logger,
	us userService.UserService,
	as authService.AuthService,
	validate *validator.Validate,
	middleware middleware.Middleware) *UserHandler {
	return &UserHandler{
		log:         log,
		userService: us,
		authService: as,
		validator:   validate,
		middleware:  middleware,
	}
}

func (h *UserHandler) Start(srv fiber.Router) {
	user := srv.Group("/users")
	user.Put("/profile", h.middleware.NewTokenMiddleware, h.HandleUpdateProfile)
	user.Get("/:username", h.middleware.NewOptionalTokenMiddleware, h.HandleGetProfile)
	user.Post("/:id/follow", h.middleware.NewTokenMiddleware, h.HandleToggleFollow)
	user.Get("/:id/followers", h.HandleFollowers)
	user.Get("/:id/following", h.HandleFollowing)
}
