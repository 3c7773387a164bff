package authHandler

import (
	authService "inkwell/internal/api/auth/service"
	"inkwell/internal/middleware"
	"inkwell/pkg/google"
	"inkwell/pkg/redis"
	"inkwell/pkg/s3"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	log            *logrus.Logger
	authService    authService.AuthService
	validator      *validator.Validate
	middleware     middleware.Middleware
	googleProvider google.ItfGoogle
	redisServer    redis.IRedis
	s3Client       s3.ItfS3
}

func New(
	log *logrus.Logger,
	as authService.AuthService,
	validate *validator.Validate,
	middleware middleware.Middleware,
	googleProvider google.ItfGoogle,
	redisServer redis.IRedis,
	s3Client s3.ItfS3) *AuthHandler {
	return &AuthHandler{
		log:            log,
		authService:    as,
		validator:      validate,
		middleware:     middleware,
		googleProvider: googleProvider,
		redisServer:    redisServer,
		s3Client:       s3Client,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	auth := srv.Group("/auth")
	auth.Post("/register", h.HandleRegister)
	auth.Post("/login", h.HandleLogin)
	auth.Post("/refresh", h.HandleRefresh)
	auth.Post("/logout", h.middleware.NewTokenMiddleware, h.HandleLogout)
	auth.Get("/me", h.middleware.NewTokenMiddleware, h.HandleMe)
	auth.Get("/google", h.HandleGoogleLogin)
	auth.Get("/google/callback", h.CallBackFromGoogle)
	auth.Put("/profile", h.middleware.NewTokenMiddleware, h.HandleUpdateProfile)
	auth.Post("/avatar", h.middleware.NewTokenMiddleware, h.HandleUpdateAvatar)
}
