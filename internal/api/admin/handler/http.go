package adminHandler

import (
	adminService "inkwell/internal/api/admin/service"
	"inkwell/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AdminHandler struct {
	log          *logrus.Logger
	adminService adminService.AdminService
	validator    *validator.Validate
	middleware   middleware.Middleware
}

func New(
	log *logrus.Logger,
	as adminService.AdminService,
	validate *validator.Validate,
	middleware middleware.Middleware) *AdminHandler {
	return &AdminHandler{
		log:          log,
		adminService: as,
		validator:    validate,
		middleware:   middleware,
	}
}

func (h *AdminHandler) Start(srv fiber.Router) {
	admin := srv.Group("/admin", h.middleware.NewTokenMiddleware, h.middleware.NewAdminMiddleware)
	admin.Get("/stats", h.HandleDashboard)
	admin.Get("/stats/:type", h.HandleDetailedStats)
	admin.Get("/users", h.HandleListUsers)
	admin.Put("/users/:id/role", h.HandleUpdateUserRole)
	admin.Put("/users/:id/status", h.HandleUpdateUserStatus)
	admin.Delete("/users/:id", h.HandleDeleteUser)
	admin.Get("/blogs", h.HandleListBlogs)
	admin.Put("/blogs/:id/status", h.HandleUpdateBlogStatus)
	admin.Delete("/blogs/:id", h.HandleDeleteBlog)
}
