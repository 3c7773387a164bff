package adminService

import (
	"context"

	"inkwell/internal/api/admin"
	adminRepository "inkwell/internal/api/admin/repository"
	"inkwell/internal/entity"

	"github.com/sirupsen/logrus"
)

type AdminService interface {
	Stats() StatsDomain
	Moderation() ModerationDomain
}

type StatsDomain interface {
	Dashboard(c context.Context) (admin.DashboardResponse, error)
	DetailedStats(c context.Context, statsType string, page, limit int) (admin.DetailedStatsResponse, error)
}

type ModerationDomain interface {
	ListUsers(c context.Context, filter admin.UserFilter, page, limit int) (admin.UserListResponse, error)
	UpdateUserRole(c context.Context, actor entity.UserLoginData, id string, role string) (admin.UserResponse, error)
	UpdateUserStatus(c context.Context, actor entity.UserLoginData, id string, isActive bool) (admin.UserResponse, error)
	DeleteUser(c context.Context, actor entity.UserLoginData, id string) error
	ListBlogs(c context.Context, filter admin.BlogFilter, page, limit int) (admin.BlogListResponse, error)
	UpdateBlogStatus(c context.Context, id string, status string) (admin.BlogResponse, error)
	DeleteBlog(c context.Context, id string) error
}

type adminService struct {
	log             *logrus.Logger
	adminRepository adminRepository.Repository

	statsDomain      StatsDomain
	moderationDomain ModerationDomain
}

func (s *adminService) Stats() StatsDomain {
	return s.statsDomain
}

func (s *adminService) Moderation() ModerationDomain {
	return s.moderationDomain
}

type statsDomainImpl struct {
	log  *logrus.Logger
	repo adminRepository.Repository
}

type moderationDomainImpl struct {
	log  *logrus.Logger
	repo adminRepository.Repository
}

func New(log *logrus.Logger, adminRepo adminRepository.Repository) AdminService {
	return &adminService{
		log:             log,
		adminRepository: adminRepo,

		statsDomain:      &statsDomainImpl{log: log, repo: adminRepo},
		moderationDomain: &moderationDomainImpl{log: log, repo: adminRepo},
	}
}
