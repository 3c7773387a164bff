package adminService

import (
	"context"

	"inkwell/internal/api/admin"
	"inkwell/internal/entity"
	contextPkg "inkwell/pkg/context"
	"inkwell/pkg/log"
	"inkwell/pkg/response"
)

func (s *moderationDomainImpl) ListUsers(c context.Context, filter admin.UserFilter, page, limit int) (admin.UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	client, err := s.repo.NewClient(false)
	if err != nil {
		return admin.UserListResponse{}, err
	}

	list, total, err := client.Users.List(c, filter, limit, (page-1)*limit)
	if err != nil {
		return admin.UserListResponse{}, err
	}

	users := make([]admin.UserResponse, 0, len(list))
	for _, u := range list {
		users = append(users, admin.MakeUserResponse(u))
	}

	return admin.UserListResponse{
		Users:      users,
		Pagination: response.NewPagination(page, limit, total),
	}, nil
}

// UpdateUserRole rejects unknown roles and admins changing their own.
func (s *moderationDomainImpl) UpdateUserRole(c context.Context, actor entity.UserLoginData, id string, role string) (admin.UserResponse, error) {
	if !entity.ValidRole(role) {
		return admin.UserResponse{}, admin.ErrInvalidRole
	}

	if actor.ID == id {
		return admin.UserResponse{}, admin.ErrSelfRoleChange
	}

	client, err := s.repo.NewClient(false)
	if err != nil {
		return admin.UserResponse{}, err
	}

	if err := client.Users.UpdateRole(c, id, role); err != nil {
		return admin.UserResponse{}, err
	}

	user, err := client.Users.GetByID(c, id)
	if err != nil {
		return admin.UserResponse{}, err
	}

	return admin.MakeUserResponse(user), nil
}

func (s *moderationDomainImpl) UpdateUserStatus(c context.Context, actor entity.UserLoginData, id string, isActive bool) (admin.UserResponse, error) {
	client, err := s.repo.NewClient(false)
	if err != nil {
		return admin.UserResponse{}, err
	}

	if err := client.Users.UpdateStatus(c, id, isActive); err != nil {
		return admin.UserResponse{}, err
	}

	user, err := client.Users.GetByID(c, id)
	if err != nil {
		return admin.UserResponse{}, err
	}

	return admin.MakeUserResponse(user), nil
}

// DeleteUser removes the user and everything they authored in one
// transaction. Admins cannot delete themselves.
func (s *moderationDomainImpl) DeleteUser(c context.Context, actor entity.UserLoginData, id string) error {
	if actor.ID == id {
		return admin.ErrSelfDelete
	}

	readClient, err := s.repo.NewClient(false)
	if err != nil {
		return err
	}

	if _, err := readClient.Users.GetByID(c, id); err != nil {
		return err
	}

	client, err := s.repo.NewClient(true)
	if err != nil {
		return err
	}

	if err := client.Users.DeleteCascade(c, id); err != nil {
		_ = client.Rollback()
		return err
	}

	if err := client.Commit(); err != nil {
		s.log.WithFields(log.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"user_id":    id,
		}).Error("failed to commit user delete: ", err)
		return err
	}

	return nil
}

func (s *moderationDomainImpl) ListBlogs(c context.Context, filter admin.BlogFilter, page, limit int) (admin.BlogListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	client, err := s.repo.NewClient(false)
	if err != nil {
		return admin.BlogListResponse{}, err
	}

	list, total, err := client.Blogs.List(c, filter, limit, (page-1)*limit)
	if err != nil {
		return admin.BlogListResponse{}, err
	}

	blogsList := make([]admin.BlogResponse, 0, len(list))
	for _, b := range list {
		blogsList = append(blogsList, admin.MakeBlogResponse(b))
	}

	return admin.BlogListResponse{
		Blogs:      blogsList,
		Pagination: response.NewPagination(page, limit, total),
	}, nil
}

func (s *moderationDomainImpl) UpdateBlogStatus(c context.Context, id string, status string) (admin.BlogResponse, error) {
	if !entity.ValidBlogStatus(status) {
		return admin.BlogResponse{}, admin.ErrInvalidBlogStatus
	}

	client, err := s.repo.NewClient(false)
	if err != nil {
		return admin.BlogResponse{}, err
	}

	if err := client.Blogs.UpdateStatus(c, id, status); err != nil {
		return admin.BlogResponse{}, err
	}

	blog, err := client.Blogs.GetByID(c, id)
	if err != nil {
		return admin.BlogResponse{}, err
	}

	return admin.MakeBlogResponse(blog), nil
}

func (s *moderationDomainImpl) DeleteBlog(c context.Context, id string) error {
	readClient, err := s.repo.NewClient(false)
	if err != nil {
		return err
	}

	if _, err := readClient.Blogs.GetByID(c, id); err != nil {
		return err
	}

	client, err := s.repo.NewClient(true)
	if err != nil {
		return err
	}

	if err := client.Blogs.DeleteCascade(c, id); err != nil {
		_ = client.Rollback()
		return err
	}

	if err := client.Commit(); err != nil {
		s.log.WithFields(log.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"blog_id":    id,
		}).Error("failed to commit blog delete: ", err)
		return err
	}

	return nil
}
