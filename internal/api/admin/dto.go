package admin

import (
	"time"

	"inkwell/internal/entity"
	"inkwell/pkg/response"
)

// StatsType enumerates the resources the detailed-stats endpoint can page
// through. Anything else is rejected before a query runs.
type StatsType string

const (
	StatsUsers          StatsType = "users"
	StatsBlogs          StatsType = "blogs"
	StatsPublishedBlogs StatsType = "published-blogs"
	StatsComments       StatsType = "comments"
)

func ParseStatsType(s string) (StatsType, error) {
	switch StatsType(s) {
	case StatsUsers, StatsBlogs, StatsPublishedBlogs, StatsComments:
		return StatsType(s), nil
	}
	return "", ErrInvalidStatsType
}

// UserFilter carries the optional admin user-listing filters. Empty fields
// mean "no filter"; handlers translate the literal "all" to empty before the
// filter reaches the repository.
type UserFilter struct {
	Search string
	Role   string
	// Active is a tri-state: nil means no status filter.
	Active *bool
}

type BlogFilter struct {
	Search   string
	Status   string
	Category string
}

type UpdateUserStatusRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type UpdateBlogStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft published"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Avatar    string    `json:"avatar,omitempty"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type RecentUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthorResponse struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type RecentBlog struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Slug      string         `json:"slug"`
	Status    string         `json:"status"`
	Author    AuthorResponse `json:"author"`
	CreatedAt time.Time      `json:"createdAt"`
}

type BlogResponse struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Slug      string         `json:"slug"`
	Category  string         `json:"category"`
	Status    string         `json:"status"`
	Author    AuthorResponse `json:"author"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type CommentResponse struct {
	ID        string         `json:"id"`
	Content   string         `json:"content"`
	Author    AuthorResponse `json:"author"`
	BlogTitle string         `json:"blogTitle"`
	BlogSlug  string         `json:"blogSlug"`
	CreatedAt time.Time      `json:"createdAt"`
}

type Stats struct {
	TotalUsers     int `json:"totalUsers"`
	TotalBlogs     int `json:"totalBlogs"`
	PublishedBlogs int `json:"publishedBlogs"`
	DraftBlogs     int `json:"draftBlogs"`
	TotalComments  int `json:"totalComments"`
}

type RecentActivity struct {
	Users []RecentUser `json:"users"`
	Blogs []RecentBlog `json:"blogs"`
}

type DashboardResponse struct {
	Stats          Stats          `json:"stats"`
	RecentActivity RecentActivity `json:"recentActivity"`
}

type DetailedStatsResponse struct {
	Items      interface{}         `json:"items"`
	Pagination response.Pagination `json:"pagination"`
	Type       StatsType           `json:"type"`
}

type UserListResponse struct {
	Users      []UserResponse      `json:"users"`
	Pagination response.Pagination `json:"pagination"`
}

type BlogListResponse struct {
	Blogs      []BlogResponse      `json:"blogs"`
	Pagination response.Pagination `json:"pagination"`
}

func MakeUserResponse(u entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Avatar:    u.AvatarURL,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func MakeBlogResponse(b entity.BlogWithAuthor) BlogResponse {
	return BlogResponse{
		ID:       b.ID,
		Title:    b.Title,
		Slug:     b.Slug,
		Category: b.Category,
		Status:   b.Status,
		Author: AuthorResponse{
			Username:  b.AuthorUsername,
			FirstName: b.AuthorFirstName,
			LastName:  b.AuthorLastName,
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func MakeCommentResponse(c entity.CommentWithRefs) CommentResponse {
	return CommentResponse{
		ID:      c.ID,
		Content: c.Content,
		Author: AuthorResponse{
			Username:  c.AuthorUsername,
			FirstName: c.AuthorFirstName,
			LastName:  c.AuthorLastName,
		},
		BlogTitle: c.BlogTitle,
		BlogSlug:  c.BlogSlug,
		CreatedAt: c.CreatedAt,
	}
}
