package blogs

import (
	"time"

	"inkwell/internal/entity"
	"inkwell/pkg/response"
)

type CreateBlogRequest struct {
	Title    string `json:"title" form:"title" validate:"required,min=3,max=256"`
	Content  string `json:"content" form:"content" validate:"required"`
	Excerpt  string `json:"excerpt" form:"excerpt" validate:"omitempty,max=500"`
	Category string `json:"category" form:"category" validate:"required,max=64"`
	Status   string `json:"status" form:"status" validate:"omitempty,oneof=draft published"`
	ImageURL string `json:"imageUrl" form:"imageUrl" validate:"omitempty"`
}

type UpdateBlogRequest struct {
	Title    string `json:"title" form:"title" validate:"omitempty,min=3,max=256"`
	Content  string `json:"content" form:"content" validate:"omitempty"`
	Excerpt  string `json:"excerpt" form:"excerpt" validate:"omitempty,max=500"`
	Category string `json:"category" form:"category" validate:"omitempty,max=64"`
	Status   string `json:"status" form:"status" validate:"omitempty,oneof=draft published"`
	ImageURL string `json:"imageUrl" form:"imageUrl" validate:"omitempty"`
}

// ListFilter carries the optional query filters for blog listings. Empty
// fields mean "no filter".
type ListFilter struct {
	Search   string
	Category string
	Status   string
	Author   string
}

type AuthorResponse struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Avatar    string `json:"avatar,omitempty"`
}

type BlogResponse struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Slug      string         `json:"slug"`
	Content   string         `json:"content,omitempty"`
	Excerpt   string         `json:"excerpt"`
	Category  string         `json:"category"`
	ImageURL  string         `json:"imageUrl"`
	Status    string         `json:"status"`
	Author    AuthorResponse `json:"author"`
	Likes     int            `json:"likes"`
	Liked     bool           `json:"liked"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type BlogListResponse struct {
	Blogs      []BlogResponse      `json:"blogs"`
	Pagination response.Pagination `json:"pagination"`
}

type LikeResponse struct {
	Liked bool `json:"liked"`
	Likes int  `json:"likes"`
}

type UploadResponse struct {
	URL string `json:"url"`
}

func MakeBlogResponse(b entity.BlogWithAuthor) BlogResponse {
	return BlogResponse{
		ID:       b.ID,
		Title:    b.Title,
		Slug:     b.Slug,
		Content:  b.Content,
		Excerpt:  b.Excerpt,
		Category: b.Category,
		ImageURL: b.ImageURL,
		Status:   b.Status,
		Author: AuthorResponse{
			Username:  b.AuthorUsername,
			FirstName: b.AuthorFirstName,
			LastName:  b.AuthorLastName,
			Avatar:    b.AuthorAvatarURL,
		},
		Likes:     b.LikeCount,
		Liked:     b.LikedByUser,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
