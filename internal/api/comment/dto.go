package comments

import (
	"time"

	"inkwell/internal/entity"
)

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
	BlogID  string `json:"blogId" validate:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

type AuthorResponse struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Avatar    string `json:"avatar,omitempty"`
}

type CommentResponse struct {
	ID        string         `json:"id"`
	Content   string         `json:"content"`
	BlogID    string         `json:"blogId"`
	Author    AuthorResponse `json:"author"`
	Likes     int            `json:"likes"`
	Liked     bool           `json:"liked"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
}

type LikeResponse struct {
	Liked bool `json:"liked"`
	Likes int  `json:"likes"`
}

func MakeCommentResponse(c entity.CommentWithRefs) CommentResponse {
	return CommentResponse{
		ID:      c.ID,
		Content: c.Content,
		BlogID:  c.Blog,
		Author: AuthorResponse{
			Username:  c.AuthorUsername,
			FirstName: c.AuthorFirstName,
			LastName:  c.AuthorLastName,
			Avatar:    c.AuthorAvatarURL,
		},
		Likes:     c.LikeCount,
		Liked:     c.LikedByUser,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
