package comments

import "inkwell/pkg/response"

var (
	ErrCommentNotFound = response.NewError(404, "comment not found")
	ErrCommentNotOwned = response.NewError(403, "comment does not belong to user")
	ErrBlogNotFound    = response.NewError(404, "blog not found")
	ErrCreateComment   = response.NewError(500, "failed to create comment")
	ErrUpdateComment   = response.NewError(500, "failed to update comment")
	ErrDeleteComment   = response.NewError(500, "failed to delete comment")
)
