package admin

import "inkwell/pkg/response"

var (
	ErrDatabaseNotReady  = response.NewError(500, "database connection error")
	ErrInvalidStatsType  = response.NewError(400, "invalid stats type")
	ErrInvalidRole       = response.NewError(400, "invalid role, must be one of: user, admin, moderator")
	ErrSelfRoleChange    = response.NewError(400, "you cannot change your own role")
	ErrSelfDelete        = response.NewError(400, "you cannot delete your own account")
	ErrInvalidBlogStatus = response.NewError(400, "invalid blog status")
	ErrUserNotFound      = response.NewError(404, "user not found")
	ErrBlogNotFound      = response.NewError(404, "blog not found")
)
