package users

import "inkwell/pkg/response"

var (
	ErrUserNotFound       = response.NewError(404, "user not found")
	ErrSelfFollow         = response.NewError(400, "you cannot follow yourself")
	ErrUpdateProfile      = response.NewError(500, "failed to update profile")
	ErrInvalidFileType    = response.NewError(400, "invalid file type")
	ErrFileTooLarge       = response.NewError(400, "file too large")
	ErrFailedToUploadFile = response.NewError(500, "failed to upload file")
)
