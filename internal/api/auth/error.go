package auth

import "inkwell/pkg/response"

var (
	ErrUserNotFound           = response.NewError(404, "user not found")
	ErrInvalidEmailOrPassword = response.NewError(400, "invalid email or password")
	ErrEmailAlreadyInUse      = response.NewError(409, "email already in use")
	ErrUsernameAlreadyInUse   = response.NewError(409, "username already in use")
	ErrAccountInactive        = response.NewError(403, "account is deactivated")
	ErrInvalidRefreshToken    = response.NewError(401, "invalid or expired refresh token")
	ErrInvalidFileType        = response.NewError(400, "invalid file type")
	ErrFileTooLarge           = response.NewError(400, "file too large")
	ErrFailedToUploadFile     = response.NewError(500, "failed to upload file")
	ErrOAuthDenied            = response.NewError(401, "access denied by user")
)
