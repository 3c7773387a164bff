package authService

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"inkwell/internal/api/auth"
	"inkwell/internal/entity"
	contextPkg "inkwell/pkg/context"
	"inkwell/pkg/log"
)

func (u *userDomainImpl) RegisterUser(c context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	client, err := u.repo.NewClient(false)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	if _, err := client.Users.GetByEmail(c, req.Email); err == nil {
		return auth.TokenResponse{}, auth.ErrEmailAlreadyInUse
	} else if !errors.Is(err, auth.ErrUserNotFound) {
		return auth.TokenResponse{}, err
	}

	if _, err := client.Users.GetByUsername(c, req.Username); err == nil {
		return auth.TokenResponse{}, auth.ErrUsernameAlreadyInUse
	} else if !errors.Is(err, auth.ErrUserNotFound) {
		return auth.TokenResponse{}, err
	}

	hashed, err := u.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	id, err := u.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return auth.TokenResponse{}, err
	}

	user := entity.User{
		ID:        id,
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      string(entity.RoleUser),
		Provider:  "local",
		IsActive:  true,
	}

	if err := client.Users.CreateUser(c, user); err != nil {
		u.log.WithFields(log.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"email":      req.Email,
		}).Error("failed to create user: ", err)
		return auth.TokenResponse{}, err
	}

	created, err := client.Users.GetByID(c, user.ID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return issueTokens(c, u.redisServer, u.utils, created)
}

func (u *userDomainImpl) GetByID(c context.Context, id string) (entity.User, error) {
	client, err := u.repo.NewClient(false)
	if err != nil {
		return entity.User{}, err
	}

	return client.Users.GetByID(c, id)
}

func (u *userDomainImpl) UpdateProfile(c context.Context, userID string, req auth.UpdateProfileRequest) (auth.UserResponse, error) {
	client, err := u.repo.NewClient(false)
	if err != nil {
		return auth.UserResponse{}, err
	}

	user := entity.User{
		ID:        userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
	}

	if err := client.Users.UpdateProfile(c, user); err != nil {
		return auth.UserResponse{}, err
	}

	updated, err := client.Users.GetByID(c, userID)
	if err != nil {
		return auth.UserResponse{}, err
	}

	return MakeUserResponse(updated), nil
}

func (u *userDomainImpl) UpdateAvatar(c context.Context, userID string, avatarFile *multipart.FileHeader) (auth.UserResponse, error) {
	if err := u.utils.ValidateImageFile(avatarFile); err != nil {
		return auth.UserResponse{}, err
	}

	avatarURL, err := u.s3Client.UploadFile(avatarFile)
	if err != nil {
		u.log.WithFields(log.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"user_id":    userID,
		}).Error("failed to upload avatar: ", err)
		return auth.UserResponse{}, auth.ErrFailedToUploadFile
	}

	client, err := u.repo.NewClient(false)
	if err != nil {
		return auth.UserResponse{}, err
	}

	if err := client.Users.UpdateAvatar(c, userID, avatarURL); err != nil {
		return auth.UserResponse{}, err
	}

	updated, err := client.Users.GetByID(c, userID)
	if err != nil {
		return auth.UserResponse{}, err
	}

	return MakeUserResponse(updated), nil
}
