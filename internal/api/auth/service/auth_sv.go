package authService

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"inkwell/internal/api/auth"
	authRepository "inkwell/internal/api/auth/repository"
	"inkwell/internal/entity"
	contextPkg "inkwell/pkg/context"
	"inkwell/pkg/log"
	"inkwell/pkg/redis"

	"golang.org/x/oauth2"
)

func (a *authDomainImpl) Login(c context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	client, err := a.repo.NewClient(false)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	var user entity.User
	if req.Email != "" {
		user, err = client.Users.GetByEmail(c, req.Email)
	} else {
		user, err = client.Users.GetByUsername(c, req.Username)
	}
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidEmailOrPassword
		}
		return auth.TokenResponse{}, err
	}

	if err := a.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidEmailOrPassword
	}

	if !user.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	resp, err := issueTokens(c, a.redisServer, a.utils, user)
	if err != nil {
		a.log.WithFields(log.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"user_id":    user.ID,
		}).Error("failed to issue tokens: ", err)
		return auth.TokenResponse{}, err
	}

	return resp, nil
}

func (a *authDomainImpl) Refresh(c context.Context, req auth.RefreshRequest) (auth.TokenResponse, error) {
	stored, err := a.redisServer.GetRefreshToken(c, req.UserID)
	if err != nil {
		if errors.Is(err, redis.ErrKeyNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidRefreshToken
		}
		return auth.TokenResponse{}, err
	}

	if stored != req.RefreshToken {
		return auth.TokenResponse{}, auth.ErrInvalidRefreshToken
	}

	client, err := a.repo.NewClient(false)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	user, err := client.Users.GetByID(c, req.UserID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	if !user.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	return issueTokens(c, a.redisServer, a.utils, user)
}

func (a *authDomainImpl) LoginGoogle(state string) string {
	return a.googleProvider.GetConfig().AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// LoginWithGoogleProfile finds the user matching the Google account or
// provisions a new one, then issues the usual token pair.
func (a *authDomainImpl) LoginWithGoogleProfile(c context.Context, info auth.UserGoogle) (auth.TokenResponse, error) {
	client, err := a.repo.NewClient(false)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	user, err := client.Users.GetByEmail(c, info.Email)
	if err != nil {
		if !errors.Is(err, auth.ErrUserNotFound) {
			return auth.TokenResponse{}, err
		}

		user, err = a.registerGoogleUser(c, info)
		if err != nil {
			return auth.TokenResponse{}, err
		}
	}

	if !user.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	return issueTokens(c, a.redisServer, a.utils, user)
}

func (a *authDomainImpl) registerGoogleUser(c context.Context, info auth.UserGoogle) (entity.User, error) {
	client, err := a.repo.NewClient(false)
	if err != nil {
		return entity.User{}, err
	}

	username, err := a.uniqueUsername(c, client, info.Email)
	if err != nil {
		return entity.User{}, err
	}

	id, err := a.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return entity.User{}, err
	}

	user := entity.User{
		ID:        id,
		Username:  username,
		Email:     info.Email,
		FirstName: info.GivenName,
		LastName:  info.FamilyName,
		AvatarURL: info.Picture,
		Role:      string(entity.RoleUser),
		Provider:  "google",
		IsActive:  true,
	}

	if err := client.Users.CreateUser(c, user); err != nil {
		return entity.User{}, err
	}

	return client.Users.GetByID(c, user.ID)
}

// uniqueUsername derives a username from the email local part, adding a
// numeric suffix while the candidate is taken.
func (a *authDomainImpl) uniqueUsername(c context.Context, client authRepository.Client, email string) (string, error) {
	base := strings.ToLower(strings.SplitN(email, "@", 2)[0])
	if base == "" {
		base = "user"
	}

	candidate := base
	for i := 1; i <= 50; i++ {
		_, err := client.Users.GetByUsername(c, candidate)
		if errors.Is(err, auth.ErrUserNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		candidate = fmt.Sprintf("%s%d", base, i)
	}

	return "", auth.ErrUsernameAlreadyInUse
}
