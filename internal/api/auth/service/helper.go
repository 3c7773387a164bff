package authService

import (
	"context"
	"time"

	"inkwell/internal/api/auth"
	"inkwell/internal/entity"
	jwtPkg "inkwell/pkg/jwt"
	"inkwell/pkg/redis"
	"inkwell/pkg/utils"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

func MakeUserData(user entity.User) map[string]interface{} {
	return map[string]interface{}{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
	}
}

func MakeUserResponse(user entity.User) auth.UserResponse {
	return auth.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Bio:       user.Bio,
		Avatar:    user.AvatarURL,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

// issueTokens signs an access token for the user and rotates the
// refresh token stored in redis.
func issueTokens(c context.Context, redisServer redis.IRedis, ulidGen utils.IUtils, user entity.User) (auth.TokenResponse, error) {
	token, _, err := jwtPkg.Sign(MakeUserData(user), accessTokenTTL)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	refreshToken, err := ulidGen.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return auth.TokenResponse{}, err
	}

	if err := redisServer.SetRefreshToken(c, user.ID, refreshToken, refreshTokenTTL); err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:      token,
		RefreshToken:     refreshToken,
		ExpiresInMinutes: accessTokenTTL.Minutes(),
		User:             MakeUserResponse(user),
	}, nil
}
