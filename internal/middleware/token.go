package middleware

import (
	"strings"

	"inkwell/internal/entity"
	jwtPkg "inkwell/pkg/jwt"
	"inkwell/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const (
	AccessTokenSecret = "JWT_ACCESS_TOKEN_SECRET"
)

func (m *middleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")

	if authHeader == "" {
		m.log.WithFields(logrus.Fields{
			"path": ctx.Path(),
		}).Warn("Authorization header is missing")
		return ctx.Status(fiber.StatusUnauthorized).JSON(
			response.Failure("Unauthorized, access token invalid or expired"))
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		m.log.WithFields(logrus.Fields{
			"path": ctx.Path(),
		}).Warn("Authorization header format is invalid")
		return ctx.Status(fiber.StatusUnauthorized).JSON(
			response.Failure("Unauthorized, access token invalid or expired"))
	}

	userToken, err := jwtPkg.VerifyTokenHeader(ctx, AccessTokenSecret)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"path":  ctx.Path(),
			"error": err.Error(),
		}).Warn("Token verification failed")
		return ctx.Status(fiber.StatusUnauthorized).JSON(
			response.Failure("Unauthorized, access token invalid or expired"))
	}

	claims, ok := userToken.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(
			response.Failure("Unauthorized, access token invalid or expired"))
	}

	if claims["id"] == nil || claims["email"] == nil || claims["username"] == nil || claims["role"] == nil {
		m.log.WithFields(logrus.Fields{
			"path": ctx.Path(),
		}).Warn("Token claims are missing required fields")
		return ctx.Status(fiber.StatusUnauthorized).JSON(
			response.Failure("Unauthorized, access token invalid or expired"))
	}

	user := entity.UserLoginData{
		ID:       claims["id"].(string),
		Email:    claims["email"].(string),
		Username: claims["username"].(string),
		Role:     claims["role"].(string),
	}
	ctx.Locals("user", user)

	return ctx.Next()
}

// NewOptionalTokenMiddleware resolves the user when a valid bearer token
// is present but lets anonymous requests through untouched. Public pages
// use it so per-viewer fields still resolve for logged-in readers.
func (m *middleware) NewOptionalTokenMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ctx.Next()
	}

	userToken, err := jwtPkg.VerifyTokenHeader(ctx, AccessTokenSecret)
	if err != nil {
		return ctx.Next()
	}

	claims, ok := userToken.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Next()
	}

	if claims["id"] == nil || claims["email"] == nil || claims["username"] == nil || claims["role"] == nil {
		return ctx.Next()
	}

	ctx.Locals("user", entity.UserLoginData{
		ID:       claims["id"].(string),
		Email:    claims["email"].(string),
		Username: claims["username"].(string),
		Role:     claims["role"].(string),
	})

	return ctx.Next()
}

// NewAdminMiddleware gates admin routes. It assumes NewTokenMiddleware ran
// first and stored the user in locals.
func (m *middleware) NewAdminMiddleware(ctx *fiber.Ctx) error {
	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(
			response.Failure("Unauthorized, access token invalid or expired"))
	}

	if userData.Role != string(entity.RoleAdmin) {
		m.log.WithFields(logrus.Fields{
			"path":    ctx.Path(),
			"user_id": userData.ID,
			"role":    userData.Role,
		}).Warn("Non-admin attempted admin route")
		return ctx.Status(fiber.StatusForbidden).JSON(
			response.Failure("Admin access required"))
	}

	return ctx.Next()
}
