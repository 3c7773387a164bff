package authHandler

import (
	"encoding/json"
	"net/url"
	"os"
	"time"

	"inkwell/internal/api/auth"
	contextPkg "inkwell/pkg/context"
	"inkwell/pkg/handlerUtil"
	"inkwell/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *AuthHandler) HandleGoogleLogin(ctx *fiber.Ctx) error {
	_ = h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	authURL := h.authService.Auth().LoginGoogle(os.Getenv("GOOGLE_STATE"))

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return ctx.Redirect(authURL, fiber.StatusTemporaryRedirect)
	}
}

// CallBackFromGoogle finishes the OAuth handoff. The browser always ends
// up back on the frontend callback page, carrying either a token or an
// error query parameter.
func (h *AuthHandler) CallBackFromGoogle(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	state := ctx.FormValue("state")
	if state != os.Getenv("GOOGLE_STATE") {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"state":      state,
			"path":       ctx.Path(),
		}).Warn("Invalid state parameter")
		return h.redirectWithError(ctx, "invalid_state")
	}

	code := ctx.FormValue("code")
	if code == "" {
		reason := ctx.FormValue("error")
		if reason == "" {
			reason = "missing_code"
		}
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"reason":     reason,
			"path":       ctx.Path(),
		}).Info("Google login aborted")
		return h.redirectWithError(ctx, reason)
	}

	body, err := h.googleProvider.GetUserExchangeToken(ctx, code)
	if err != nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
		}).Error("failed to resolve google profile: ", err)
		return h.redirectWithError(ctx, "exchange_failed")
	}

	var userInfo auth.UserGoogle
	if err := json.Unmarshal(body, &userInfo); err != nil {
		return h.redirectWithError(ctx, "userinfo_failed")
	}

	jwtToken, err := h.authService.Auth().LoginWithGoogleProfile(c, userInfo)
	if err != nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"email":      userInfo.Email,
		}).Error("google login failed: ", err)
		return h.redirectWithError(ctx, "login_failed")
	}

	select {
	case <-c.Done():
		return handlerUtil.New(h.log).HandleRequestTimeout(ctx)
	default:
		return ctx.Redirect(frontendCallbackURL()+"?token="+url.QueryEscape(jwtToken.AccessToken), fiber.StatusTemporaryRedirect)
	}
}

func (h *AuthHandler) redirectWithError(ctx *fiber.Ctx, reason string) error {
	return ctx.Redirect(frontendCallbackURL()+"?error="+url.QueryEscape(reason), fiber.StatusTemporaryRedirect)
}

func frontendCallbackURL() string {
	base := os.Getenv("FRONTEND_URL")
	if base == "" {
		base = "http://localhost:5173"
	}
	return base + "/oauth/callback"
}
