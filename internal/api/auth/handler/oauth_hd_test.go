package authHandler

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"inkwell/internal/api/auth"
	authRepository "inkwell/internal/api/auth/repository"
	authService "inkwell/internal/api/auth/service"
	"inkwell/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type fakeGoogleProvider struct {
	body []byte
	err  error

	exchangedCode string
}

func (f *fakeGoogleProvider) GetUserExchangeToken(c *fiber.Ctx, code string) ([]byte, error) {
	f.exchangedCode = code
	return f.body, f.err
}

func (f *fakeGoogleProvider) GetConfig() *oauth2.Config { return nil }

type fakeAuthDomain struct {
	token auth.TokenResponse
	err   error

	profile auth.UserGoogle
}

func (f *fakeAuthDomain) Login(c context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	return auth.TokenResponse{}, nil
}

func (f *fakeAuthDomain) Refresh(c context.Context, req auth.RefreshRequest) (auth.TokenResponse, error) {
	return auth.TokenResponse{}, nil
}

func (f *fakeAuthDomain) LoginGoogle(state string) string {
	return "https://accounts.google.com/o/oauth2/auth?state=" + state
}

func (f *fakeAuthDomain) LoginWithGoogleProfile(c context.Context, info auth.UserGoogle) (auth.TokenResponse, error) {
	f.profile = info
	return f.token, f.err
}

type fakeAuthService struct {
	domain *fakeAuthDomain
}

func (s *fakeAuthService) User() authService.UserDomain             { return nil }
func (s *fakeAuthService) Auth() authService.AuthDomain             { return s.domain }
func (s *fakeAuthService) GetRepository() authRepository.Repository { return nil }

func newOAuthTestApp(t *testing.T, provider *fakeGoogleProvider, domain *fakeAuthDomain) *fiber.App {
	t.Helper()
	t.Setenv("GOOGLE_STATE", "state-123")
	t.Setenv("FRONTEND_URL", "http://localhost:5173")

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	handler := New(log, &fakeAuthService{domain: domain}, validator.New(), middleware.New(log), provider, nil, nil)

	app := fiber.New()
	app.Get("/auth/google/callback", handler.CallBackFromGoogle)

	return app
}

func TestCallBackFromGoogle(t *testing.T) {
	t.Run("exchanges the code and redirects with a token", func(t *testing.T) {
		provider := &fakeGoogleProvider{body: []byte(`{"id":"g1","email":"gina@example.com","given_name":"Gina"}`)}
		domain := &fakeAuthDomain{token: auth.TokenResponse{AccessToken: "tok-123"}}
		app := newOAuthTestApp(t, provider, domain)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/auth/google/callback?state=state-123&code=abc", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusTemporaryRedirect, resp.StatusCode)
		require.Equal(t, "http://localhost:5173/oauth/callback?token=tok-123", resp.Header.Get(fiber.HeaderLocation))

		require.Equal(t, "abc", provider.exchangedCode)
		require.Equal(t, "gina@example.com", domain.profile.Email)
	})

	t.Run("failed exchange redirects with an error", func(t *testing.T) {
		provider := &fakeGoogleProvider{err: errors.New("exchange refused")}
		app := newOAuthTestApp(t, provider, &fakeAuthDomain{})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/auth/google/callback?state=state-123&code=abc", nil))
		require.NoError(t, err)
		require.Equal(t, "http://localhost:5173/oauth/callback?error=exchange_failed", resp.Header.Get(fiber.HeaderLocation))
	})

	t.Run("mismatched state never reaches the provider", func(t *testing.T) {
		provider := &fakeGoogleProvider{}
		app := newOAuthTestApp(t, provider, &fakeAuthDomain{})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/auth/google/callback?state=forged&code=abc", nil))
		require.NoError(t, err)
		require.Equal(t, "http://localhost:5173/oauth/callback?error=invalid_state", resp.Header.Get(fiber.HeaderLocation))
		require.Empty(t, provider.exchangedCode)
	})

	t.Run("user denial carries the reason through", func(t *testing.T) {
		app := newOAuthTestApp(t, &fakeGoogleProvider{}, &fakeAuthDomain{})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/auth/google/callback?state=state-123&error=access_denied", nil))
		require.NoError(t, err)
		require.Equal(t, "http://localhost:5173/oauth/callback?error=access_denied", resp.Header.Get(fiber.HeaderLocation))
	})
}
