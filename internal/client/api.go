package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"inkwell/internal/api/auth"
	"inkwell/pkg/response"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

var (
	ErrUnauthorized = fmt.Errorf("unauthorized")
	ErrNoToken      = fmt.Errorf("no stored token")
)

// API is the thin REST client the session layer drives. Every request
// carries the stored bearer token when one exists; a 401 clears it.
type API struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStore
	log        *logrus.Logger
}

func NewAPI(baseURL string, tokens TokenStore, log *logrus.Logger) *API {
	return &API{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		tokens:     tokens,
		log:        log,
	}
}

func (a *API) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	var res auth.TokenResponse
	if err := a.do(ctx, http.MethodPost, "/auth/login", req, &res); err != nil {
		return auth.TokenResponse{}, err
	}
	if err := a.tokens.Save(res.AccessToken); err != nil {
		return auth.TokenResponse{}, err
	}
	return res, nil
}

func (a *API) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	var res auth.TokenResponse
	if err := a.do(ctx, http.MethodPost, "/auth/register", req, &res); err != nil {
		return auth.TokenResponse{}, err
	}
	if err := a.tokens.Save(res.AccessToken); err != nil {
		return auth.TokenResponse{}, err
	}
	return res, nil
}

func (a *API) Me(ctx context.Context) (auth.UserResponse, error) {
	var res auth.UserResponse
	if err := a.do(ctx, http.MethodGet, "/auth/me", nil, &res); err != nil {
		return auth.UserResponse{}, err
	}
	return res, nil
}

func (a *API) Logout(ctx context.Context) error {
	err := a.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	if clearErr := a.tokens.Clear(); clearErr != nil {
		return clearErr
	}
	return err
}

func (a *API) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	token, err := a.tokens.Load()
	if err != nil {
		return err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// A rejected token is useless; drop it so the session falls
		// back to anonymous.
		if err := a.tokens.Clear(); err != nil {
			a.log.Warn("failed to clear stored token: ", err)
		}
		return ErrUnauthorized
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var envelope struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
		Detail  string          `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("malformed response: %w", err)
	}

	if !envelope.Success {
		message := envelope.Message
		if message == "" {
			message = envelope.Detail
		}
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return &response.Error{Code: resp.StatusCode, Err: fmt.Errorf("%s", message)}
	}

	if out != nil && len(envelope.Data) > 0 {
		return json.Unmarshal(envelope.Data, out)
	}

	return nil
}
