package client

import (
	"net/url"
	"sync"

	"inkwell/internal/api/auth"
	"inkwell/internal/entity"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type State string

const (
	StateAnonymous     State = "anonymous"
	StateLoading       State = "loading"
	StateAuthenticated State = "authenticated"
	StateError         State = "error"
)

type Route string

const (
	RouteHome  Route = "/"
	RouteAdmin Route = "/admin"
	RouteLogin Route = "/login"
)

// Session tracks who is logged in on this client. State moves anonymous
// → loading → authenticated or error; any auth failure lands back on
// anonymous with the stored token gone.
type Session struct {
	mu    sync.Mutex
	state State
	user  auth.UserResponse

	api *API
	log *logrus.Logger
}

func NewSession(api *API, log *logrus.Logger) *Session {
	return &Session{
		state: StateAnonymous,
		api:   api,
		log:   log,
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) User() auth.UserResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Bootstrap resolves a stored token into a session on startup. Without a
// token the session stays anonymous and no request is made.
func (s *Session) Bootstrap(ctx context.Context) error {
	token, err := s.api.tokens.Load()
	if err != nil {
		return err
	}
	if token == "" {
		s.setState(StateAnonymous, auth.UserResponse{})
		return nil
	}

	s.setState(StateLoading, auth.UserResponse{})

	user, err := s.api.Me(ctx)
	if err != nil {
		s.setState(StateAnonymous, auth.UserResponse{})
		return err
	}

	s.setState(StateAuthenticated, user)
	return nil
}

func (s *Session) Login(ctx context.Context, req auth.LoginRequest) error {
	s.setState(StateLoading, auth.UserResponse{})

	res, err := s.api.Login(ctx, req)
	if err != nil {
		s.setState(StateError, auth.UserResponse{})
		return err
	}

	s.setState(StateAuthenticated, res.User)
	return nil
}

func (s *Session) Register(ctx context.Context, req auth.RegisterRequest) error {
	s.setState(StateLoading, auth.UserResponse{})

	res, err := s.api.Register(ctx, req)
	if err != nil {
		s.setState(StateError, auth.UserResponse{})
		return err
	}

	s.setState(StateAuthenticated, res.User)
	return nil
}

func (s *Session) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		s.log.Warn("logout request failed: ", err)
	}
	s.setState(StateAnonymous, auth.UserResponse{})
}

// HandleOAuthCallback finishes the Google handoff. It parses the token
// or error the backend appended to the callback URL, resolves the user
// and answers with the route the client should land on.
func (s *Session) HandleOAuthCallback(ctx context.Context, rawURL string) (Route, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		s.setState(StateError, auth.UserResponse{})
		return RouteLogin, err
	}

	query := parsed.Query()
	if reason := query.Get("error"); reason != "" {
		s.setState(StateError, auth.UserResponse{})
		return RouteLogin, &OAuthError{Reason: reason}
	}

	token := query.Get("token")
	if token == "" {
		s.setState(StateError, auth.UserResponse{})
		return RouteLogin, &OAuthError{Reason: "missing_token"}
	}

	if err := s.api.tokens.Save(token); err != nil {
		s.setState(StateError, auth.UserResponse{})
		return RouteLogin, err
	}

	s.setState(StateLoading, auth.UserResponse{})

	user, err := s.api.Me(ctx)
	if err != nil {
		s.setState(StateAnonymous, auth.UserResponse{})
		return RouteLogin, err
	}

	s.setState(StateAuthenticated, user)

	if user.Role == string(entity.RoleAdmin) {
		return RouteAdmin, nil
	}
	return RouteHome, nil
}

func (s *Session) setState(state State, user auth.UserResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.user = user
}

type OAuthError struct {
	Reason string
}

func (e *OAuthError) Error() string {
	return "oauth login failed: " + e.Reason
}
