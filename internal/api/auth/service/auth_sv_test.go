package authService

import (
	"context"
	"errors"
	"testing"
	"time"

	"inkwell/internal/api/auth"
	authRepository "inkwell/internal/api/auth/repository"
	"inkwell/internal/entity"
	"inkwell/pkg/redis"
	utilsPkg "inkwell/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	byID       map[string]entity.User
	byEmail    map[string]entity.User
	byUsername map[string]entity.User
	created    []entity.User
}

func newFakeUsers(users ...entity.User) *fakeUsers {
	f := &fakeUsers{
		byID:       map[string]entity.User{},
		byEmail:    map[string]entity.User{},
		byUsername: map[string]entity.User{},
	}
	for _, u := range users {
		f.put(u)
	}
	return f
}

func (f *fakeUsers) put(u entity.User) {
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	f.byUsername[u.Username] = u
}

func (f *fakeUsers) CreateUser(_ context.Context, user entity.User) error {
	f.created = append(f.created, user)
	f.put(user)
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (entity.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return entity.User{}, auth.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (entity.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return entity.User{}, auth.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (entity.User, error) {
	u, ok := f.byUsername[username]
	if !ok {
		return entity.User{}, auth.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUsers) UpdateProfile(_ context.Context, user entity.User) error {
	existing, ok := f.byID[user.ID]
	if !ok {
		return auth.ErrUserNotFound
	}
	if user.FirstName != "" {
		existing.FirstName = user.FirstName
	}
	if user.LastName != "" {
		existing.LastName = user.LastName
	}
	if user.Bio != "" {
		existing.Bio = user.Bio
	}
	f.put(existing)
	return nil
}

func (f *fakeUsers) UpdateAvatar(_ context.Context, id string, avatarURL string) error {
	existing, ok := f.byID[id]
	if !ok {
		return auth.ErrUserNotFound
	}
	existing.AvatarURL = avatarURL
	f.put(existing)
	return nil
}

type fakeAuthRepo struct {
	users *fakeUsers
}

func (f *fakeAuthRepo) NewClient(bool) (authRepository.Client, error) {
	return authRepository.Client{
		Users:    f.users,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeBcrypt struct{}

func (fakeBcrypt) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeBcrypt) ComparePassword(hashPassword string, password string) error {
	if hashPassword != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type fakeRedis struct {
	tokens map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{tokens: map[string]string{}}
}

func (f *fakeRedis) SetRefreshToken(_ context.Context, userID, token string, _ time.Duration) error {
	f.tokens[userID] = token
	return nil
}

func (f *fakeRedis) GetRefreshToken(_ context.Context, userID string) (string, error) {
	token, ok := f.tokens[userID]
	if !ok {
		return "", redis.ErrKeyNotFound
	}
	return token, nil
}

func (f *fakeRedis) DeleteRefreshToken(_ context.Context, userID string) error {
	delete(f.tokens, userID)
	return nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func activeUser() entity.User {
	return entity.User{
		ID:       "01J0USER0000000000000000AA",
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "hashed:s3cret-pass",
		Role:     string(entity.RoleUser),
		Provider: "local",
		IsActive: true,
	}
}

func newTestService(t *testing.T, users *fakeUsers, redisServer *fakeRedis) AuthService {
	t.Helper()
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")
	return New(testLogger(), &fakeAuthRepo{users: users}, nil, redisServer, nil, fakeBcrypt{}, utilsPkg.New())
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name    string
		req     auth.LoginRequest
		user    entity.User
		wantErr error
	}{
		{
			name:    "wrong password",
			req:     auth.LoginRequest{Email: "jdoe@example.com", Password: "wrong"},
			user:    activeUser(),
			wantErr: auth.ErrInvalidEmailOrPassword,
		},
		{
			name:    "unknown email",
			req:     auth.LoginRequest{Email: "nobody@example.com", Password: "s3cret-pass"},
			user:    activeUser(),
			wantErr: auth.ErrInvalidEmailOrPassword,
		},
		{
			name: "inactive account",
			req:  auth.LoginRequest{Email: "jdoe@example.com", Password: "s3cret-pass"},
			user: func() entity.User {
				u := activeUser()
				u.IsActive = false
				return u
			}(),
			wantErr: auth.ErrAccountInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, newFakeUsers(tt.user), newFakeRedis())

			_, err := svc.Auth().Login(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoginSuccess(t *testing.T) {
	redisServer := newFakeRedis()
	svc := newTestService(t, newFakeUsers(activeUser()), redisServer)

	res, err := svc.Auth().Login(context.Background(), auth.LoginRequest{
		Email:    "jdoe@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken)
	require.NotEmpty(t, res.RefreshToken)
	require.Equal(t, "jdoe", res.User.Username)

	stored, err := redisServer.GetRefreshToken(context.Background(), res.User.ID)
	require.NoError(t, err)
	require.Equal(t, res.RefreshToken, stored)
}

func TestLoginByUsername(t *testing.T) {
	svc := newTestService(t, newFakeUsers(activeUser()), newFakeRedis())

	res, err := svc.Auth().Login(context.Background(), auth.LoginRequest{
		Username: "jdoe",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	require.Equal(t, "jdoe@example.com", res.User.Email)
}

func TestRegisterDuplicates(t *testing.T) {
	existing := activeUser()

	tests := []struct {
		name    string
		req     auth.RegisterRequest
		wantErr error
	}{
		{
			name:    "duplicate email",
			req:     auth.RegisterRequest{Username: "other", Email: "jdoe@example.com", Password: "password1"},
			wantErr: auth.ErrEmailAlreadyInUse,
		},
		{
			name:    "duplicate username",
			req:     auth.RegisterRequest{Username: "jdoe", Email: "new@example.com", Password: "password1"},
			wantErr: auth.ErrUsernameAlreadyInUse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, newFakeUsers(existing), newFakeRedis())

			_, err := svc.User().RegisterUser(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegisterCreatesActiveUser(t *testing.T) {
	users := newFakeUsers()
	svc := newTestService(t, users, newFakeRedis())

	res, err := svc.User().RegisterUser(context.Background(), auth.RegisterRequest{
		Username:  "newbie",
		Email:     "newbie@example.com",
		Password:  "password1",
		FirstName: "New",
	})
	require.NoError(t, err)
	require.Len(t, users.created, 1)
	require.True(t, users.created[0].IsActive)
	require.Equal(t, string(entity.RoleUser), users.created[0].Role)
	require.Equal(t, "local", users.created[0].Provider)
	require.Equal(t, "newbie", res.User.Username)
}

func TestRefresh(t *testing.T) {
	user := activeUser()
	redisServer := newFakeRedis()
	redisServer.tokens[user.ID] = "stored-refresh"
	svc := newTestService(t, newFakeUsers(user), redisServer)

	t.Run("mismatched token", func(t *testing.T) {
		_, err := svc.Auth().Refresh(context.Background(), auth.RefreshRequest{
			UserID:       user.ID,
			RefreshToken: "not-the-one",
		})
		require.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Auth().Refresh(context.Background(), auth.RefreshRequest{
			UserID:       "missing",
			RefreshToken: "whatever",
		})
		require.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
	})

	t.Run("rotates the stored token", func(t *testing.T) {
		res, err := svc.Auth().Refresh(context.Background(), auth.RefreshRequest{
			UserID:       user.ID,
			RefreshToken: "stored-refresh",
		})
		require.NoError(t, err)
		require.NotEqual(t, "stored-refresh", res.RefreshToken)
		require.Equal(t, res.RefreshToken, redisServer.tokens[user.ID])
	})
}

func TestLoginWithGoogleProfileProvisionsUser(t *testing.T) {
	users := newFakeUsers()
	svc := newTestService(t, users, newFakeRedis())

	res, err := svc.Auth().LoginWithGoogleProfile(context.Background(), auth.UserGoogle{
		Email:      "gina@example.com",
		GivenName:  "Gina",
		FamilyName: "Doe",
	})
	require.NoError(t, err)
	require.Len(t, users.created, 1)
	require.Equal(t, "google", users.created[0].Provider)
	require.Equal(t, "gina", users.created[0].Username)
	require.Equal(t, "gina", res.User.Username)
}
