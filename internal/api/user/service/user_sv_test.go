package userService

import (
	"context"
	"testing"

	users "inkwell/internal/api/user"
	userRepository "inkwell/internal/api/user/repository"
	"inkwell/internal/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fakeProfiles struct {
	byUsername map[string]entity.User
	byID       map[string]entity.User
	counts     userRepository.ProfileCounts
}

func (f *fakeProfiles) GetByUsername(_ context.Context, username string) (entity.User, error) {
	u, ok := f.byUsername[username]
	if !ok {
		return entity.User{}, users.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeProfiles) GetByID(_ context.Context, id string) (entity.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return entity.User{}, users.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeProfiles) GetCounts(context.Context, string, string) (userRepository.ProfileCounts, error) {
	return f.counts, nil
}

type fakeFollows struct {
	// edges[follower][following]
	edges map[string]map[string]bool
}

func newFakeFollows() *fakeFollows {
	return &fakeFollows{edges: map[string]map[string]bool{}}
}

func (f *fakeFollows) Exists(_ context.Context, followerID, followingID string) (bool, error) {
	return f.edges[followerID][followingID], nil
}

func (f *fakeFollows) Add(_ context.Context, followerID, followingID string) error {
	if f.edges[followerID] == nil {
		f.edges[followerID] = map[string]bool{}
	}
	f.edges[followerID][followingID] = true
	return nil
}

func (f *fakeFollows) Remove(_ context.Context, followerID, followingID string) error {
	delete(f.edges[followerID], followingID)
	return nil
}

func (f *fakeFollows) CountFollowers(_ context.Context, userID string) (int, error) {
	count := 0
	for _, following := range f.edges {
		if following[userID] {
			count++
		}
	}
	return count, nil
}

func (f *fakeFollows) Followers(context.Context, string) ([]entity.User, error) {
	return nil, nil
}

func (f *fakeFollows) Following(context.Context, string) ([]entity.User, error) {
	return nil, nil
}

type fakeUserRepo struct {
	profiles *fakeProfiles
	follows  *fakeFollows
}

func (f *fakeUserRepo) NewClient(bool) (userRepository.Client, error) {
	return userRepository.Client{
		Profiles: f.profiles,
		Follows:  f.follows,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newUserFixture(profileUsers ...entity.User) (*fakeUserRepo, UserService) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	profiles := &fakeProfiles{byUsername: map[string]entity.User{}, byID: map[string]entity.User{}}
	for _, u := range profileUsers {
		profiles.byUsername[u.Username] = u
		profiles.byID[u.ID] = u
	}

	repo := &fakeUserRepo{profiles: profiles, follows: newFakeFollows()}
	return repo, New(logger, repo)
}

func TestGetProfile(t *testing.T) {
	repo, svc := newUserFixture(entity.User{ID: "u1", Username: "jdoe", FirstName: "Jane"})
	repo.profiles.counts = userRepository.ProfileCounts{
		PublishedBlogs: 3,
		Followers:      7,
		Following:      2,
		FollowedByMe:   true,
	}

	res, err := svc.User().GetProfile(context.Background(), "jdoe", "viewer-1")
	require.NoError(t, err)
	require.Equal(t, "jdoe", res.Username)
	require.Equal(t, 3, res.PublishedBlogs)
	require.Equal(t, 7, res.Followers)
	require.True(t, res.FollowedByMe)
}

func TestGetProfileUnknownUser(t *testing.T) {
	_, svc := newUserFixture()

	_, err := svc.User().GetProfile(context.Background(), "ghost", "")
	require.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestToggleFollow(t *testing.T) {
	_, svc := newUserFixture(entity.User{ID: "u1", Username: "jdoe"})

	res, err := svc.User().ToggleFollow(context.Background(), "viewer-1", "u1")
	require.NoError(t, err)
	require.True(t, res.Following)
	require.Equal(t, 1, res.Followers)

	res, err = svc.User().ToggleFollow(context.Background(), "viewer-1", "u1")
	require.NoError(t, err)
	require.False(t, res.Following)
	require.Equal(t, 0, res.Followers)
}

func TestToggleFollowSelf(t *testing.T) {
	_, svc := newUserFixture(entity.User{ID: "u1", Username: "jdoe"})

	_, err := svc.User().ToggleFollow(context.Background(), "u1", "u1")
	require.ErrorIs(t, err, users.ErrSelfFollow)
}
