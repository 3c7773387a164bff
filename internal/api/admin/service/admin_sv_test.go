package adminService

import (
	"context"
	"errors"
	"testing"

	"inkwell/internal/api/admin"
	adminRepository "inkwell/internal/api/admin/repository"
	"inkwell/internal/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fakeStats struct {
	counts      admin.Stats
	recentUsers []entity.User
	recentBlogs []entity.BlogWithAuthor
	comments    []entity.CommentWithRefs
	total       int

	recentUsersLimit int
	recentBlogsLimit int
}

func (f *fakeStats) Counts(context.Context) (admin.Stats, error) {
	return f.counts, nil
}

func (f *fakeStats) RecentUsers(_ context.Context, limit int) ([]entity.User, error) {
	f.recentUsersLimit = limit
	return f.recentUsers, nil
}

func (f *fakeStats) RecentBlogs(_ context.Context, limit int) ([]entity.BlogWithAuthor, error) {
	f.recentBlogsLimit = limit
	return f.recentBlogs, nil
}

func (f *fakeStats) ListComments(_ context.Context, _, _ int) ([]entity.CommentWithRefs, int, error) {
	return f.comments, f.total, nil
}

type fakeAdminUsers struct {
	byID    map[string]entity.User
	listed  []entity.User
	total   int
	roles   map[string]string
	deleted []string

	listLimit  int
	listOffset int
}

func newFakeAdminUsers(users ...entity.User) *fakeAdminUsers {
	f := &fakeAdminUsers{byID: map[string]entity.User{}, roles: map[string]string{}}
	for _, u := range users {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeAdminUsers) List(_ context.Context, _ admin.UserFilter, limit, offset int) ([]entity.User, int, error) {
	f.listLimit, f.listOffset = limit, offset
	return f.listed, f.total, nil
}

func (f *fakeAdminUsers) GetByID(_ context.Context, id string) (entity.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return entity.User{}, admin.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeAdminUsers) UpdateRole(_ context.Context, id string, role string) error {
	u, ok := f.byID[id]
	if !ok {
		return admin.ErrUserNotFound
	}
	u.Role = role
	f.byID[id] = u
	f.roles[id] = role
	return nil
}

func (f *fakeAdminUsers) UpdateStatus(_ context.Context, id string, isActive bool) error {
	u, ok := f.byID[id]
	if !ok {
		return admin.ErrUserNotFound
	}
	u.IsActive = isActive
	f.byID[id] = u
	return nil
}

func (f *fakeAdminUsers) DeleteCascade(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	delete(f.byID, id)
	return nil
}

type fakeAdminBlogs struct {
	byID    map[string]entity.BlogWithAuthor
	listed  []entity.BlogWithAuthor
	total   int
	deleted []string

	listFilter admin.BlogFilter
}

func newFakeAdminBlogs(blogs ...entity.BlogWithAuthor) *fakeAdminBlogs {
	f := &fakeAdminBlogs{byID: map[string]entity.BlogWithAuthor{}}
	for _, b := range blogs {
		f.byID[b.ID] = b
	}
	return f
}

func (f *fakeAdminBlogs) List(_ context.Context, filter admin.BlogFilter, _, _ int) ([]entity.BlogWithAuthor, int, error) {
	f.listFilter = filter
	return f.listed, f.total, nil
}

func (f *fakeAdminBlogs) GetByID(_ context.Context, id string) (entity.BlogWithAuthor, error) {
	b, ok := f.byID[id]
	if !ok {
		return entity.BlogWithAuthor{}, admin.ErrBlogNotFound
	}
	return b, nil
}

func (f *fakeAdminBlogs) UpdateStatus(_ context.Context, id string, status string) error {
	b, ok := f.byID[id]
	if !ok {
		return admin.ErrBlogNotFound
	}
	b.Status = status
	f.byID[id] = b
	return nil
}

func (f *fakeAdminBlogs) DeleteCascade(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	delete(f.byID, id)
	return nil
}

type fakeAdminRepo struct {
	stats *fakeStats
	users *fakeAdminUsers
	blogs *fakeAdminBlogs

	pingErr   error
	commits   int
	rollbacks int
}

func (f *fakeAdminRepo) Ping(context.Context) error {
	return f.pingErr
}

func (f *fakeAdminRepo) NewClient(bool) (adminRepository.Client, error) {
	return adminRepository.Client{
		Stats: f.stats,
		Users: f.users,
		Blogs: f.blogs,
		Commit: func() error {
			f.commits++
			return nil
		},
		Rollback: func() error {
			f.rollbacks++
			return nil
		},
	}, nil
}

func newAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{
		stats: &fakeStats{},
		users: newFakeAdminUsers(),
		blogs: newFakeAdminBlogs(),
	}
}

func newAdminTestService(repo *fakeAdminRepo) AdminService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return New(logger, repo)
}

func adminActor() entity.UserLoginData {
	return entity.UserLoginData{ID: "admin-1", Username: "boss", Role: "admin"}
}

func TestDashboard(t *testing.T) {
	repo := newAdminRepo()
	repo.stats.counts = admin.Stats{
		TotalUsers:     12,
		TotalBlogs:     30,
		PublishedBlogs: 20,
		DraftBlogs:     10,
		TotalComments:  44,
	}
	repo.stats.recentUsers = []entity.User{{ID: "u1", Username: "fresh"}}
	repo.stats.recentBlogs = []entity.BlogWithAuthor{{Blog: entity.Blog{ID: "b1", Title: "New"}, AuthorUsername: "fresh"}}
	svc := newAdminTestService(repo)

	res, err := svc.Stats().Dashboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, repo.stats.counts, res.Stats)
	require.Len(t, res.RecentActivity.Users, 1)
	require.Len(t, res.RecentActivity.Blogs, 1)
	require.Equal(t, "fresh", res.RecentActivity.Blogs[0].Author.Username)
	require.Equal(t, 5, repo.stats.recentUsersLimit)
	require.Equal(t, 5, repo.stats.recentBlogsLimit)
}

func TestDashboardDatabaseDown(t *testing.T) {
	repo := newAdminRepo()
	repo.pingErr = errors.New("connection refused")
	svc := newAdminTestService(repo)

	_, err := svc.Stats().Dashboard(context.Background())
	require.ErrorIs(t, err, admin.ErrDatabaseNotReady)
}

func TestDetailedStats(t *testing.T) {
	t.Run("unknown type", func(t *testing.T) {
		svc := newAdminTestService(newAdminRepo())

		_, err := svc.Stats().DetailedStats(context.Background(), "sessions", 1, 20)
		require.ErrorIs(t, err, admin.ErrInvalidStatsType)
	})

	t.Run("users with default paging", func(t *testing.T) {
		repo := newAdminRepo()
		repo.users.listed = []entity.User{{ID: "u1", Username: "fresh"}}
		repo.users.total = 41
		svc := newAdminTestService(repo)

		res, err := svc.Stats().DetailedStats(context.Background(), "users", 0, 0)
		require.NoError(t, err)
		require.Equal(t, admin.StatsUsers, res.Type)
		require.Equal(t, 20, repo.users.listLimit)
		require.Equal(t, 0, repo.users.listOffset)
		require.Equal(t, 3, res.Pagination.TotalPages)
		require.True(t, res.Pagination.HasNext)
	})

	t.Run("published blogs filter", func(t *testing.T) {
		repo := newAdminRepo()
		svc := newAdminTestService(repo)

		res, err := svc.Stats().DetailedStats(context.Background(), "published-blogs", 1, 20)
		require.NoError(t, err)
		require.Equal(t, admin.StatsPublishedBlogs, res.Type)
		require.Equal(t, "published", repo.blogs.listFilter.Status)
	})

	t.Run("blogs without filter", func(t *testing.T) {
		repo := newAdminRepo()
		repo.blogs.listFilter.Status = "stale"
		svc := newAdminTestService(repo)

		_, err := svc.Stats().DetailedStats(context.Background(), "blogs", 1, 20)
		require.NoError(t, err)
		require.Empty(t, repo.blogs.listFilter.Status)
	})
}

func TestUpdateUserRole(t *testing.T) {
	target := entity.User{ID: "u1", Username: "fresh", Role: "user", IsActive: true}

	t.Run("invalid role", func(t *testing.T) {
		repo := newAdminRepo()
		repo.users = newFakeAdminUsers(target)
		svc := newAdminTestService(repo)

		_, err := svc.Moderation().UpdateUserRole(context.Background(), adminActor(), target.ID, "superuser")
		require.ErrorIs(t, err, admin.ErrInvalidRole)
	})

	t.Run("own role", func(t *testing.T) {
		svc := newAdminTestService(newAdminRepo())

		_, err := svc.Moderation().UpdateUserRole(context.Background(), adminActor(), "admin-1", "moderator")
		require.ErrorIs(t, err, admin.ErrSelfRoleChange)
	})

	t.Run("promotes", func(t *testing.T) {
		repo := newAdminRepo()
		repo.users = newFakeAdminUsers(target)
		svc := newAdminTestService(repo)

		res, err := svc.Moderation().UpdateUserRole(context.Background(), adminActor(), target.ID, "moderator")
		require.NoError(t, err)
		require.Equal(t, "moderator", res.Role)
		require.Equal(t, "moderator", repo.users.roles[target.ID])
	})
}

func TestUpdateUserStatus(t *testing.T) {
	t.Run("own account", func(t *testing.T) {
		repo := newAdminRepo()
		repo.users = newFakeAdminUsers(entity.User{ID: "admin-1", Username: "root", Role: "admin", IsActive: true})
		svc := newAdminTestService(repo)

		res, err := svc.Moderation().UpdateUserStatus(context.Background(), adminActor(), "admin-1", false)
		require.NoError(t, err)
		require.False(t, res.IsActive)
	})

	t.Run("deactivates", func(t *testing.T) {
		repo := newAdminRepo()
		repo.users = newFakeAdminUsers(entity.User{ID: "u1", Username: "fresh", IsActive: true})
		svc := newAdminTestService(repo)

		res, err := svc.Moderation().UpdateUserStatus(context.Background(), adminActor(), "u1", false)
		require.NoError(t, err)
		require.False(t, res.IsActive)
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("own account", func(t *testing.T) {
		svc := newAdminTestService(newAdminRepo())

		err := svc.Moderation().DeleteUser(context.Background(), adminActor(), "admin-1")
		require.ErrorIs(t, err, admin.ErrSelfDelete)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := newAdminTestService(newAdminRepo())

		err := svc.Moderation().DeleteUser(context.Background(), adminActor(), "ghost")
		require.ErrorIs(t, err, admin.ErrUserNotFound)
	})

	t.Run("cascades and commits", func(t *testing.T) {
		repo := newAdminRepo()
		repo.users = newFakeAdminUsers(entity.User{ID: "u1", Username: "fresh"})
		svc := newAdminTestService(repo)

		err := svc.Moderation().DeleteUser(context.Background(), adminActor(), "u1")
		require.NoError(t, err)
		require.Equal(t, []string{"u1"}, repo.users.deleted)
		require.Equal(t, 1, repo.commits)
		require.Zero(t, repo.rollbacks)
	})
}

func TestUpdateBlogStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		svc := newAdminTestService(newAdminRepo())

		_, err := svc.Moderation().UpdateBlogStatus(context.Background(), "b1", "archived")
		require.ErrorIs(t, err, admin.ErrInvalidBlogStatus)
	})

	t.Run("publishes", func(t *testing.T) {
		repo := newAdminRepo()
		repo.blogs = newFakeAdminBlogs(entity.BlogWithAuthor{Blog: entity.Blog{ID: "b1", Status: "draft"}})
		svc := newAdminTestService(repo)

		res, err := svc.Moderation().UpdateBlogStatus(context.Background(), "b1", "published")
		require.NoError(t, err)
		require.Equal(t, "published", res.Status)
	})
}

func TestDeleteBlog(t *testing.T) {
	t.Run("unknown blog", func(t *testing.T) {
		svc := newAdminTestService(newAdminRepo())

		err := svc.Moderation().DeleteBlog(context.Background(), "ghost")
		require.ErrorIs(t, err, admin.ErrBlogNotFound)
	})

	t.Run("cascades and commits", func(t *testing.T) {
		repo := newAdminRepo()
		repo.blogs = newFakeAdminBlogs(entity.BlogWithAuthor{Blog: entity.Blog{ID: "b1"}})
		svc := newAdminTestService(repo)

		err := svc.Moderation().DeleteBlog(context.Background(), "b1")
		require.NoError(t, err)
		require.Equal(t, []string{"b1"}, repo.blogs.deleted)
		require.Equal(t, 1, repo.commits)
	})
}

func TestListUsersPaginationDefaults(t *testing.T) {
	repo := newAdminRepo()
	repo.users.listed = []entity.User{{ID: "u1"}}
	repo.users.total = 31
	svc := newAdminTestService(repo)

	res, err := svc.Moderation().ListUsers(context.Background(), admin.UserFilter{}, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 10, repo.users.listLimit)
	require.Equal(t, 4, res.Pagination.TotalPages)
}
