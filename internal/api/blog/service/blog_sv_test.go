package blogService

import (
	"context"
	"testing"

	blogs "inkwell/internal/api/blog"
	blogRepository "inkwell/internal/api/blog/repository"
	"inkwell/internal/entity"
	utilsPkg "inkwell/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fakeBlogs struct {
	byID    map[string]entity.BlogWithAuthor
	created []entity.Blog
	updated []entity.Blog
	deleted []string
	listed  []entity.BlogWithAuthor
	total   int
}

func newFakeBlogs(blogsIn ...entity.BlogWithAuthor) *fakeBlogs {
	f := &fakeBlogs{byID: map[string]entity.BlogWithAuthor{}}
	for _, b := range blogsIn {
		f.byID[b.ID] = b
	}
	return f
}

func (f *fakeBlogs) Create(_ context.Context, blog entity.Blog) error {
	f.created = append(f.created, blog)
	f.byID[blog.ID] = entity.BlogWithAuthor{Blog: blog}
	return nil
}

func (f *fakeBlogs) GetByID(_ context.Context, id string, _ string) (entity.BlogWithAuthor, error) {
	b, ok := f.byID[id]
	if !ok {
		return entity.BlogWithAuthor{}, blogs.ErrBlogNotFound
	}
	return b, nil
}

func (f *fakeBlogs) GetBySlug(_ context.Context, slug string, _ string) (entity.BlogWithAuthor, error) {
	for _, b := range f.byID {
		if b.Slug == slug {
			return b, nil
		}
	}
	return entity.BlogWithAuthor{}, blogs.ErrBlogNotFound
}

func (f *fakeBlogs) SlugExists(_ context.Context, slug string) (bool, error) {
	for _, b := range f.byID {
		if b.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBlogs) List(_ context.Context, _ blogs.ListFilter, _ string, _, _ int) ([]entity.BlogWithAuthor, int, error) {
	return f.listed, f.total, nil
}

func (f *fakeBlogs) Update(_ context.Context, blog entity.Blog) error {
	f.updated = append(f.updated, blog)
	return nil
}

func (f *fakeBlogs) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	delete(f.byID, id)
	return nil
}

type fakeBlogLikes struct {
	likes map[string]map[string]bool
}

func newFakeBlogLikes() *fakeBlogLikes {
	return &fakeBlogLikes{likes: map[string]map[string]bool{}}
}

func (f *fakeBlogLikes) Exists(_ context.Context, blogID, userID string) (bool, error) {
	return f.likes[blogID][userID], nil
}

func (f *fakeBlogLikes) Add(_ context.Context, blogID, userID string) error {
	if f.likes[blogID] == nil {
		f.likes[blogID] = map[string]bool{}
	}
	f.likes[blogID][userID] = true
	return nil
}

func (f *fakeBlogLikes) Remove(_ context.Context, blogID, userID string) error {
	delete(f.likes[blogID], userID)
	return nil
}

func (f *fakeBlogLikes) Count(_ context.Context, blogID string) (int, error) {
	return len(f.likes[blogID]), nil
}

type fakeBlogComments struct {
	deletedBlogs []string
}

func (f *fakeBlogComments) DeleteByBlog(_ context.Context, blogID string) error {
	f.deletedBlogs = append(f.deletedBlogs, blogID)
	return nil
}

type fakeBlogRepo struct {
	blogs    *fakeBlogs
	likes    *fakeBlogLikes
	comments *fakeBlogComments

	commits   int
	rollbacks int
}

func (f *fakeBlogRepo) NewClient(bool) (blogRepository.Client, error) {
	return blogRepository.Client{
		Blogs:    f.blogs,
		Likes:    f.likes,
		Comments: f.comments,
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

func newBlogRepo(blogsIn ...entity.BlogWithAuthor) *fakeBlogRepo {
	return &fakeBlogRepo{
		blogs:    newFakeBlogs(blogsIn...),
		likes:    newFakeBlogLikes(),
		comments: &fakeBlogComments{},
	}
}

func newBlogTestService(repo *fakeBlogRepo) BlogService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return New(logger, repo, nil, utilsPkg.New())
}

func publishedBlog() entity.BlogWithAuthor {
	return entity.BlogWithAuthor{
		Blog: entity.Blog{
			ID:     "01J0BLOG0000000000000000AA",
			Title:  "Going Places",
			Slug:   "going-places",
			Status: string(entity.BlogPublished),
			Author: "author-1",
		},
		AuthorUsername: "author",
	}
}

func draftBlog() entity.BlogWithAuthor {
	b := publishedBlog()
	b.ID = "01J0BLOG0000000000000000BB"
	b.Slug = "still-cooking"
	b.Title = "Still Cooking"
	b.Status = string(entity.BlogDraft)
	return b
}

func TestCreateDefaultsToDraft(t *testing.T) {
	repo := newBlogRepo()
	svc := newBlogTestService(repo)

	res, err := svc.Blog().Create(context.Background(), "author-1", blogs.CreateBlogRequest{
		Title:    "My First Post",
		Content:  "hello",
		Category: "misc",
	})
	require.NoError(t, err)
	require.Equal(t, string(entity.BlogDraft), res.Status)
	require.Equal(t, "my-first-post", res.Slug)
}

func TestCreateRejectsUnknownStatus(t *testing.T) {
	svc := newBlogTestService(newBlogRepo())

	_, err := svc.Blog().Create(context.Background(), "author-1", blogs.CreateBlogRequest{
		Title:    "My First Post",
		Content:  "hello",
		Category: "misc",
		Status:   "archived",
	})
	require.ErrorIs(t, err, blogs.ErrInvalidBlogStatus)
}

func TestCreateSuffixesTakenSlug(t *testing.T) {
	existing := publishedBlog()
	existing.Slug = "my-first-post"
	repo := newBlogRepo(existing)
	svc := newBlogTestService(repo)

	res, err := svc.Blog().Create(context.Background(), "author-1", blogs.CreateBlogRequest{
		Title:    "My First Post",
		Content:  "hello",
		Category: "misc",
	})
	require.NoError(t, err)
	require.NotEqual(t, "my-first-post", res.Slug)
	require.Regexp(t, `^my-first-post-[0-9a-z]{8}$`, res.Slug)
}

func TestGetBySlugHidesDrafts(t *testing.T) {
	draft := draftBlog()
	svc := newBlogTestService(newBlogRepo(draft))

	tests := []struct {
		name    string
		viewer  entity.UserLoginData
		wantErr error
	}{
		{name: "anonymous", viewer: entity.UserLoginData{}, wantErr: blogs.ErrBlogNotFound},
		{name: "other user", viewer: entity.UserLoginData{ID: "someone-else", Role: "user"}, wantErr: blogs.ErrBlogNotFound},
		{name: "author", viewer: entity.UserLoginData{ID: "author-1", Role: "user"}},
		{name: "admin", viewer: entity.UserLoginData{ID: "mod-1", Role: "admin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Blog().GetBySlug(context.Background(), draft.Slug, tt.viewer)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestListMineRejectsUnknownStatus(t *testing.T) {
	svc := newBlogTestService(newBlogRepo())

	_, err := svc.Blog().ListMine(context.Background(), entity.UserLoginData{ID: "author-1"}, "archived", 1, 10)
	require.ErrorIs(t, err, blogs.ErrInvalidBlogStatus)
}

func TestListPagination(t *testing.T) {
	repo := newBlogRepo()
	repo.blogs.listed = []entity.BlogWithAuthor{publishedBlog()}
	repo.blogs.total = 23
	svc := newBlogTestService(repo)

	res, err := svc.Blog().List(context.Background(), blogs.ListFilter{}, "", 0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, res.Pagination.CurrentPage)
	require.Equal(t, 3, res.Pagination.TotalPages)
	require.Equal(t, 23, res.Pagination.Total)
	require.True(t, res.Pagination.HasNext)
	require.False(t, res.Pagination.HasPrev)
}

func TestUpdateChecksOwnership(t *testing.T) {
	blog := publishedBlog()
	svc := newBlogTestService(newBlogRepo(blog))

	_, err := svc.Blog().Update(context.Background(), blog.ID,
		entity.UserLoginData{ID: "intruder", Role: "user"},
		blogs.UpdateBlogRequest{Title: "Hijacked"})
	require.ErrorIs(t, err, blogs.ErrBlogNotOwned)
}

func TestDeleteCascadesAndCommits(t *testing.T) {
	blog := publishedBlog()
	repo := newBlogRepo(blog)
	svc := newBlogTestService(repo)

	err := svc.Blog().Delete(context.Background(), blog.ID, entity.UserLoginData{ID: "author-1", Role: "user"})
	require.NoError(t, err)
	require.Equal(t, []string{blog.ID}, repo.comments.deletedBlogs)
	require.Equal(t, []string{blog.ID}, repo.blogs.deleted)
	require.Equal(t, 1, repo.commits)
}

func TestDeleteByStranger(t *testing.T) {
	blog := publishedBlog()
	repo := newBlogRepo(blog)
	svc := newBlogTestService(repo)

	err := svc.Blog().Delete(context.Background(), blog.ID, entity.UserLoginData{ID: "intruder", Role: "user"})
	require.ErrorIs(t, err, blogs.ErrBlogNotOwned)
	require.Empty(t, repo.blogs.deleted)
}

func TestToggleLike(t *testing.T) {
	blog := publishedBlog()
	repo := newBlogRepo(blog)
	svc := newBlogTestService(repo)

	res, err := svc.Blog().ToggleLike(context.Background(), blog.ID, "reader-1")
	require.NoError(t, err)
	require.True(t, res.Liked)
	require.Equal(t, 1, res.Likes)

	res, err = svc.Blog().ToggleLike(context.Background(), blog.ID, "reader-1")
	require.NoError(t, err)
	require.False(t, res.Liked)
	require.Equal(t, 0, res.Likes)
}

func TestToggleLikeUnknownBlog(t *testing.T) {
	svc := newBlogTestService(newBlogRepo())

	_, err := svc.Blog().ToggleLike(context.Background(), "missing", "reader-1")
	require.ErrorIs(t, err, blogs.ErrBlogNotFound)
}
