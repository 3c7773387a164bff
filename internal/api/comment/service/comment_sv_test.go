package commentService

import (
	"context"
	"testing"

	blogs "inkwell/internal/api/blog"
	blogRepository "inkwell/internal/api/blog/repository"
	comments "inkwell/internal/api/comment"
	commentRepository "inkwell/internal/api/comment/repository"
	"inkwell/internal/entity"
	utilsPkg "inkwell/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fakeComments struct {
	byID    map[string]entity.CommentWithRefs
	deleted []string
}

func newFakeComments(commentsIn ...entity.CommentWithRefs) *fakeComments {
	f := &fakeComments{byID: map[string]entity.CommentWithRefs{}}
	for _, cm := range commentsIn {
		f.byID[cm.ID] = cm
	}
	return f
}

func (f *fakeComments) Create(_ context.Context, comment entity.Comment) error {
	f.byID[comment.ID] = entity.CommentWithRefs{Comment: comment}
	return nil
}

func (f *fakeComments) GetByID(_ context.Context, id string, _ string) (entity.CommentWithRefs, error) {
	cm, ok := f.byID[id]
	if !ok {
		return entity.CommentWithRefs{}, comments.ErrCommentNotFound
	}
	return cm, nil
}

func (f *fakeComments) ListByBlog(_ context.Context, blogID string, _ string) ([]entity.CommentWithRefs, error) {
	var out []entity.CommentWithRefs
	for _, cm := range f.byID {
		if cm.Blog == blogID {
			out = append(out, cm)
		}
	}
	return out, nil
}

func (f *fakeComments) Update(_ context.Context, id string, content string) error {
	cm, ok := f.byID[id]
	if !ok {
		return comments.ErrCommentNotFound
	}
	cm.Content = content
	f.byID[id] = cm
	return nil
}

func (f *fakeComments) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	delete(f.byID, id)
	return nil
}

type fakeCommentLikes struct {
	likes map[string]map[string]bool
}

func newFakeCommentLikes() *fakeCommentLikes {
	return &fakeCommentLikes{likes: map[string]map[string]bool{}}
}

func (f *fakeCommentLikes) Exists(_ context.Context, commentID, userID string) (bool, error) {
	return f.likes[commentID][userID], nil
}

func (f *fakeCommentLikes) Add(_ context.Context, commentID, userID string) error {
	if f.likes[commentID] == nil {
		f.likes[commentID] = map[string]bool{}
	}
	f.likes[commentID][userID] = true
	return nil
}

func (f *fakeCommentLikes) Remove(_ context.Context, commentID, userID string) error {
	delete(f.likes[commentID], userID)
	return nil
}

func (f *fakeCommentLikes) Count(_ context.Context, commentID string) (int, error) {
	return len(f.likes[commentID]), nil
}

type fakeCommentRepo struct {
	comments *fakeComments
	likes    *fakeCommentLikes
}

func (f *fakeCommentRepo) NewClient(bool) (commentRepository.Client, error) {
	return commentRepository.Client{
		Comments: f.comments,
		Likes:    f.likes,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeBlogLookup struct {
	byID map[string]entity.BlogWithAuthor
}

func (f *fakeBlogLookup) Create(context.Context, entity.Blog) error { return nil }

func (f *fakeBlogLookup) GetByID(_ context.Context, id string, _ string) (entity.BlogWithAuthor, error) {
	b, ok := f.byID[id]
	if !ok {
		return entity.BlogWithAuthor{}, blogs.ErrBlogNotFound
	}
	return b, nil
}

func (f *fakeBlogLookup) GetBySlug(context.Context, string, string) (entity.BlogWithAuthor, error) {
	return entity.BlogWithAuthor{}, blogs.ErrBlogNotFound
}

func (f *fakeBlogLookup) SlugExists(context.Context, string) (bool, error) { return false, nil }

func (f *fakeBlogLookup) List(context.Context, blogs.ListFilter, string, int, int) ([]entity.BlogWithAuthor, int, error) {
	return nil, 0, nil
}

func (f *fakeBlogLookup) Update(context.Context, entity.Blog) error { return nil }
func (f *fakeBlogLookup) Delete(context.Context, string) error      { return nil }

type fakeBlogLookupRepo struct {
	blogs *fakeBlogLookup
}

func (f *fakeBlogLookupRepo) NewClient(bool) (blogRepository.Client, error) {
	return blogRepository.Client{
		Blogs:    f.blogs,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type commentFixture struct {
	svc      CommentService
	comments *fakeComments
}

func newCommentFixture(blogsIn []entity.BlogWithAuthor, commentsIn ...entity.CommentWithRefs) commentFixture {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	blogLookup := &fakeBlogLookup{byID: map[string]entity.BlogWithAuthor{}}
	for _, b := range blogsIn {
		blogLookup.byID[b.ID] = b
	}

	commentStore := newFakeComments(commentsIn...)
	repo := &fakeCommentRepo{comments: commentStore, likes: newFakeCommentLikes()}

	return commentFixture{
		svc:      New(logger, repo, &fakeBlogLookupRepo{blogs: blogLookup}, utilsPkg.New()),
		comments: commentStore,
	}
}

func publishedBlogRef() entity.BlogWithAuthor {
	return entity.BlogWithAuthor{
		Blog: entity.Blog{
			ID:     "blog-1",
			Title:  "Going Places",
			Slug:   "going-places",
			Status: string(entity.BlogPublished),
			Author: "author-1",
		},
	}
}

func sampleComment() entity.CommentWithRefs {
	return entity.CommentWithRefs{
		Comment: entity.Comment{
			ID:      "comment-1",
			Content: "nice read",
			Author:  "reader-1",
			Blog:    "blog-1",
		},
	}
}

func TestCreateComment(t *testing.T) {
	t.Run("unknown blog", func(t *testing.T) {
		fx := newCommentFixture(nil)

		_, err := fx.svc.Comment().Create(context.Background(), entity.UserLoginData{ID: "reader-1"},
			comments.CreateCommentRequest{Content: "hi", BlogID: "ghost"})
		require.ErrorIs(t, err, comments.ErrBlogNotFound)
	})

	t.Run("draft blog", func(t *testing.T) {
		draft := publishedBlogRef()
		draft.Status = string(entity.BlogDraft)
		fx := newCommentFixture([]entity.BlogWithAuthor{draft})

		_, err := fx.svc.Comment().Create(context.Background(), entity.UserLoginData{ID: "reader-1"},
			comments.CreateCommentRequest{Content: "hi", BlogID: draft.ID})
		require.ErrorIs(t, err, comments.ErrBlogNotFound)
	})

	t.Run("published blog", func(t *testing.T) {
		fx := newCommentFixture([]entity.BlogWithAuthor{publishedBlogRef()})

		res, err := fx.svc.Comment().Create(context.Background(), entity.UserLoginData{ID: "reader-1"},
			comments.CreateCommentRequest{Content: "hi", BlogID: "blog-1"})
		require.NoError(t, err)
		require.Equal(t, "hi", res.Content)
	})
}

func TestUpdateCommentOwnership(t *testing.T) {
	fx := newCommentFixture([]entity.BlogWithAuthor{publishedBlogRef()}, sampleComment())

	_, err := fx.svc.Comment().Update(context.Background(), "comment-1",
		entity.UserLoginData{ID: "intruder", Role: "user"},
		comments.UpdateCommentRequest{Content: "mine now"})
	require.ErrorIs(t, err, comments.ErrCommentNotOwned)

	res, err := fx.svc.Comment().Update(context.Background(), "comment-1",
		entity.UserLoginData{ID: "reader-1", Role: "user"},
		comments.UpdateCommentRequest{Content: "edited"})
	require.NoError(t, err)
	require.Equal(t, "edited", res.Content)
}

func TestDeleteComment(t *testing.T) {
	tests := []struct {
		name    string
		viewer  entity.UserLoginData
		allowed bool
	}{
		{name: "stranger", viewer: entity.UserLoginData{ID: "intruder", Role: "user"}},
		{name: "comment author", viewer: entity.UserLoginData{ID: "reader-1", Role: "user"}, allowed: true},
		{name: "blog author", viewer: entity.UserLoginData{ID: "author-1", Role: "user"}, allowed: true},
		{name: "admin", viewer: entity.UserLoginData{ID: "mod-1", Role: "admin"}, allowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newCommentFixture([]entity.BlogWithAuthor{publishedBlogRef()}, sampleComment())

			err := fx.svc.Comment().Delete(context.Background(), "comment-1", tt.viewer)
			if !tt.allowed {
				require.ErrorIs(t, err, comments.ErrCommentNotOwned)
				require.Empty(t, fx.comments.deleted)
				return
			}
			require.NoError(t, err)
			require.Equal(t, []string{"comment-1"}, fx.comments.deleted)
		})
	}
}

func TestToggleCommentLike(t *testing.T) {
	fx := newCommentFixture([]entity.BlogWithAuthor{publishedBlogRef()}, sampleComment())

	res, err := fx.svc.Comment().ToggleLike(context.Background(), "comment-1", "reader-2")
	require.NoError(t, err)
	require.True(t, res.Liked)
	require.Equal(t, 1, res.Likes)

	res, err = fx.svc.Comment().ToggleLike(context.Background(), "comment-1", "reader-2")
	require.NoError(t, err)
	require.False(t, res.Liked)
	require.Equal(t, 0, res.Likes)
}
