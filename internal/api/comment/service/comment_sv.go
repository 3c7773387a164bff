package commentService

import (
	"context"
	"errors"
	"time"

	blogs "inkwell/internal/api/blog"
	comments "inkwell/internal/api/comment"
	"inkwell/internal/entity"
	contextPkg "inkwell/pkg/context"
	"inkwell/pkg/log"
)

// Create rejects comments on drafts and missing blogs alike.
func (s *commentDomainImpl) Create(c context.Context, author entity.UserLoginData, req comments.CreateCommentRequest) (comments.CommentResponse, error) {
	blogClient, err := s.blogRepo.NewClient(false)
	if err != nil {
		return comments.CommentResponse{}, err
	}

	blog, err := blogClient.Blogs.GetByID(c, req.BlogID, author.ID)
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			return comments.CommentResponse{}, comments.ErrBlogNotFound
		}
		return comments.CommentResponse{}, err
	}

	if blog.Status != string(entity.BlogPublished) {
		return comments.CommentResponse{}, comments.ErrBlogNotFound
	}

	client, err := s.repo.NewClient(false)
	if err != nil {
		return comments.CommentResponse{}, err
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return comments.CommentResponse{}, err
	}

	now := time.Now()
	comment := entity.Comment{
		ID:        id,
		Content:   req.Content,
		Author:    author.ID,
		Blog:      req.BlogID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := client.Comments.Create(c, comment); err != nil {
		s.log.WithFields(log.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"blog_id":    req.BlogID,
		}).Error("failed to create comment: ", err)
		return comments.CommentResponse{}, comments.ErrCreateComment
	}

	created, err := client.Comments.GetByID(c, id, author.ID)
	if err != nil {
		return comments.CommentResponse{}, err
	}

	return comments.MakeCommentResponse(created), nil
}

func (s *commentDomainImpl) ListByBlog(c context.Context, blogID string, viewerID string) (comments.CommentListResponse, error) {
	client, err := s.repo.NewClient(false)
	if err != nil {
		return comments.CommentListResponse{}, err
	}

	list, err := client.Comments.ListByBlog(c, blogID, viewerID)
	if err != nil {
		return comments.CommentListResponse{}, err
	}

	items := make([]comments.CommentResponse, 0, len(list))
	for _, comment := range list {
		items = append(items, comments.MakeCommentResponse(comment))
	}

	return comments.CommentListResponse{Comments: items}, nil
}

func (s *commentDomainImpl) Update(c context.Context, id string, viewer entity.UserLoginData, req comments.UpdateCommentRequest) (comments.CommentResponse, error) {
	client, err := s.repo.NewClient(false)
	if err != nil {
		return comments.CommentResponse{}, err
	}

	existing, err := client.Comments.GetByID(c, id, viewer.ID)
	if err != nil {
		return comments.CommentResponse{}, err
	}

	if existing.Author != viewer.ID {
		return comments.CommentResponse{}, comments.ErrCommentNotOwned
	}

	if err := client.Comments.Update(c, id, req.Content); err != nil {
		return comments.CommentResponse{}, err
	}

	updated, err := client.Comments.GetByID(c, id, viewer.ID)
	if err != nil {
		return comments.CommentResponse{}, err
	}

	return comments.MakeCommentResponse(updated), nil
}

// Delete is allowed for the comment author, the blog author, and admins.
func (s *commentDomainImpl) Delete(c context.Context, id string, viewer entity.UserLoginData) error {
	client, err := s.repo.NewClient(false)
	if err != nil {
		return err
	}

	existing, err := client.Comments.GetByID(c, id, viewer.ID)
	if err != nil {
		return err
	}

	if !s.canDelete(c, existing, viewer) {
		return comments.ErrCommentNotOwned
	}

	if err := client.Comments.Delete(c, id); err != nil {
		s.log.WithFields(log.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"comment_id": id,
		}).Error("failed to delete comment: ", err)
		return err
	}

	return nil
}

func (s *commentDomainImpl) canDelete(c context.Context, comment entity.CommentWithRefs, viewer entity.UserLoginData) bool {
	if comment.Author == viewer.ID || viewer.Role == string(entity.RoleAdmin) {
		return true
	}

	blogClient, err := s.blogRepo.NewClient(false)
	if err != nil {
		return false
	}

	blog, err := blogClient.Blogs.GetByID(c, comment.Blog, viewer.ID)
	if err != nil {
		return false
	}

	return blog.Author == viewer.ID
}

func (s *commentDomainImpl) ToggleLike(c context.Context, commentID, userID string) (comments.LikeResponse, error) {
	client, err := s.repo.NewClient(false)
	if err != nil {
		return comments.LikeResponse{}, err
	}

	if _, err := client.Comments.GetByID(c, commentID, userID); err != nil {
		return comments.LikeResponse{}, err
	}

	liked, err := client.Likes.Exists(c, commentID, userID)
	if err != nil {
		return comments.LikeResponse{}, err
	}

	if liked {
		err = client.Likes.Remove(c, commentID, userID)
	} else {
		err = client.Likes.Add(c, commentID, userID)
	}
	if err != nil {
		return comments.LikeResponse{}, err
	}

	count, err := client.Likes.Count(c, commentID)
	if err != nil {
		return comments.LikeResponse{}, err
	}

	return comments.LikeResponse{Liked: !liked, Likes: count}, nil
}
