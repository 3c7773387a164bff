package commentRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	comments "inkwell/internal/api/comment"
	"inkwell/internal/entity"
	contextPkg "inkwell/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type CommentDB struct {
	ID              sql.NullString `db:"id"`
	Content         sql.NullString `db:"content"`
	Author          sql.NullString `db:"author"`
	Blog            sql.NullString `db:"blog"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
	AuthorUsername  sql.NullString `db:"author_username"`
	AuthorFirstName sql.NullString `db:"author_first_name"`
	AuthorLastName  sql.NullString `db:"author_last_name"`
	AuthorAvatarURL sql.NullString `db:"author_avatar_url"`
	BlogTitle       sql.NullString `db:"blog_title"`
	BlogSlug        sql.NullString `db:"blog_slug"`
	LikeCount       int            `db:"like_count"`
	LikedByUser     bool           `db:"liked_by_user"`
}

func (r *commentsRepository) Create(ctx context.Context, comment entity.Comment) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         comment.ID,
		"content":    comment.Content,
		"author":     comment.Author,
		"blog":       comment.Blog,
		"created_at": comment.CreatedAt,
		"updated_at": comment.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateComment, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for Create comment")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating comment")
		return err
	}

	return nil
}

func (r *commentsRepository) GetByID(ctx context.Context, id string, viewerID string) (entity.CommentWithRefs, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var comment CommentDB

	argsKV := map[string]interface{}{
		"id":        id,
		"viewer_id": viewerID,
	}

	query, args, err := sqlx.Named(querySelectComment+" WHERE cm.id = :id", argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Get comment named query preparation err")
		return entity.CommentWithRefs{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&comment); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.CommentWithRefs{}, comments.ErrCommentNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Get comment execution err")
		return entity.CommentWithRefs{}, err
	}

	return makeComment(comment), nil
}

func (r *commentsRepository) ListByBlog(ctx context.Context, blogID string, viewerID string) ([]entity.CommentWithRefs, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []CommentDB

	argsKV := map[string]interface{}{
		"blog_id":   blogID,
		"viewer_id": viewerID,
	}

	query, args, err := sqlx.Named(querySelectComment+" WHERE cm.blog = :blog_id ORDER BY cm.created_at DESC", argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("List comments named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("List comments execution err")
		return nil, err
	}

	var list []entity.CommentWithRefs
	for _, row := range rows {
		list = append(list, makeComment(row))
	}

	return list, nil
}

func (r *commentsRepository) Update(ctx context.Context, id string, content string) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":         id,
		"content":    content,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateComment, argsKV)
	if err != nil {
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Update comment execution err")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return comments.ErrCommentNotFound
	}

	return nil
}

// Delete removes the comment and its likes.
func (r *commentsRepository) Delete(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	likesQuery, likesArgs, err := sqlx.Named(queryDeleteCommentLikes, map[string]interface{}{"comment_id": id})
	if err != nil {
		return err
	}
	likesQuery = r.q.Rebind(likesQuery)

	if _, err := r.q.ExecContext(ctx, likesQuery, likesArgs...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Delete comment likes execution err")
		return err
	}

	query, args, err := sqlx.Named(queryDeleteComment, map[string]interface{}{"id": id})
	if err != nil {
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Delete comment execution err")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return comments.ErrCommentNotFound
	}

	return nil
}

func makeComment(c CommentDB) entity.CommentWithRefs {
	return entity.CommentWithRefs{
		Comment: entity.Comment{
			ID:        c.ID.String,
			Content:   c.Content.String,
			Author:    c.Author.String,
			Blog:      c.Blog.String,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		},
		AuthorUsername:  c.AuthorUsername.String,
		AuthorFirstName: c.AuthorFirstName.String,
		AuthorLastName:  c.AuthorLastName.String,
		AuthorAvatarURL: c.AuthorAvatarURL.String,
		BlogTitle:       c.BlogTitle.String,
		BlogSlug:        c.BlogSlug.String,
		LikeCount:       c.LikeCount,
		LikedByUser:     c.LikedByUser,
	}
}
