package blogRepository

import (
	"context"

	contextPkg "inkwell/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func (r *blogLikesRepository) Exists(ctx context.Context, blogID, userID string) (bool, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var exists bool

	argsKV := map[string]interface{}{
		"blog_id": blogID,
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryBlogLikeExists, argsKV)
	if err != nil {
		return false, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&exists); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Blog like exists execution err")
		return false, err
	}

	return exists, nil
}

func (r *blogLikesRepository) Add(ctx context.Context, blogID, userID string) error {
	return r.exec(ctx, queryAddBlogLike, blogID, userID, "Add blog like execution err")
}

func (r *blogLikesRepository) Remove(ctx context.Context, blogID, userID string) error {
	return r.exec(ctx, queryRemoveBlogLike, blogID, userID, "Remove blog like execution err")
}

func (r *blogLikesRepository) exec(ctx context.Context, namedQuery, blogID, userID, errMsg string) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"blog_id": blogID,
		"user_id": userID,
	}

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(errMsg)
		return err
	}

	return nil
}

func (r *blogLikesRepository) Count(ctx context.Context, blogID string) (int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var count int

	query, args, err := sqlx.Named(queryCountBlogLikes, map[string]interface{}{"blog_id": blogID})
	if err != nil {
		return 0, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&count); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Count blog likes execution err")
		return 0, err
	}

	return count, nil
}

// DeleteByBlog clears a blog's comments together with their likes. Runs
// inside the blog delete transaction.
func (r *blogCommentsRepository) DeleteByBlog(ctx context.Context, blogID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	for _, namedQuery := range []string{queryDeleteCommentLikesByBlog, queryDeleteCommentsByBlog, queryDeleteBlogLikes} {
		query, args, err := sqlx.Named(namedQuery, map[string]interface{}{"blog_id": blogID})
		if err != nil {
			return err
		}
		query = r.q.Rebind(query)

		if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Delete blog comments execution err")
			return err
		}
	}

	return nil
}
