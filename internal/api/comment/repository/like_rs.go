package commentRepository

import (
	"context"

	contextPkg "inkwell/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func (r *commentLikesRepository) Exists(ctx context.Context, commentID, userID string) (bool, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var exists bool

	argsKV := map[string]interface{}{
		"comment_id": commentID,
		"user_id":    userID,
	}

	query, args, err := sqlx.Named(queryCommentLikeExists, argsKV)
	if err != nil {
		return false, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&exists); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Comment like exists execution err")
		return false, err
	}

	return exists, nil
}

func (r *commentLikesRepository) Add(ctx context.Context, commentID, userID string) error {
	return r.exec(ctx, queryAddCommentLike, commentID, userID, "Add comment like execution err")
}

func (r *commentLikesRepository) Remove(ctx context.Context, commentID, userID string) error {
	return r.exec(ctx, queryRemoveCommentLike, commentID, userID, "Remove comment like execution err")
}

func (r *commentLikesRepository) exec(ctx context.Context, namedQuery, commentID, userID, errMsg string) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"comment_id": commentID,
		"user_id":    userID,
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

func (r *commentLikesRepository) Count(ctx context.Context, commentID string) (int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var count int

	query, args, err := sqlx.Named(queryCountCommentLikes, map[string]interface{}{"comment_id": commentID})
	if err != nil {
		return 0, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&count); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Count comment likes execution err")
		return 0, err
	}

	return count, nil
}
