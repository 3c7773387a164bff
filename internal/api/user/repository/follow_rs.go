package userRepository

import (
	"context"

	"inkwell/internal/entity"
	contextPkg "inkwell/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func (r *followsRepository) Exists(ctx context.Context, followerID, followingID string) (bool, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var exists bool

	argsKV := map[string]interface{}{
		"follower_id":  followerID,
		"following_id": followingID,
	}

	query, args, err := sqlx.Named(queryFollowExists, argsKV)
	if err != nil {
		return false, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&exists); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Follow exists execution err")
		return false, err
	}

	return exists, nil
}

func (r *followsRepository) Add(ctx context.Context, followerID, followingID string) error {
	return r.exec(ctx, queryAddFollow, followerID, followingID, "Add follow execution err")
}

func (r *followsRepository) Remove(ctx context.Context, followerID, followingID string) error {
	return r.exec(ctx, queryRemoveFollow, followerID, followingID, "Remove follow execution err")
}

func (r *followsRepository) exec(ctx context.Context, namedQuery, followerID, followingID, errMsg string) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"follower_id":  followerID,
		"following_id": followingID,
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

func (r *followsRepository) CountFollowers(ctx context.Context, userID string) (int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var count int

	query, args, err := sqlx.Named(queryCountFollowers, map[string]interface{}{"user_id": userID})
	if err != nil {
		return 0, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&count); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Count followers execution err")
		return 0, err
	}

	return count, nil
}

func (r *followsRepository) Followers(ctx context.Context, userID string) ([]entity.User, error) {
	return r.list(ctx, queryListFollowers, userID, "List followers execution err")
}

func (r *followsRepository) Following(ctx context.Context, userID string) ([]entity.User, error) {
	return r.list(ctx, queryListFollowing, userID, "List following execution err")
}

func (r *followsRepository) list(ctx context.Context, namedQuery, userID, errMsg string) ([]entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []UserSummaryDB

	query, args, err := sqlx.Named(namedQuery, map[string]interface{}{"user_id": userID})
	if err != nil {
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(errMsg)
		return nil, err
	}

	var list []entity.User
	for _, row := range rows {
		list = append(list, entity.User{
			ID:        row.ID.String,
			Username:  row.Username.String,
			FirstName: row.FirstName.String,
			LastName:  row.LastName.String,
			AvatarURL: row.AvatarURL.String,
		})
	}

	return list, nil
}
