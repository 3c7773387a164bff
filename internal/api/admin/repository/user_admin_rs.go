package adminRepository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"inkwell/internal/api/admin"
	"inkwell/internal/entity"
	contextPkg "inkwell/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type adminUserDB struct {
	ID        sql.NullString `db:"id"`
	Username  sql.NullString `db:"username"`
	Email     sql.NullString `db:"email"`
	FirstName sql.NullString `db:"first_name"`
	LastName  sql.NullString `db:"last_name"`
	AvatarURL sql.NullString `db:"avatar_url"`
	Role      sql.NullString `db:"role"`
	IsActive  sql.NullBool   `db:"is_active"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (r *adminUsersRepository) List(ctx context.Context, filter admin.UserFilter, limit, offset int) ([]entity.User, int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	conditions := []string{"1 = 1"}
	argsKV := map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	}

	if filter.Search != "" {
		conditions = append(conditions, "(username ILIKE :search OR email ILIKE :search OR first_name ILIKE :search OR last_name ILIKE :search)")
		argsKV["search"] = "%" + filter.Search + "%"
	}
	if filter.Role != "" {
		conditions = append(conditions, "role = :role")
		argsKV["role"] = filter.Role
	}
	if filter.Active != nil {
		conditions = append(conditions, "is_active = :is_active")
		argsKV["is_active"] = *filter.Active
	}

	whereClause := " WHERE " + strings.Join(conditions, " AND ")

	var total int
	countQuery, countArgs, err := sqlx.Named(queryCountUsers+whereClause, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Count users named query preparation err")
		return nil, 0, err
	}
	countQuery = r.q.Rebind(countQuery)

	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Count users execution err")
		return nil, 0, err
	}

	var rows []adminUserDB
	query, args, err := sqlx.Named(querySelectUsers+whereClause+" ORDER BY created_at DESC LIMIT :limit OFFSET :offset", argsKV)
	if err != nil {
		return nil, 0, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("List users execution err")
		return nil, 0, err
	}

	var list []entity.User
	for _, row := range rows {
		list = append(list, makeAdminUser(row))
	}

	return list, total, nil
}

func (r *adminUsersRepository) GetByID(ctx context.Context, id string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var user adminUserDB

	query, args, err := sqlx.Named(queryGetUserByID, map[string]interface{}{"id": id})
	if err != nil {
		return entity.User{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, admin.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Get user execution err")
		return entity.User{}, err
	}

	return makeAdminUser(user), nil
}

func (r *adminUsersRepository) UpdateRole(ctx context.Context, id string, role string) error {
	return r.update(ctx, queryUpdateUserRole, map[string]interface{}{
		"id":         id,
		"role":       role,
		"updated_at": time.Now(),
	}, "Update user role execution err")
}

func (r *adminUsersRepository) UpdateStatus(ctx context.Context, id string, isActive bool) error {
	return r.update(ctx, queryUpdateUserStatus, map[string]interface{}{
		"id":         id,
		"is_active":  isActive,
		"updated_at": time.Now(),
	}, "Update user status execution err")
}

func (r *adminUsersRepository) update(ctx context.Context, namedQuery string, argsKV map[string]interface{}, errMsg string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(errMsg)
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return admin.ErrUserNotFound
	}

	return nil
}

// DeleteCascade removes the user's comments, blogs and finally the user
// row, in that order. Callers run it inside a transaction.
func (r *adminUsersRepository) DeleteCascade(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	steps := []string{
		queryDeleteCommentsOnUserBlogs,
		queryDeleteUserComments,
		queryDeleteUserBlogs,
		queryDeleteUser,
	}

	for _, namedQuery := range steps {
		query, args, err := sqlx.Named(namedQuery, map[string]interface{}{"id": id})
		if err != nil {
			return err
		}
		query = r.q.Rebind(query)

		if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Cascade user delete execution err")
			return err
		}
	}

	return nil
}

func makeAdminUser(u adminUserDB) entity.User {
	return entity.User{
		ID:        u.ID.String,
		Username:  u.Username.String,
		Email:     u.Email.String,
		FirstName: u.FirstName.String,
		LastName:  u.LastName.String,
		AvatarURL: u.AvatarURL.String,
		Role:      u.Role.String,
		IsActive:  u.IsActive.Bool,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
