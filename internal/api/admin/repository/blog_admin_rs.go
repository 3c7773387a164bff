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

type adminBlogDB struct {
	ID              sql.NullString `db:"id"`
	Title           sql.NullString `db:"title"`
	Slug            sql.NullString `db:"slug"`
	Excerpt         sql.NullString `db:"excerpt"`
	Category        sql.NullString `db:"category"`
	Status          sql.NullString `db:"status"`
	Author          sql.NullString `db:"author"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
	AuthorUsername  sql.NullString `db:"author_username"`
	AuthorFirstName sql.NullString `db:"author_first_name"`
	AuthorLastName  sql.NullString `db:"author_last_name"`
}

func (r *adminBlogsRepository) List(ctx context.Context, filter admin.BlogFilter, limit, offset int) ([]entity.BlogWithAuthor, int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	conditions := []string{"1 = 1"}
	argsKV := map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	}

	if filter.Search != "" {
		conditions = append(conditions, "(b.title ILIKE :search OR b.content ILIKE :search)")
		argsKV["search"] = "%" + filter.Search + "%"
	}
	if filter.Status != "" {
		conditions = append(conditions, "b.status = :status")
		argsKV["status"] = filter.Status
	}
	if filter.Category != "" {
		conditions = append(conditions, "b.category = :category")
		argsKV["category"] = filter.Category
	}

	whereClause := " WHERE " + strings.Join(conditions, " AND ")

	var total int
	countQuery, countArgs, err := sqlx.Named(queryCountBlogs+whereClause, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Count blogs named query preparation err")
		return nil, 0, err
	}
	countQuery = r.q.Rebind(countQuery)

	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Count blogs execution err")
		return nil, 0, err
	}

	var rows []adminBlogDB
	query, args, err := sqlx.Named(querySelectBlogs+whereClause+" ORDER BY b.created_at DESC LIMIT :limit OFFSET :offset", argsKV)
	if err != nil {
		return nil, 0, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("List blogs execution err")
		return nil, 0, err
	}

	var list []entity.BlogWithAuthor
	for _, row := range rows {
		list = append(list, makeAdminBlog(row))
	}

	return list, total, nil
}

func (r *adminBlogsRepository) GetByID(ctx context.Context, id string) (entity.BlogWithAuthor, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var blog adminBlogDB

	query, args, err := sqlx.Named(querySelectBlogs+" WHERE b.id = :id", map[string]interface{}{"id": id})
	if err != nil {
		return entity.BlogWithAuthor{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&blog); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.BlogWithAuthor{}, admin.ErrBlogNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Get blog execution err")
		return entity.BlogWithAuthor{}, err
	}

	return makeAdminBlog(blog), nil
}

func (r *adminBlogsRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":         id,
		"status":     status,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateBlogStatus, argsKV)
	if err != nil {
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Update blog status execution err")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return admin.ErrBlogNotFound
	}

	return nil
}

// DeleteCascade drops a blog and its comments. Callers run it inside a
// transaction.
func (r *adminBlogsRepository) DeleteCascade(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	for _, namedQuery := range []string{queryDeleteBlogComments, queryDeleteBlogRow} {
		query, args, err := sqlx.Named(namedQuery, map[string]interface{}{"id": id})
		if err != nil {
			return err
		}
		query = r.q.Rebind(query)

		if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Cascade blog delete execution err")
			return err
		}
	}

	return nil
}

func makeAdminBlog(b adminBlogDB) entity.BlogWithAuthor {
	return entity.BlogWithAuthor{
		Blog: entity.Blog{
			ID:        b.ID.String,
			Title:     b.Title.String,
			Slug:      b.Slug.String,
			Excerpt:   b.Excerpt.String,
			Category:  b.Category.String,
			Status:    b.Status.String,
			Author:    b.Author.String,
			CreatedAt: b.CreatedAt,
			UpdatedAt: b.UpdatedAt,
		},
		AuthorUsername:  b.AuthorUsername.String,
		AuthorFirstName: b.AuthorFirstName.String,
		AuthorLastName:  b.AuthorLastName.String,
	}
}
