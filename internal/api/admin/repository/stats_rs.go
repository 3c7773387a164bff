package adminRepository

import (
	"context"
	"database/sql"
	"time"

	"inkwell/internal/api/admin"
	"inkwell/internal/entity"
	contextPkg "inkwell/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type statsDB struct {
	TotalUsers     int `db:"total_users"`
	TotalBlogs     int `db:"total_blogs"`
	PublishedBlogs int `db:"published_blogs"`
	TotalComments  int `db:"total_comments"`
}

type adminCommentDB struct {
	ID              sql.NullString `db:"id"`
	Content         sql.NullString `db:"content"`
	Author          sql.NullString `db:"author"`
	Blog            sql.NullString `db:"blog"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
	AuthorUsername  sql.NullString `db:"author_username"`
	AuthorFirstName sql.NullString `db:"author_first_name"`
	AuthorLastName  sql.NullString `db:"author_last_name"`
	BlogTitle       sql.NullString `db:"blog_title"`
	BlogSlug        sql.NullString `db:"blog_slug"`
}

// Counts gathers the dashboard totals in one round trip. Draft count is
// derived, not queried.
func (r *statsRepository) Counts(ctx context.Context) (admin.Stats, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var counts statsDB

	query := r.q.Rebind(queryDashboardCounts)
	if err := r.q.QueryRowxContext(ctx, query).StructScan(&counts); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Dashboard counts execution err")
		return admin.Stats{}, err
	}

	return admin.Stats{
		TotalUsers:     counts.TotalUsers,
		TotalBlogs:     counts.TotalBlogs,
		PublishedBlogs: counts.PublishedBlogs,
		DraftBlogs:     counts.TotalBlogs - counts.PublishedBlogs,
		TotalComments:  counts.TotalComments,
	}, nil
}

func (r *statsRepository) RecentUsers(ctx context.Context, limit int) ([]entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []adminUserDB

	query, args, err := sqlx.Named(querySelectUsers+" ORDER BY created_at DESC LIMIT :limit", map[string]interface{}{"limit": limit})
	if err != nil {
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Recent users execution err")
		return nil, err
	}

	var list []entity.User
	for _, row := range rows {
		list = append(list, makeAdminUser(row))
	}

	return list, nil
}

func (r *statsRepository) RecentBlogs(ctx context.Context, limit int) ([]entity.BlogWithAuthor, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []adminBlogDB

	query, args, err := sqlx.Named(querySelectBlogs+" ORDER BY b.created_at DESC LIMIT :limit", map[string]interface{}{"limit": limit})
	if err != nil {
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Recent blogs execution err")
		return nil, err
	}

	var list []entity.BlogWithAuthor
	for _, row := range rows {
		list = append(list, makeAdminBlog(row))
	}

	return list, nil
}

func (r *statsRepository) ListComments(ctx context.Context, limit, offset int) ([]entity.CommentWithRefs, int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	var total int
	countQuery := r.q.Rebind(queryCountComments)
	if err := r.q.QueryRowxContext(ctx, countQuery).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Count comments execution err")
		return nil, 0, err
	}

	var rows []adminCommentDB
	query, args, err := sqlx.Named(querySelectComments, map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	})
	if err != nil {
		return nil, 0, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("List comments execution err")
		return nil, 0, err
	}

	var list []entity.CommentWithRefs
	for _, row := range rows {
		list = append(list, entity.CommentWithRefs{
			Comment: entity.Comment{
				ID:        row.ID.String,
				Content:   row.Content.String,
				Author:    row.Author.String,
				Blog:      row.Blog.String,
				CreatedAt: row.CreatedAt,
				UpdatedAt: row.UpdatedAt,
			},
			AuthorUsername:  row.AuthorUsername.String,
			AuthorFirstName: row.AuthorFirstName.String,
			AuthorLastName:  row.AuthorLastName.String,
			BlogTitle:       row.BlogTitle.String,
			BlogSlug:        row.BlogSlug.String,
		})
	}

	return list, total, nil
}
