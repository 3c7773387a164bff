package blogRepository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	blogs "inkwell/internal/api/blog"
	"inkwell/internal/entity"
	contextPkg "inkwell/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type BlogDB struct {
	ID              sql.NullString `db:"id"`
	Title           sql.NullString `db:"title"`
	Slug            sql.NullString `db:"slug"`
	Content         sql.NullString `db:"content"`
	Excerpt         sql.NullString `db:"excerpt"`
	Category        sql.NullString `db:"category"`
	ImageURL        sql.NullString `db:"image_url"`
	Status          sql.NullString `db:"status"`
	Author          sql.NullString `db:"author"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
	AuthorUsername  sql.NullString `db:"author_username"`
	AuthorFirstName sql.NullString `db:"author_first_name"`
	AuthorLastName  sql.NullString `db:"author_last_name"`
	AuthorAvatarURL sql.NullString `db:"author_avatar_url"`
	LikeCount       int            `db:"like_count"`
	LikedByUser     bool           `db:"liked_by_user"`
}

func (r *blogsRepository) Create(ctx context.Context, blog entity.Blog) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         blog.ID,
		"title":      blog.Title,
		"slug":       blog.Slug,
		"content":    blog.Content,
		"excerpt":    blog.Excerpt,
		"category":   blog.Category,
		"image_url":  blog.ImageURL,
		"status":     blog.Status,
		"author":     blog.Author,
		"created_at": blog.CreatedAt,
		"updated_at": blog.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for Create blog")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating blog")
		return err
	}

	return nil
}

func (r *blogsRepository) GetByID(ctx context.Context, id string, viewerID string) (entity.BlogWithAuthor, error) {
	return r.getOne(ctx, "b.id = :id", map[string]interface{}{
		"id":        id,
		"viewer_id": viewerID,
	})
}

func (r *blogsRepository) GetBySlug(ctx context.Context, slug string, viewerID string) (entity.BlogWithAuthor, error) {
	return r.getOne(ctx, "b.slug = :slug", map[string]interface{}{
		"slug":      slug,
		"viewer_id": viewerID,
	})
}

func (r *blogsRepository) getOne(ctx context.Context, condition string, argsKV map[string]interface{}) (entity.BlogWithAuthor, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var blog BlogDB

	query, args, err := sqlx.Named(querySelectBlog+" WHERE "+condition, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Get blog named query preparation err")
		return entity.BlogWithAuthor{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&blog); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.BlogWithAuthor{}, blogs.ErrBlogNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Get blog execution err")
		return entity.BlogWithAuthor{}, err
	}

	return makeBlog(blog), nil
}

func (r *blogsRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var exists bool

	query, args, err := sqlx.Named(querySlugExists, map[string]interface{}{"slug": slug})
	if err != nil {
		return false, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&exists); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SlugExists execution err")
		return false, err
	}

	return exists, nil
}

// List applies the optional filters, newest first. Empty filter fields
// are skipped entirely.
func (r *blogsRepository) List(ctx context.Context, filter blogs.ListFilter, viewerID string, limit, offset int) ([]entity.BlogWithAuthor, int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	conditions := []string{"1 = 1"}
	argsKV := map[string]interface{}{
		"viewer_id": viewerID,
		"limit":     limit,
		"offset":    offset,
	}

	if filter.Status != "" {
		conditions = append(conditions, "b.status = :status")
		argsKV["status"] = filter.Status
	}
	if filter.Category != "" {
		conditions = append(conditions, "b.category = :category")
		argsKV["category"] = filter.Category
	}
	if filter.Author != "" {
		conditions = append(conditions, "u.username = :author_username_filter")
		argsKV["author_username_filter"] = filter.Author
	}
	if filter.Search != "" {
		conditions = append(conditions, "(b.title ILIKE :search OR b.excerpt ILIKE :search OR b.content ILIKE :search)")
		argsKV["search"] = "%" + filter.Search + "%"
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

	var rows []BlogDB
	query, args, err := sqlx.Named(querySelectBlog+whereClause+" ORDER BY b.created_at DESC LIMIT :limit OFFSET :offset", argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("List blogs named query preparation err")
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
		list = append(list, makeBlog(row))
	}

	return list, total, nil
}

func (r *blogsRepository) Update(ctx context.Context, blog entity.Blog) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         blog.ID,
		"title":      blog.Title,
		"slug":       blog.Slug,
		"content":    blog.Content,
		"excerpt":    blog.Excerpt,
		"category":   blog.Category,
		"image_url":  blog.ImageURL,
		"status":     blog.Status,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Update blog named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Update blog execution err")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return blogs.ErrBlogNotFound
	}

	return nil
}

func (r *blogsRepository) Delete(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteBlog, map[string]interface{}{"id": id})
	if err != nil {
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Delete blog execution err")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return blogs.ErrBlogNotFound
	}

	return nil
}

func makeBlog(b BlogDB) entity.BlogWithAuthor {
	return entity.BlogWithAuthor{
		Blog: entity.Blog{
			ID:        b.ID.String,
			Title:     b.Title.String,
			Slug:      b.Slug.String,
			Content:   b.Content.String,
			Excerpt:   b.Excerpt.String,
			Category:  b.Category.String,
			ImageURL:  b.ImageURL.String,
			Status:    b.Status.String,
			Author:    b.Author.String,
			CreatedAt: b.CreatedAt,
			UpdatedAt: b.UpdatedAt,
		},
		AuthorUsername:  b.AuthorUsername.String,
		AuthorFirstName: b.AuthorFirstName.String,
		AuthorLastName:  b.AuthorLastName.String,
		AuthorAvatarURL: b.AuthorAvatarURL.String,
		LikeCount:       b.LikeCount,
		LikedByUser:     b.LikedByUser,
	}
}
