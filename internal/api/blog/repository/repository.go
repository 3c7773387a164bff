package blogRepository

import (
	blogs "inkwell/internal/api/blog"
	"inkwell/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		var sqlTx *sqlx.Tx
		sqlTx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}
		sqlExecutor = sqlTx
		commitFunc = sqlTx.Commit
		rollbackFunc = sqlTx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Blogs:    &blogsRepository{q: sqlExecutor, log: r.log},
		Likes:    &blogLikesRepository{q: sqlExecutor, log: r.log},
		Comments: &blogCommentsRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Blogs interface {
		Create(ctx context.Context, blog entity.Blog) error
		GetByID(ctx context.Context, id string, viewerID string) (entity.BlogWithAuthor, error)
		GetBySlug(ctx context.Context, slug string, viewerID string) (entity.BlogWithAuthor, error)
		SlugExists(ctx context.Context, slug string) (bool, error)
		List(ctx context.Context, filter blogs.ListFilter, viewerID string, limit, offset int) ([]entity.BlogWithAuthor, int, error)
		Update(ctx context.Context, blog entity.Blog) error
		Delete(ctx context.Context, id string) error
	}

	Likes interface {
		Exists(ctx context.Context, blogID, userID string) (bool, error)
		Add(ctx context.Context, blogID, userID string) error
		Remove(ctx context.Context, blogID, userID string) error
		Count(ctx context.Context, blogID string) (int, error)
	}

	Comments interface {
		DeleteByBlog(ctx context.Context, blogID string) error
	}

	Commit   func() error
	Rollback func() error
}

type blogsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type blogLikesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type blogCommentsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
