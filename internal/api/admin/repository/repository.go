package adminRepository

import (
	"inkwell/internal/api/admin"
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
	Ping(ctx context.Context) error
}

// Ping verifies the database is reachable before stat queries run.
func (r *repository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
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
		Stats:    &statsRepository{q: sqlExecutor, log: r.log},
		Users:    &adminUsersRepository{q: sqlExecutor, log: r.log},
		Blogs:    &adminBlogsRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Stats interface {
		Counts(ctx context.Context) (admin.Stats, error)
		RecentUsers(ctx context.Context, limit int) ([]entity.User, error)
		RecentBlogs(ctx context.Context, limit int) ([]entity.BlogWithAuthor, error)
		ListComments(ctx context.Context, limit, offset int) ([]entity.CommentWithRefs, int, error)
	}

	Users interface {
		List(ctx context.Context, filter admin.UserFilter, limit, offset int) ([]entity.User, int, error)
		GetByID(ctx context.Context, id string) (entity.User, error)
		UpdateRole(ctx context.Context, id string, role string) error
		UpdateStatus(ctx context.Context, id string, isActive bool) error
		DeleteCascade(ctx context.Context, id string) error
	}

	Blogs interface {
		List(ctx context.Context, filter admin.BlogFilter, limit, offset int) ([]entity.BlogWithAuthor, int, error)
		GetByID(ctx context.Context, id string) (entity.BlogWithAuthor, error)
		UpdateStatus(ctx context.Context, id string, status string) error
		DeleteCascade(ctx context.Context, id string) error
	}

	Commit   func() error
	Rollback func() error
}

type statsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type adminUsersRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type adminBlogsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
