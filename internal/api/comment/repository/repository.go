package commentRepository

import (
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
		Comments: &commentsRepository{q: sqlExecutor, log: r.log},
		Likes:    &commentLikesRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Comments interface {
		Create(ctx context.Context, comment entity.Comment) error
		GetByID(ctx context.Context, id string, viewerID string) (entity.CommentWithRefs, error)
		ListByBlog(ctx context.Context, blogID string, viewerID string) ([]entity.CommentWithRefs, error)
		Update(ctx context.Context, id string, content string) error
		Delete(ctx context.Context, id string) error
	}

	Likes interface {
		Exists(ctx context.Context, commentID, userID string) (bool, error)
		Add(ctx context.Context, commentID, userID string) error
		Remove(ctx context.Context, commentID, userID string) error
		Count(ctx context.Context, commentID string) (int, error)
	}

	Commit   func() error
	Rollback func() error
}

type commentsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type commentLikesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
