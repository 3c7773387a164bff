package userRepository

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
		Profiles: &profilesRepository{q: sqlExecutor, log: r.log},
		Follows:  &followsRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

// ProfileCounts carries the aggregates a public profile exposes.
type ProfileCounts struct {
	PublishedBlogs int  `db:"published_blogs"`
	Followers      int  `db:"followers"`
	Following      int  `db:"following"`
	FollowedByMe   bool `db:"followed_by_me"`
}

type Client struct {
	Profiles interface {
		GetByUsername(ctx context.Context, username string) (entity.User, error)
		GetByID(ctx context.Context, id string) (entity.User, error)
		GetCounts(ctx context.Context, userID string, viewerID string) (ProfileCounts, error)
	}

	Follows interface {
		Exists(ctx context.Context, followerID, followingID string) (bool, error)
		Add(ctx context.Context, followerID, followingID string) error
		Remove(ctx context.Context, followerID, followingID string) error
		CountFollowers(ctx context.Context, userID string) (int, error)
		Followers(ctx context.Context, userID string) ([]entity.User, error)
		Following(ctx context.Context, userID string) ([]entity.User, error)
	}

	Commit   func() error
	Rollback func() error
}

type profilesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type followsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
