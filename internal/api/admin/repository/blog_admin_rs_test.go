package adminRepository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"

	"inkwell/internal/api/admin"
)

func newBlogRepoTest(t *testing.T) (*adminBlogsRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	return &adminBlogsRepository{q: sqlx.NewDb(db, "postgres"), log: log}, mock
}

func TestListBlogsSearchesTitleAndContent(t *testing.T) {
	repo, mock := newBlogRepoTest(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM blogs b JOIN users u ON u\.id = b\.author WHERE 1 = 1 AND \(b\.title ILIKE \$1 OR b\.content ILIKE \$2\)`).
		WithArgs("%gopher%", "%gopher%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	now := time.Now()
	mock.ExpectQuery(`\(b\.title ILIKE \$1 OR b\.content ILIKE \$2\) ORDER BY b\.created_at DESC LIMIT \$3 OFFSET \$4`).
		WithArgs("%gopher%", "%gopher%", 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "slug", "excerpt", "category", "status", "author",
			"created_at", "updated_at", "author_username", "author_first_name", "author_last_name",
		}).AddRow("b1", "Weekly digest", "weekly-digest", "", "tech", "published", "u1", now, now, "jdoe", "John", "Doe"))

	// "gopher" only appears in the body of this blog, not its title.
	list, total, err := repo.List(context.Background(), admin.BlogFilter{Search: "gopher"}, 10, 0)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, list, 1)
	require.Equal(t, "Weekly digest", list[0].Title)
	require.Equal(t, "jdoe", list[0].AuthorUsername)

	require.NoError(t, mock.ExpectationsWereMet())
}
