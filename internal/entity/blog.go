package entity

import "time"

type BlogStatus string

const (
	BlogDraft     BlogStatus = "draft"
	BlogPublished BlogStatus = "published"
)

func ValidBlogStatus(s string) bool {
	switch BlogStatus(s) {
	case BlogDraft, BlogPublished:
		return true
	}
	return false
}

type Blog struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Slug      string    `db:"slug"`
	Content   string    `db:"content"`
	Excerpt   string    `db:"excerpt"`
	Category  string    `db:"category"`
	ImageURL  string    `db:"image_url"`
	Status    string    `db:"status"`
	Author    string    `db:"author"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// BlogWithAuthor carries a blog row with its author reference expanded to the
// subset of user fields responses expose.
type BlogWithAuthor struct {
	Blog
	AuthorUsername  string
	AuthorFirstName string
	AuthorLastName  string
	AuthorAvatarURL string
	LikeCount       int
	LikedByUser     bool
}
