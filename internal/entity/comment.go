package entity

import "time"

type Comment struct {
	ID        string    `db:"id"`
	Content   string    `db:"content"`
	Author    string    `db:"author"`
	Blog      string    `db:"blog"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CommentWithRefs expands the author and blog references for responses.
type CommentWithRefs struct {
	Comment
	AuthorUsername  string
	AuthorFirstName string
	AuthorLastName  string
	AuthorAvatarURL string
	BlogTitle       string
	BlogSlug        string
	LikeCount       int
	LikedByUser     bool
}
