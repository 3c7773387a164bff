package commentRepository

const (
	queryCreateComment = `
		INSERT INTO comments (
			id,
			content,
			author,
			blog,
			created_at,
			updated_at
		) VALUES (
			:id,
			:content,
			:author,
			:blog,
			:created_at,
			:updated_at
		)
	`

	querySelectComment = `
		SELECT
			cm.id,
			cm.content,
			cm.author,
			cm.blog,
			cm.created_at,
			cm.updated_at,
			u.username AS author_username,
			u.first_name AS author_first_name,
			u.last_name AS author_last_name,
			u.avatar_url AS author_avatar_url,
			b.title AS blog_title,
			b.slug AS blog_slug,
			(SELECT COUNT(*) FROM comment_likes cl WHERE cl.comment_id = cm.id) AS like_count,
			EXISTS (
				SELECT 1 FROM comment_likes cl
				WHERE cl.comment_id = cm.id AND cl.user_id = :viewer_id
			) AS liked_by_user
		FROM comments cm
		JOIN users u ON u.id = cm.author
		JOIN blogs b ON b.id = cm.blog
	`

	queryUpdateComment = `
		UPDATE comments
		SET
			content = :content,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteComment = `
		DELETE FROM comments
		WHERE id = :id
	`

	queryDeleteCommentLikes = `
		DELETE FROM comment_likes
		WHERE comment_id = :comment_id
	`

	queryCommentLikeExists = `
		SELECT EXISTS (
			SELECT 1 FROM comment_likes
			WHERE comment_id = :comment_id AND user_id = :user_id
		)
	`

	queryAddCommentLike = `
		INSERT INTO comment_likes (comment_id, user_id)
		VALUES (:comment_id, :user_id)
		ON CONFLICT DO NOTHING
	`

	queryRemoveCommentLike = `
		DELETE FROM comment_likes
		WHERE comment_id = :comment_id AND user_id = :user_id
	`

	queryCountCommentLikes = `
		SELECT COUNT(*)
		FROM comment_likes
		WHERE comment_id = :comment_id
	`
)
