package blogRepository

const (
	queryCreateBlog = `
		INSERT INTO blogs (
			id,
			title,
			slug,
			content,
			excerpt,
			category,
			image_url,
			status,
			author,
			created_at,
			updated_at
		) VALUES (
			:id,
			:title,
			:slug,
			:content,
			:excerpt,
			:category,
			:image_url,
			:status,
			:author,
			:created_at,
			:updated_at
		)
	`

	// querySelectBlog expands the author reference and computes the like
	// aggregates for the requesting viewer.
	querySelectBlog = `
		SELECT
			b.id,
			b.title,
			b.slug,
			b.content,
			b.excerpt,
			b.category,
			b.image_url,
			b.status,
			b.author,
			b.created_at,
			b.updated_at,
			u.username AS author_username,
			u.first_name AS author_first_name,
			u.last_name AS author_last_name,
			u.avatar_url AS author_avatar_url,
			(SELECT COUNT(*) FROM blog_likes bl WHERE bl.blog_id = b.id) AS like_count,
			EXISTS (
				SELECT 1 FROM blog_likes bl
				WHERE bl.blog_id = b.id AND bl.user_id = :viewer_id
			) AS liked_by_user
		FROM blogs b
		JOIN users u ON u.id = b.author
	`

	queryCountBlogs = `
		SELECT COUNT(*)
		FROM blogs b
		JOIN users u ON u.id = b.author
	`

	querySlugExists = `
		SELECT EXISTS (
			SELECT 1 FROM blogs WHERE slug = :slug
		)
	`

	queryUpdateBlog = `
		UPDATE blogs
		SET
			title = CASE WHEN :title = '' THEN title ELSE :title END,
			slug = CASE WHEN :slug = '' THEN slug ELSE :slug END,
			content = CASE WHEN :content = '' THEN content ELSE :content END,
			excerpt = CASE WHEN :excerpt = '' THEN excerpt ELSE :excerpt END,
			category = CASE WHEN :category = '' THEN category ELSE :category END,
			image_url = CASE WHEN :image_url = '' THEN image_url ELSE :image_url END,
			status = CASE WHEN :status = '' THEN status ELSE :status END,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteBlog = `
		DELETE FROM blogs
		WHERE id = :id
	`

	queryDeleteBlogLikes = `
		DELETE FROM blog_likes
		WHERE blog_id = :blog_id
	`

	queryDeleteCommentsByBlog = `
		DELETE FROM comments
		WHERE blog = :blog_id
	`

	queryDeleteCommentLikesByBlog = `
		DELETE FROM comment_likes
		WHERE comment_id IN (
			SELECT id FROM comments WHERE blog = :blog_id
		)
	`

	queryBlogLikeExists = `
		SELECT EXISTS (
			SELECT 1 FROM blog_likes
			WHERE blog_id = :blog_id AND user_id = :user_id
		)
	`

	queryAddBlogLike = `
		INSERT INTO blog_likes (blog_id, user_id)
		VALUES (:blog_id, :user_id)
		ON CONFLICT DO NOTHING
	`

	queryRemoveBlogLike = `
		DELETE FROM blog_likes
		WHERE blog_id = :blog_id AND user_id = :user_id
	`

	queryCountBlogLikes = `
		SELECT COUNT(*)
		FROM blog_likes
		WHERE blog_id = :blog_id
	`
)
