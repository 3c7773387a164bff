package adminRepository

const (
	queryDashboardCounts = `
		SELECT
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM blogs) AS total_blogs,
			(SELECT COUNT(*) FROM blogs WHERE status = 'published') AS published_blogs,
			(SELECT COUNT(*) FROM comments) AS total_comments
	`

	querySelectUsers = `
		SELECT
			id,
			username,
			email,
			first_name,
			last_name,
			avatar_url,
			role,
			is_active,
			created_at,
			updated_at
		FROM users
	`

	queryCountUsers = `
		SELECT COUNT(*)
		FROM users
	`

	querySelectBlogs = `
		SELECT
			b.id,
			b.title,
			b.slug,
			b.excerpt,
			b.category,
			b.status,
			b.author,
			b.created_at,
			b.updated_at,
			u.username AS author_username,
			u.first_name AS author_first_name,
			u.last_name AS author_last_name
		FROM blogs b
		JOIN users u ON u.id = b.author
	`

	queryCountBlogs = `
		SELECT COUNT(*)
		FROM blogs b
		JOIN users u ON u.id = b.author
	`

	querySelectComments = `
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
			b.title AS blog_title,
			b.slug AS blog_slug
		FROM comments cm
		JOIN users u ON u.id = cm.author
		JOIN blogs b ON b.id = cm.blog
		ORDER BY cm.created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountComments = `
		SELECT COUNT(*)
		FROM comments
	`

	queryGetUserByID = `
		SELECT
			id,
			username,
			email,
			first_name,
			last_name,
			avatar_url,
			role,
			is_active,
			created_at,
			updated_at
		FROM users
		WHERE id = :id
	`

	queryUpdateUserRole = `
		UPDATE users
		SET role = :role, updated_at = :updated_at
		WHERE id = :id
	`

	queryUpdateUserStatus = `
		UPDATE users
		SET is_active = :is_active, updated_at = :updated_at
		WHERE id = :id
	`

	// User cascade delete. Likes and follows clear through the schema's
	// referential actions; comments and blogs need explicit passes.
	queryDeleteCommentsOnUserBlogs = `
		DELETE FROM comments
		WHERE blog IN (SELECT id FROM blogs WHERE author = :id)
	`

	queryDeleteUserComments = `
		DELETE FROM comments
		WHERE author = :id
	`

	queryDeleteUserBlogs = `
		DELETE FROM blogs
		WHERE author = :id
	`

	queryDeleteUser = `
		DELETE FROM users
		WHERE id = :id
	`

	queryUpdateBlogStatus = `
		UPDATE blogs
		SET status = :status, updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteBlogComments = `
		DELETE FROM comments
		WHERE blog = :id
	`

	queryDeleteBlogRow = `
		DELETE FROM blogs
		WHERE id = :id
	`
)
