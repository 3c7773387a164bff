package userRepository

const (
	queryGetUserByUsername = `
		SELECT
			id,
			username,
			email,
			password,
			first_name,
			last_name,
			bio,
			avatar_url,
			role,
			provider,
			is_active,
			created_at,
			updated_at
		FROM users
		WHERE username = :username
	`

	queryGetUserByID = `
		SELECT
			id,
			username,
			email,
			password,
			first_name,
			last_name,
			bio,
			avatar_url,
			role,
			provider,
			is_active,
			created_at,
			updated_at
		FROM users
		WHERE id = :id
	`

	queryProfileCounts = `
		SELECT
			(SELECT COUNT(*) FROM blogs b WHERE b.author = :user_id AND b.status = 'published') AS published_blogs,
			(SELECT COUNT(*) FROM user_follows f WHERE f.following_id = :user_id) AS followers,
			(SELECT COUNT(*) FROM user_follows f WHERE f.follower_id = :user_id) AS following,
			EXISTS (
				SELECT 1 FROM user_follows f
				WHERE f.follower_id = :viewer_id AND f.following_id = :user_id
			) AS followed_by_me
	`

	queryFollowExists = `
		SELECT EXISTS (
			SELECT 1 FROM user_follows
			WHERE follower_id = :follower_id AND following_id = :following_id
		)
	`

	queryAddFollow = `
		INSERT INTO user_follows (follower_id, following_id)
		VALUES (:follower_id, :following_id)
		ON CONFLICT DO NOTHING
	`

	queryRemoveFollow = `
		DELETE FROM user_follows
		WHERE follower_id = :follower_id AND following_id = :following_id
	`

	queryCountFollowers = `
		SELECT COUNT(*)
		FROM user_follows
		WHERE following_id = :user_id
	`

	queryListFollowers = `
		SELECT
			u.id,
			u.username,
			u.first_name,
			u.last_name,
			u.avatar_url
		FROM user_follows f
		JOIN users u ON u.id = f.follower_id
		WHERE f.following_id = :user_id
		ORDER BY u.username ASC
	`

	queryListFollowing = `
		SELECT
			u.id,
			u.username,
			u.first_name,
			u.last_name,
			u.avatar_url
		FROM user_follows f
		JOIN users u ON u.id = f.following_id
		WHERE f.follower_id = :user_id
		ORDER BY u.username ASC
	`
)
