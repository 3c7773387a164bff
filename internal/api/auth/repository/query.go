package authRepository

const (
	queryCreateUser = `
		INSERT INTO users (
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
		) VALUES (
			:id,
			:username,
			:email,
			:password,
			:first_name,
			:last_name,
			:bio,
			:avatar_url,
			:role,
			:provider,
			:is_active,
			:created_at,
			:updated_at
		)
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

	queryGetUserByEmail = `
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
		WHERE email = :email
	`

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

	queryUpdateUserProfile = `
		UPDATE users
		SET
			first_name = CASE WHEN :first_name = '' THEN first_name ELSE :first_name END,
			last_name = CASE WHEN :last_name = '' THEN last_name ELSE :last_name END,
			bio = CASE WHEN :bio = '' THEN bio ELSE :bio END,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryUpdateUserAvatar = `
		UPDATE users
		SET
			avatar_url = :avatar_url,
			updated_at = :updated_at
		WHERE id = :id
	`
)
