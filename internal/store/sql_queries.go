package store

const (
	createUser = `INSERT INTO users (email, password_hash, is_ops, verification_token, verification_token_expires)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, email, password_hash, is_ops, is_active, created_at, verification_token, verification_token_expires, reset_token, reset_token_expires;`

	findUserByEmail = `SELECT user_id, email, password_hash, is_ops, is_active, created_at, verification_token, verification_token_expires, reset_token, reset_token_expires
    FROM users
    WHERE email = $1;`

	findUserByVerificationToken = `SELECT user_id, email, password_hash, is_ops, is_active, created_at, verification_token, verification_token_expires, reset_token, reset_token_expires
    FROM users
    WHERE verification_token = $1;`

	findUserByResetToken = `SELECT user_id, email, password_hash, is_ops, is_active, created_at, verification_token, verification_token_expires, reset_token, reset_token_expires
    FROM users
    WHERE reset_token = $1;`

	activateUser = `UPDATE users
    SET is_active = TRUE, verification_token = NULL, verification_token_expires = NULL
    WHERE user_id = $1;`

	setVerificationToken = `UPDATE users
    SET verification_token = $2, verification_token_expires = $3
    WHERE user_id = $1;`

	setResetToken = `UPDATE users
    SET reset_token = $2, reset_token_expires = $3
    WHERE user_id = $1;`

	updatePassword = `UPDATE users
    SET password_hash = $2, reset_token = NULL, reset_token_expires = NULL
    WHERE user_id = $1;`

	createFile = `INSERT INTO files (filename, file_path, file_type, uploaded_by, file_size)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING file_id, filename, file_path, file_type, uploaded_by, upload_date, file_size, download_url;`

	setDownloadURL = `UPDATE files
    SET download_url = $2
    WHERE file_id = $1;`
)
