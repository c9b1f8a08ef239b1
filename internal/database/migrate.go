package database

import (
	"context"
	"database/sql"
	"fmt"
)

// migrations holds the full schema as idempotent statements.  The
// service owns its schema so a fresh database is usable after one
// startup; there is no separate migration tool.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS halls (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name VARCHAR(191) NOT NULL,
		short_code VARCHAR(16) NOT NULL,
		category VARCHAR(16) NOT NULL,
		capacity INT UNSIGNED NOT NULL DEFAULT 0,
		established_year INT UNSIGNED NOT NULL DEFAULT 0,
		provost_name VARCHAR(191) NOT NULL DEFAULT '',
		provost_contact VARCHAR(191) NOT NULL DEFAULT '',
		image_url VARCHAR(512) NOT NULL DEFAULT '',
		local_image VARCHAR(512) NOT NULL DEFAULT '',
		fallback_image VARCHAR(512) NOT NULL DEFAULT '',
		PRIMARY KEY (id),
		UNIQUE KEY uq_halls_short_code (short_code)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name VARCHAR(191) NOT NULL,
		email VARCHAR(191) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(32) NOT NULL,
		student_id VARCHAR(64) NULL,
		hall_id BIGINT UNSIGNED NULL,
		is_active TINYINT(1) NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_users_email (email),
		KEY idx_users_hall (hall_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		user_id BIGINT UNSIGNED NOT NULL,
		token_hash CHAR(64) NOT NULL,
		expires_at DATETIME NOT NULL,
		revoked_at DATETIME NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_refresh_tokens_hash (token_hash),
		KEY idx_refresh_tokens_user (user_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS forms (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name VARCHAR(191) NOT NULL,
		active TINYINT(1) NOT NULL DEFAULT 0,
		hall_id BIGINT UNSIGNED NULL,
		schema_json MEDIUMTEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_forms_hall (hall_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS applications (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		user_id BIGINT UNSIGNED NOT NULL,
		form_id BIGINT UNSIGNED NOT NULL,
		hall_id BIGINT UNSIGNED NULL,
		data_json MEDIUMTEXT NOT NULL,
		attachments_json MEDIUMTEXT NOT NULL,
		status VARCHAR(32) NOT NULL DEFAULT 'Submitted',
		payment_done TINYINT(1) NOT NULL DEFAULT 0,
		score INT NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_applications_user (user_id),
		KEY idx_applications_hall (hall_id),
		KEY idx_applications_status (status)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS seats (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		hall_id BIGINT UNSIGNED NOT NULL,
		floor INT UNSIGNED NOT NULL,
		room INT UNSIGNED NOT NULL,
		bed INT UNSIGNED NOT NULL,
		status VARCHAR(32) NOT NULL DEFAULT 'Available',
		student_id VARCHAR(64) NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_seats_address (hall_id, floor, room, bed)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS renewals (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		user_id BIGINT UNSIGNED NOT NULL,
		status VARCHAR(32) NOT NULL DEFAULT 'Requested',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_renewals_user (user_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS notifications (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		title VARCHAR(191) NOT NULL,
		body TEXT NOT NULL,
		hall_id BIGINT UNSIGNED NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_notifications_hall (hall_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS complaints (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		user_id BIGINT UNSIGNED NOT NULL,
		hall_id BIGINT UNSIGNED NULL,
		title VARCHAR(191) NOT NULL,
		body TEXT NOT NULL,
		attachments_json TEXT NOT NULL,
		status VARCHAR(32) NOT NULL DEFAULT 'Open',
		reviewed_by BIGINT UNSIGNED NULL,
		review_notes TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_complaints_user (user_id),
		KEY idx_complaints_hall (hall_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS uploads (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		kind VARCHAR(32) NOT NULL,
		hall_id BIGINT UNSIGNED NOT NULL,
		name VARCHAR(191) NOT NULL,
		content MEDIUMTEXT NOT NULL,
		rows_json MEDIUMTEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_uploads_kind_hall (kind, hall_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Migrate applies the schema statements in order.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
