package repository

// Schemas are kept per backend: ID generation, float, boolean and timestamp
// types differ across the three engines. Statements must be idempotent.

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'user',
		created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id        INTEGER NOT NULL REFERENCES users(id),
		item_number    TEXT NOT NULL,
		title          TEXT NOT NULL,
		category       TEXT NOT NULL CHECK (category IN ('Living Room', 'Dining Room', 'Bedrooms', 'Mattresses', 'Rugs')),
		purchase_price REAL NOT NULL CHECK (purchase_price >= 0),
		sold_price     REAL CHECK (sold_price >= 0),
		in_store       BOOLEAN NOT NULL,
		delivery_price REAL NOT NULL DEFAULT 0 CHECK (delivery_price >= 0),
		status         TEXT NOT NULL CHECK (status IN ('in_store', 'listed', 'sold', 'shipped', 'returned')),
		created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_items_user ON items(user_id)`,
	`CREATE TABLE IF NOT EXISTS expenses (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		item_id    INTEGER NOT NULL REFERENCES items(id) ON DELETE CASCADE,
		type       TEXT NOT NULL CHECK (type IN ('shipping', 'platform_fee', 'supplies', 'tax', 'other')),
		amount     REAL NOT NULL CHECK (amount > 0),
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_item ON expenses(item_id)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'user',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		id             BIGSERIAL PRIMARY KEY,
		user_id        BIGINT NOT NULL REFERENCES users(id),
		item_number    TEXT NOT NULL,
		title          TEXT NOT NULL,
		category       TEXT NOT NULL CHECK (category IN ('Living Room', 'Dining Room', 'Bedrooms', 'Mattresses', 'Rugs')),
		purchase_price DOUBLE PRECISION NOT NULL CHECK (purchase_price >= 0),
		sold_price     DOUBLE PRECISION CHECK (sold_price >= 0),
		in_store       BOOLEAN NOT NULL,
		delivery_price DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (delivery_price >= 0),
		status         TEXT NOT NULL CHECK (status IN ('in_store', 'listed', 'sold', 'shipped', 'returned')),
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_items_user ON items(user_id)`,
	`CREATE TABLE IF NOT EXISTS expenses (
		id         BIGSERIAL PRIMARY KEY,
		item_id    BIGINT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
		type       TEXT NOT NULL CHECK (type IN ('shipping', 'platform_fee', 'supplies', 'tax', 'other')),
		amount     DOUBLE PRECISION NOT NULL CHECK (amount > 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_item ON expenses(item_id)`,
}

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGINT AUTO_INCREMENT PRIMARY KEY,
		name          VARCHAR(255) NOT NULL,
		email         VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role          VARCHAR(32) NOT NULL DEFAULT 'user',
		created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		id             BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id        BIGINT NOT NULL,
		item_number    VARCHAR(255) NOT NULL,
		title          VARCHAR(255) NOT NULL,
		category       VARCHAR(32) NOT NULL,
		purchase_price DOUBLE NOT NULL,
		sold_price     DOUBLE NULL,
		in_store       BOOLEAN NOT NULL,
		delivery_price DOUBLE NOT NULL DEFAULT 0,
		status         VARCHAR(32) NOT NULL,
		created_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_items_user (user_id),
		CONSTRAINT fk_items_user FOREIGN KEY (user_id) REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS expenses (
		id         BIGINT AUTO_INCREMENT PRIMARY KEY,
		item_id    BIGINT NOT NULL,
		type       VARCHAR(32) NOT NULL,
		amount     DOUBLE NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_expenses_item (item_id),
		CONSTRAINT fk_expenses_item FOREIGN KEY (item_id) REFERENCES items(id) ON DELETE CASCADE
	)`,
}
