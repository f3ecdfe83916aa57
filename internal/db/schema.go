package db

import "database/sql"

func Migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS wallets (
			uid TEXT PRIMARY KEY,
			wallet INTEGER NOT NULL DEFAULT 0,
			bank INTEGER NOT NULL DEFAULT 0
		);`,

		`CREATE TABLE IF NOT EXISTS ledger (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ref TEXT,
			account TEXT,
			debit INTEGER,
			credit INTEGER,
			ts INTEGER
		);`,

		`CREATE TABLE IF NOT EXISTS transfers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			from_uid TEXT,
			to_uid TEXT,
			amount INTEGER,
			status TEXT,
			created_at INTEGER
		);`,

		`CREATE TABLE IF NOT EXISTS market_prices (
			symbol TEXT PRIMARY KEY,
			price REAL NOT NULL,
			prev_price REAL NOT NULL,
			trend TEXT NOT NULL
		);`,

		`CREATE TABLE IF NOT EXISTS market_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			symbol TEXT,
			price REAL,
			ts INTEGER
		);`,

		`CREATE TABLE IF NOT EXISTS holdings (
			uid TEXT,
			symbol TEXT,
			shares INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (uid, symbol)
		);`,

		`CREATE TABLE IF NOT EXISTS audit_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			uid TEXT,
			action TEXT,
			metadata TEXT,
			created_at INTEGER
		);`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
