package store

import "github.com/MKhiriev/go-form-keeper/migrations"

// MigrateLocal applies the client draft-cache schema (SQLite dialect).
func (db *DB) MigrateLocal() error {
	return migrations.MigrateClient(db.DB)
}

// MigrateAnswerStore applies the server answer-store schema (pgx dialect).
func (db *DB) MigrateAnswerStore() error {
	return migrations.MigrateServer(db.DB)
}
