package service

import (
	"context"
	"database/sql"

	"basegraph.app/taskhub/core/db"
	"basegraph.app/taskhub/core/db/sqlc"
	dbsqlite "basegraph.app/taskhub/core/db/sqlite"
	"basegraph.app/taskhub/internal/store"
	storesqlite "basegraph.app/taskhub/internal/store/sqlite"
)

// StoreProvider exposes the stores bound to one storage session.
type StoreProvider interface {
	Users() store.UserStore
	Workspaces() store.WorkspaceStore
	WorkspaceUsers() store.WorkspaceUserStore
	Tasks() store.TaskStore
	Summary() store.SummaryStore
}

// SessionRunner acquires a storage session, runs fn with stores bound to it and
// releases the session whether or not fn succeeds.
type SessionRunner interface {
	WithSession(ctx context.Context, fn func(stores StoreProvider) error) error
}

type pgSessionRunner struct {
	db *db.DB
}

// NewSessionRunner builds a SessionRunner backed by the Postgres pool.
func NewSessionRunner(db *db.DB) SessionRunner {
	return &pgSessionRunner{db: db}
}

func (r *pgSessionRunner) WithSession(ctx context.Context, fn func(stores StoreProvider) error) error {
	return r.db.WithSession(ctx, func(q *sqlc.Queries) error {
		return fn(store.NewStores(q))
	})
}

type sqliteSessionRunner struct {
	db *dbsqlite.DB
}

// NewSQLiteSessionRunner builds a SessionRunner backed by SQLite.
func NewSQLiteSessionRunner(db *dbsqlite.DB) SessionRunner {
	return &sqliteSessionRunner{db: db}
}

func (r *sqliteSessionRunner) WithSession(ctx context.Context, fn func(stores StoreProvider) error) error {
	return r.db.WithSession(ctx, func(conn *sql.Conn) error {
		return fn(storesqlite.NewStores(conn))
	})
}
