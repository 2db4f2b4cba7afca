// Package sqlite implements the store interfaces on top of database/sql and
// the modernc SQLite driver.
package sqlite

import (
	"context"
	"database/sql"

	"basegraph.app/taskhub/internal/store"
)

// Querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Stores struct {
	q Querier
}

func NewStores(q Querier) *Stores {
	return &Stores{q: q}
}

func (s *Stores) Users() store.UserStore {
	return &userStore{q: s.q}
}

func (s *Stores) Workspaces() store.WorkspaceStore {
	return &workspaceStore{q: s.q}
}

func (s *Stores) WorkspaceUsers() store.WorkspaceUserStore {
	return &workspaceUserStore{q: s.q}
}

func (s *Stores) Tasks() store.TaskStore {
	return &taskStore{q: s.q}
}

func (s *Stores) Summary() store.SummaryStore {
	return &summaryStore{q: s.q}
}
