package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Keys of the five persisted blobs. Each collection lives under its own key
// so a broken write of one never touches another.
const (
	TasksKey        = "focusflow_tasks"
	TransactionsKey = "focusflow_transactions"
	BrainDumpsKey   = "focusflow_braindumps"
	JournalKey      = "focusflow_journal"
	StatsKey        = "focusflow_stats"
)

var AllKeys = []string{TasksKey, TransactionsKey, BrainDumpsKey, JournalKey, StatsKey}

type BlobRepositoryI interface {
	// Returns stored value for key or ErrBlobNotFound
	Get(ctx context.Context, key string) ([]byte, error)
	// Creates or replaces value stored under key
	Put(ctx context.Context, key string, value []byte) error
	// Removes key. Removing an absent key is not an error
	Delete(ctx context.Context, key string) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	SSLMode  string
}

func (pgcfg *PGCfg) ConnString() string {
	connStr := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.SSLMode != "" {
		connStr += "?sslmode=" + pgcfg.SSLMode
	}
	return connStr
}
