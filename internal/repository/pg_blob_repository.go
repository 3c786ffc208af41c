package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/focusflow/internal/error_values"
	"github.com/limbo/focusflow/pkg/cleanup"
)

type PgBlobRepository struct {
	conn PgConnection
}

func NewPgBlobRepo(ctx context.Context, cfg DBConfig) (*PgBlobRepository, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnString())
	if err != nil {
		return nil, errors.New("creating connection for blobsRepo error: " + err.Error())
	}
	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		return nil, errors.New("error while pinging connection for blobsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &PgBlobRepository{
		conn: pool,
	}, nil
}

func NewPgBlobRepoWithConn(conn PgConnection) (*PgBlobRepository, error) {
	err := conn.Ping(context.Background())
	if err != nil {
		return nil, errors.New("error while pinging connection for blobsRepo: " + err.Error())
	}
	return &PgBlobRepository{
		conn: conn,
	}, nil
}

func (br *PgBlobRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	row := br.conn.QueryRow(ctx, `SELECT value FROM blobs WHERE key = $1;`, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrBlobNotFound
		}
		return nil, errors.New("getting blob error: " + err.Error())
	}
	return []byte(value), nil
}

func (br *PgBlobRepository) Put(ctx context.Context, key string, value []byte) error {
	_, err := br.conn.Exec(ctx, `INSERT INTO blobs (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW();`,
		key,
		string(value),
	)
	if err != nil {
		return errors.New("putting blob error: " + err.Error())
	}
	return nil
}

func (br *PgBlobRepository) Delete(ctx context.Context, key string) error {
	_, err := br.conn.Exec(ctx, `DELETE FROM blobs WHERE key = $1;`, key)
	if err != nil {
		return errors.New("deleting blob error: " + err.Error())
	}
	return nil
}
