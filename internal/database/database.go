package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"

	"stablecard/internal/domainerrors"
	"stablecard/internal/model"
)

// Client reads the issuer catalog from Postgres. The API only ever calls
// GetIssuers and Ping; ReplaceIssuers is for the offline import in
// cmd/migrate.
type Client interface {
	Close()
	Ping(ctx context.Context) error
	GetIssuers(ctx context.Context) ([]model.Issuer, error)
	ReplaceIssuers(ctx context.Context, issuers []model.Issuer) error
}

type client struct {
	db *sql.DB
}

func NewClient(connStr string) (Client, error) {
	db, err := sql.Open("postgres", connStr)

	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return &client{db: db}, nil
}

func (c *client) Close() {
	err := c.db.Close()
	if err != nil {
		log.Errorf("closing database: %v", err)
	}
}

func (c *client) Ping(ctx context.Context) error {
	if err := c.db.PingContext(ctx); err != nil {
		return domainerrors.Wrap(err, domainerrors.CodeUnavailable, fmt.Sprintf("pinging database: %v", err))
	}
	return nil
}

// GetIssuers returns every stored issuer in catalog order.
func (c *client) GetIssuers(ctx context.Context) ([]model.Issuer, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT id, document FROM issuers ORDER BY position, id`)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeUnavailable, fmt.Sprintf("querying issuers: %v", err))
	}
	defer rows.Close()

	issuers := []model.Issuer{}
	for rows.Next() {
		var id string
		var document []byte
		if err := rows.Scan(&id, &document); err != nil {
			return nil, fmt.Errorf("scanning issuer row: %w", err)
		}

		var issuer model.Issuer
		if err := json.Unmarshal(document, &issuer); err != nil {
			return nil, domainerrors.Wrap(err, domainerrors.CodeValidation,
				fmt.Sprintf("decoding issuer %s: %v", id, err))
		}
		issuers = append(issuers, issuer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating issuer rows: %w", err)
	}

	return issuers, nil
}

// ReplaceIssuers swaps the stored catalog for issuers in one transaction,
// keeping their order in the position column.
func (c *client) ReplaceIssuers(ctx context.Context, issuers []model.Issuer) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			log.Errorf("rolling back issuer import: %v", err)
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM issuers`); err != nil {
		return fmt.Errorf("clearing issuers: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO issuers (id, position, document) VALUES ($1, $2, $3)`)
	if err != nil {
		return fmt.Errorf("preparing issuer insert: %w", err)
	}
	defer stmt.Close()

	for position, issuer := range issuers {
		document, err := json.Marshal(issuer)
		if err != nil {
			return fmt.Errorf("encoding issuer %s: %w", issuer.ID, err)
		}

		if _, err := stmt.ExecContext(ctx, issuer.ID, position, document); err != nil {
			return fmt.Errorf("inserting issuer %s: %w", issuer.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing issuer import: %w", err)
	}

	return nil
}
