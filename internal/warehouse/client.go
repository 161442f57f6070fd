// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package warehouse

import (
	"context"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/jmoiron/sqlx"

	// database/sql drivers selectable via WAREHOUSE_DRIVER.
	_ "github.com/lib/pq"
	_ "github.com/snowflakedb/gosnowflake"

	"github.com/mia-platform/scop/internal/dataset"
	"github.com/mia-platform/scop/internal/supplier"
)

// loadBatchSize bounds the number of rows inserted per statement during a
// bulk load, keeping the placeholder count within driver limits.
const loadBatchSize = 500

// contactsQueryTemplate selects the flat contact rows of every vendor whose
// compliance status falls in the given set. The %s is the configured
// contacts view, validated as an identifier before splicing.
const contactsQueryTemplate = `SELECT vendor_code, vendor_name, compliance_status, contact_kind, contact_name, email
FROM %s
WHERE compliance_status IN (?)
ORDER BY vendor_code, contact_kind, contact_name`

// Querier returns the contact rows of non-compliant vendors.
type Querier interface {
	NonCompliantContacts(ctx context.Context, statuses []string) ([]supplier.ContactRow, error)
}

// Loader bulk-loads a consolidated dataset into a warehouse table.
type Loader interface {
	LoadDataset(ctx context.Context, table string, ds *dataset.Dataset) error
}

var _ Querier = &Client{}
var _ Loader = &Client{}

// Client implements Querier and Loader over a database/sql connection.
type Client struct {
	config

	db *sqlx.DB
}

// NewClient creates a new warehouse client reading the needed configuration
// from the env variables. The connection is established lazily on first use.
func NewClient() (*Client, error) {
	config, err := env.ParseAs[config]()
	if err != nil {
		return nil, wrapError(ErrConnection, err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &Client{config: config}, nil
}

// connect opens and pings the database connection once, reusing it afterwards.
func (c *Client) connect(ctx context.Context) (*sqlx.DB, error) {
	if c.db != nil {
		return c.db, nil
	}

	db, err := sqlx.Open(c.Driver, c.DSN)
	if err != nil {
		return nil, wrapError(ErrConnection, err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, wrapError(ErrConnection, err)
	}

	c.db = db
	return db, nil
}

// Close releases the underlying database connection.
func (c *Client) Close() error {
	if c.db == nil {
		return nil
	}

	err := c.db.Close()
	c.db = nil
	return wrapError(ErrConnection, err)
}

// NonCompliantContacts implements Querier.
func (c *Client) NonCompliantContacts(ctx context.Context, statuses []string) ([]supplier.ContactRow, error) {
	if len(statuses) == 0 {
		return nil, fmt.Errorf("%w: no compliance statuses provided", ErrQuery)
	}

	db, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.QueryTimeout)
	defer cancel()

	query, args, err := sqlx.In(fmt.Sprintf(contactsQueryTemplate, c.ContactsView), statuses)
	if err != nil {
		return nil, wrapError(ErrQuery, err)
	}

	rows := make([]supplier.ContactRow, 0)
	if err := db.SelectContext(ctx, &rows, db.Rebind(query), args...); err != nil {
		return nil, wrapError(ErrQuery, err)
	}

	return rows, nil
}

// LoadDataset implements Loader. The whole dataset is written inside a single
// transaction: any failure rolls back every row already inserted.
func (c *Client) LoadDataset(ctx context.Context, table string, ds *dataset.Dataset) error {
	if !validIdentifier(table) {
		return fmt.Errorf("%w: invalid table name %q", ErrWrite, table)
	}

	if len(ds.Columns) == 0 {
		return fmt.Errorf("%w: dataset has no columns", ErrWrite)
	}

	if len(ds.Rows) == 0 {
		return nil
	}

	db, err := c.connect(ctx)
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return wrapError(ErrWrite, err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	for start := 0; start < len(ds.Rows); start += loadBatchSize {
		end := min(start+loadBatchSize, len(ds.Rows))
		statement, args := insertStatement(table, ds.Columns, ds.Rows[start:end])
		if _, err := tx.ExecContext(ctx, tx.Rebind(statement), args...); err != nil {
			return wrapError(ErrWrite, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return wrapError(ErrWrite, err)
	}

	return nil
}

// insertStatement builds a multi-row INSERT for the given batch and returns
// it with the flattened argument list. Column names are double-quoted to
// keep the case the spreadsheets declared.
func insertStatement(table string, columns []string, rows [][]string) (string, []any) {
	quoted := make([]string, len(columns))
	for i, column := range columns {
		quoted[i] = `"` + strings.ReplaceAll(column, `"`, `""`) + `"`
	}

	placeholderRow := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ") + ")"
	placeholders := make([]string, len(rows))
	args := make([]any, 0, len(rows)*len(columns))
	for i, row := range rows {
		placeholders[i] = placeholderRow
		for _, value := range row {
			args = append(args, value)
		}
	}

	statement := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		table,
		strings.Join(quoted, ", "),
		strings.Join(placeholders, ", "),
	)

	return statement, args
}
