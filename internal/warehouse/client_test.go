// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package warehouse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/scop/internal/dataset"
)

func TestNewClient(t *testing.T) {
	testCases := map[string]struct {
		environment   map[string]string
		expectedError error
	}{
		"valid postgres configuration": {
			environment: map[string]string{
				"WAREHOUSE_DSN": "postgres://user@localhost:5432/warehouse",
			},
		},
		"valid snowflake configuration": {
			environment: map[string]string{
				"WAREHOUSE_DRIVER": "snowflake",
				"WAREHOUSE_DSN":    "user@account/db/schema?warehouse=XSMALL_WH",
			},
		},
		"missing dsn": {
			environment:   map[string]string{},
			expectedError: ErrMissingEnvVariable,
		},
		"unknown driver": {
			environment: map[string]string{
				"WAREHOUSE_DRIVER": "oracle",
				"WAREHOUSE_DSN":    "something",
			},
			expectedError: ErrInvalidEnvVariable,
		},
		"invalid contacts view": {
			environment: map[string]string{
				"WAREHOUSE_DSN":           "postgres://user@localhost:5432/warehouse",
				"WAREHOUSE_CONTACTS_VIEW": "contacts; DROP TABLE vendors",
			},
			expectedError: ErrInvalidEnvVariable,
		},
	}

	for name, test := range testCases {
		t.Run(name, func(t *testing.T) {
			for key, value := range test.environment {
				t.Setenv(key, value)
			}

			client, err := NewClient()
			if test.expectedError != nil {
				assert.ErrorIs(t, err, test.expectedError)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestNonCompliantContactsWithoutStatuses(t *testing.T) {
	t.Parallel()

	client := &Client{config: config{Driver: DriverPostgres, DSN: "dsn"}}
	_, err := client.NonCompliantContacts(t.Context(), nil)
	assert.ErrorIs(t, err, ErrQuery)
}

func TestLoadDatasetValidation(t *testing.T) {
	t.Parallel()

	client := &Client{config: config{Driver: DriverPostgres, DSN: "dsn"}}

	t.Run("invalid table name", func(t *testing.T) {
		t.Parallel()

		err := client.LoadDataset(t.Context(), "parts; --", &dataset.Dataset{Columns: []string{"a"}})
		assert.ErrorIs(t, err, ErrWrite)
	})

	t.Run("dataset without columns", func(t *testing.T) {
		t.Parallel()

		err := client.LoadDataset(t.Context(), "parts", &dataset.Dataset{})
		assert.ErrorIs(t, err, ErrWrite)
	})

	t.Run("empty dataset is a no-op", func(t *testing.T) {
		t.Parallel()

		err := client.LoadDataset(t.Context(), "parts", &dataset.Dataset{Columns: []string{"a"}})
		assert.NoError(t, err)
	})
}

func TestInsertStatement(t *testing.T) {
	t.Parallel()

	statement, args := insertStatement(
		"db.schema.part_consolidation",
		[]string{"New_Side", "Old_Side"},
		[][]string{
			{"N100", "O100"},
			{"N200", "O200"},
		},
	)

	assert.Equal(t,
		`INSERT INTO db.schema.part_consolidation ("New_Side", "Old_Side") VALUES (?, ?), (?, ?)`,
		statement,
	)
	assert.Equal(t, []any{"N100", "O100", "N200", "O200"}, args)
}

func TestValidIdentifier(t *testing.T) {
	t.Parallel()

	assert.True(t, validIdentifier("part_consolidation"))
	assert.True(t, validIdentifier("db.schema.part_consolidation"))
	assert.False(t, validIdentifier(""))
	assert.False(t, validIdentifier("db.schema.extra.part"))
	assert.False(t, validIdentifier(`parts"; DROP TABLE x`))
}
