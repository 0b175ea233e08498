// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

func TestMigrate_NilDB(t *testing.T) {
	applied, err := Migrate(context.Background(), nil)

	assert.ErrorIs(t, err, ErrNilDB)
	assert.Nil(t, applied)
}

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations are set, so the first statement goose runs fails
	_, err = Migrate(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	ctx := context.Background()

	applied, err := Migrate(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, applied)

	again, err := Migrate(ctx, db)
	require.NoError(t, err)
	assert.Empty(t, again)

	_, err = db.ExecContext(ctx, `INSERT INTO client_state (state_key, state_value) VALUES ('credential', 'x')`)
	assert.NoError(t, err)
}

func TestEmbeddedMigrations(t *testing.T) {
	data, err := fs.ReadFile(embedMigrations, "00001_create_client_state.sql")
	require.NoError(t, err)

	for _, want := range []string{"-- +goose Up", "-- +goose Down", "client_state", "state_key"} {
		assert.Contains(t, string(data), want)
	}
}
