// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	clientStateTable = "client_state"
	colStateKey      = "state_key"
	colStateValue    = "state_value"
	colUpdatedAt     = "updated_at"

	// keys of the persisted session entries
	credentialKey = "jwt_token"
	profileKey    = "user_info"
)

func buildSelectStateQuery(key string) (string, []any, error) {
	return sq.Select(colStateValue).
		From(clientStateTable).
		Where(sq.Eq{colStateKey: key}).
		ToSql()
}

func buildUpsertStateQuery(key, value string) (string, []any, error) {
	return sq.Insert(clientStateTable).
		Columns(colStateKey, colStateValue, colUpdatedAt).
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(" + colStateKey + ") DO UPDATE SET " +
			colStateValue + " = excluded." + colStateValue + ", " +
			colUpdatedAt + " = excluded." + colUpdatedAt).
		ToSql()
}

func buildDeleteStateQuery(keys ...string) (string, []any, error) {
	return sq.Delete(clientStateTable).
		Where(sq.Eq{colStateKey: keys}).
		ToSql()
}
