// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func queriesTestContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func Test_buildSelectApplicationQuery_SQLContainsParts(t *testing.T) {
	ctx := queriesTestContext()
	applicationID := "app-42"

	query, args, err := buildSelectApplicationQuery(ctx, applicationID)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 1)
	require.Equal(t, applicationID, args[0])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from applications")
	require.Contains(t, q, "where")
	require.Contains(t, q, "application_id")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")

	// columns presence (subset / key columns)
	require.Contains(t, q, "answers")
	require.Contains(t, q, "updated_at")
	require.Contains(t, q, "submitted")
}

func Test_buildUpsertAnswersQuery(t *testing.T) {
	ctx := queriesTestContext()
	now := time.Now()

	query, args, err := buildUpsertAnswersQuery(ctx, "app-1", []byte(`{"q1":{"kind":"text","text":"hi"}}`), now)
	require.NoError(t, err)

	require.Len(t, args, 4)
	require.Equal(t, "app-1", args[0])
	require.Equal(t, now, args[2])
	require.Equal(t, false, args[3])

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into applications")
	require.Contains(t, q, "on conflict (application_id) do update")
	// запись в отправленную заявку должна быть отклонена
	require.Contains(t, q, "applications.submitted = false")
	require.Contains(t, query, "$1")
	require.Contains(t, query, "$4")
}

func Test_buildSubmitApplicationQuery(t *testing.T) {
	ctx := queriesTestContext()
	now := time.Now()

	query, args, err := buildSubmitApplicationQuery(ctx, "app-1", now)
	require.NoError(t, err)

	// submitted=true, updated_at, plus two WHERE conditions
	require.Len(t, args, 4)

	q := strings.ToLower(query)
	require.Contains(t, q, "update applications")
	require.Contains(t, q, "set submitted")
	require.Contains(t, q, "where")
	require.Contains(t, q, "application_id")
	require.Contains(t, query, "$1")
}

func Test_buildSnapshotQueries(t *testing.T) {
	ctx := queriesTestContext()

	tests := []struct {
		name          string
		applicationID string
		wantKey       string
	}{
		{
			name:          "plain id",
			applicationID: "app-1",
			wantKey:       "app:app-1:answers",
		},
		{
			name:          "uuid id",
			applicationID: "2f0c0ed2-7a46-4c8f-9f44-1f6a9a3c0001",
			wantKey:       "app:2f0c0ed2-7a46-4c8f-9f44-1f6a9a3c0001:answers",
		},
		{
			// buildSelectSnapshotQuery does not validate the id.
			name:          "empty id",
			applicationID: "",
			wantKey:       "app::answers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectSnapshotQuery(ctx, tt.applicationID)
			require.NoError(t, err)
			require.Len(t, args, 1)
			require.Equal(t, tt.wantKey, args[0])

			q := strings.ToLower(query)
			require.Contains(t, q, "from snapshots")
			// placeholder format should be ? (SQLite)
			require.Contains(t, query, "?")
			require.NotContains(t, query, "$1")
		})
	}
}

func Test_buildUpsertSnapshotQuery(t *testing.T) {
	ctx := queriesTestContext()
	now := time.Now()

	query, args, err := buildUpsertSnapshotQuery(ctx, "app-1", []byte(`{}`), now)
	require.NoError(t, err)

	require.Len(t, args, 3)
	require.Equal(t, "app:app-1:answers", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into snapshots")
	require.Contains(t, q, "on conflict (key) do update")
}

func Test_buildDeleteSnapshotQuery(t *testing.T) {
	ctx := queriesTestContext()

	query, args, err := buildDeleteSnapshotQuery(ctx, "app-1")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "app:app-1:answers", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from snapshots")
	require.Contains(t, q, "key")
}
