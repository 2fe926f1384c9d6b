//go:build basic

// Package integration contains end-to-end tests for the ringside binary.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
package integration

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/huangsam/ringside/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteEnv(t *testing.T) []string {
	return []string{
		"RINGSIDE_DB_BACKEND=sqlite",
		"RINGSIDE_DB_CONNECT=" + filepath.Join(t.TempDir(), "league.db"),
	}
}

// TestClassifyDeterministic checks that a fixed seed gives the same profile twice.
func TestClassifyDeterministic(t *testing.T) {
	args := []string{"classify", "--physical-build", "towering", "--seed", "7", "--output", "json"}

	first, err := runRingside(t, nil, args...)
	require.NoError(t, err)
	second, err := runRingside(t, nil, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var p schema.WrestlerProfile
	require.NoError(t, json.Unmarshal([]byte(first), &p))
	assert.NotEmpty(t, p.Archetype)
	assert.NotEmpty(t, p.Recommendations)
}

func TestClassifyRejectsUnknownAnswer(t *testing.T) {
	out, err := runRingside(t, nil, "classify", "--physical-build", "robotic")
	require.Error(t, err)
	assert.Contains(t, out, "invalid input")
}

func TestGuildCommandsNeedGuild(t *testing.T) {
	out, err := runRingside(t, sqliteEnv(t), "roster")
	require.Error(t, err)
	assert.Contains(t, out, "guild is required")
}

func TestSQLiteLifecycle(t *testing.T) {
	env := sqliteEnv(t)

	out, err := runRingside(t, env, "db", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "League Backend: sqlite")
	assert.Contains(t, out, "Connected: true")

	out, err = runRingside(t, append(env, "RINGSIDE_GUILD=g1"), "roster", "--output", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "id,name,level")

	_, err = runRingside(t, append(env, "RINGSIDE_GUILD=g1"), "sweep")
	require.NoError(t, err)

	out, err = runRingside(t, env, "db", "export", "--guild", "g1", "--output-file", filepath.Join(t.TempDir(), "league"))
	require.Error(t, err, "an empty guild has nothing to export")
	assert.Contains(t, out, "no league data found")
}
