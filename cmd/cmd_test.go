package cmd

import (
	"testing"

	"github.com/huangsam/ringside/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{
		"version", "classify", "roster", "wrestler", "titles", "title-history",
		"leaderboard", "card", "queue", "sweep", "db", "mcp", "bot",
	} {
		assert.True(t, names[want], want)
	}

	sub := map[string]bool{}
	for _, c := range dbCmd.Commands() {
		sub[c.Name()] = true
	}
	assert.Equal(t, map[string]bool{"status": true, "migrate": true, "clear": true, "export": true}, sub)
}

func TestClassifyFlags(t *testing.T) {
	for _, q := range schema.AllQuestions {
		f := classifyCmd.Flags().Lookup(questionFlag(q))
		require.NotNil(t, f, string(q))
		assert.NotContains(t, f.Name, "_")
	}
	assert.NotNil(t, classifyCmd.Flags().Lookup("seed"))
}

func TestIsStreakKind(t *testing.T) {
	assert.True(t, isStreakKind(schema.StreakHot))
	assert.False(t, isStreakKind(schema.StreakKind(schema.StatWins)))
}
