package outwriter

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFormatters(t *testing.T) {
	tests := []struct {
		name      string
		precision int
		value     float64
		expected  string
	}{
		{"precision 2", 2, 66.6666, "66.67"},
		{"precision 0", 0, 4.4, "4"},
		{"precision 4", 4, 3.14159, "3.1416"},
		{"negative value", 1, -12.34, "-12.3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fmtFloat, intFmt := createFormatters(tt.precision)
			assert.Equal(t, tt.expected, fmtFloat(tt.value))
			assert.Equal(t, "%d", intFmt)
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string]any{"name": "Titan", "wins": 3}))
	assert.Equal(t, "{\n  \"name\": \"Titan\",\n  \"wins\": 3\n}\n", buf.String())

	err := writeJSON(&buf, make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode JSON")
}

func TestWriteYAML(t *testing.T) {
	type entry struct {
		Name     string   `json:"name"`
		Level    int      `json:"level"`
		Nickname string   `json:"nickname"`
		Finisher []string `json:"finishers"`
	}
	var buf bytes.Buffer
	require.NoError(t, writeYAML(&buf, entry{Name: "Titan", Level: 2, Nickname: "true", Finisher: []string{"Powerbomb", "Crossface"}}))

	want := "name: Titan\nlevel: 2\nnickname: \"true\"\nfinishers:\n  - Powerbomb\n  - Crossface\n"
	assert.Equal(t, want, buf.String(), "json names, field order and block style are kept")

	err := writeYAML(&buf, make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode YAML")
}

func TestWriteCSVWithHeader(t *testing.T) {
	tests := []struct {
		name     string
		header   []string
		rows     [][]string
		expected string
	}{
		{"simple", []string{"name", "record"}, [][]string{{"Titan", "3-1"}, {"Nova", "0-2"}}, "name,record\nTitan,3-1\nNova,0-2\n"},
		{"empty rows", []string{"name"}, nil, "name\n"},
		{"values with commas", []string{"name", "moves"}, [][]string{{"Titan", "Powerbomb, Crossface"}}, "name,moves\nTitan,\"Powerbomb, Crossface\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := writeCSVWithHeader(&buf, tt.header, func(w *csv.Writer) error {
				return w.WriteAll(tt.rows)
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, buf.String())
		})
	}

	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"col"}, func(*csv.Writer) error { return assert.AnError })
	assert.Equal(t, assert.AnError, err)
}

func TestWriteWithFile(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "roster.txt")
	err := writeWithFile(tmpFile, func(w io.Writer) error {
		_, err := io.WriteString(w, "Titan")
		return err
	}, "Wrote table")
	require.NoError(t, err)
	content, err := os.ReadFile(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, "Titan", string(content))

	err = writeWithFile(tmpFile, func(io.Writer) error { return assert.AnError }, "Wrote table")
	assert.Equal(t, assert.AnError, err)

	err = writeWithFile("/nonexistent/path/file.txt", func(io.Writer) error { return nil }, "Wrote table")
	assert.Error(t, err)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	r := report{
		kind:    "wrestlers",
		headers: []string{"Name", "Record"},
		rows:    [][]string{{"Titan", "3-1"}},
		footer:  "Showing 1 wrestlers",
	}
	require.NoError(t, writeTable(&buf, r))
	out := buf.String()
	assert.Contains(t, out, "Titan")
	assert.Contains(t, strings.ToUpper(out), "RECORD")
	assert.True(t, strings.HasSuffix(out, "Showing 1 wrestlers\n"))

	buf.Reset()
	r.rows = nil
	require.NoError(t, writeTable(&buf, r))
	assert.Equal(t, "No wrestlers found.\n", buf.String())
}

func TestCSVHeader(t *testing.T) {
	assert.Equal(t, []string{"id", "weight_class", "open_spots"}, csvHeader([]string{"ID", "Weight Class", "Open Spots"}))
}

func TestFormatNames(t *testing.T) {
	names := map[int64]string{1: "Titan", 2: "Nova"}
	assert.Equal(t, "Titan & Nova", formatNames([]int64{1, 2}, names, " & "))
	assert.Equal(t, "Titan vs #9", formatNames([]int64{1, 9}, names, " vs "))
	assert.Empty(t, formatNames(nil, names, " & "))
}
