package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func TestSlackSeverity(t *testing.T) {
	assert.Equal(t, "clean", slackSeverity(nil))
	assert.Equal(t, "clean", slackSeverity(fptr(0.0)))
	assert.Equal(t, "clean", slackSeverity(fptr(0.5)))
	assert.Equal(t, "mild", slackSeverity(fptr(-0.1)))
	assert.Equal(t, "moderate", slackSeverity(fptr(-0.6)))
	assert.Equal(t, "moderate", slackSeverity(fptr(-2.0)))
	assert.Equal(t, "severe", slackSeverity(fptr(-2.1)))
}

func TestReadRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.jsonl")

	lines := `{"file":"a.rpt","metrics":{"wns":-1.25,"tns":-40,"paths":1,"clocks":1,"checks":3}}
not json at all
{"file":"b.rpt","error":"empty report"}
`
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))

	records, err := readRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "a.rpt", records[0].File)
	require.NotNil(t, records[0].Metrics)
	assert.InDelta(t, -1.25, *records[0].Metrics.Wns, 1e-9)

	assert.Equal(t, "parse error", records[1].Error)
	assert.Equal(t, "empty report", records[2].Error)
}

func TestReadRecordsMissingFile(t *testing.T) {
	_, err := readRecords(filepath.Join(t.TempDir(), "nope.jsonl"))
	assert.Error(t, err)
}
