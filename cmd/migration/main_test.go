package main

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/football-stats/db"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		args    []string
		want    command
		wantErr bool
	}{
		{args: []string{"up"}, want: command{name: "up"}},
		{args: []string{" VERSION "}, want: command{name: "version"}},
		{args: []string{"down"}, want: command{name: "down", steps: 1}},
		{args: []string{"down", "3"}, want: command{name: "down", steps: 3}},
		{args: []string{"goto", "1"}, want: command{name: "goto", version: 1}},
		{args: []string{"force", "0"}, want: command{name: "force"}},
		{args: []string{"down", "0"}, wantErr: true},
		{args: []string{"down", "two"}, wantErr: true},
		{args: []string{"force"}, wantErr: true},
		{args: []string{"goto", "-1"}, wantErr: true},
		{args: []string{"seed"}, wantErr: true},
		{args: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			got, err := parseCommand(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMigrateDB_RequiresURL(t *testing.T) {
	err := migrateDB("  ", "", []string{"up"}, logging.NewNop())
	assert.EqualError(t, err, "DB_URL is required")
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(db.Migrations, db.MigrationsPath)
	require.NoError(t, err)

	ups, downs := 0, 0
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".up.sql"):
			ups++
		case strings.HasSuffix(e.Name(), ".down.sql"):
			downs++
		}
	}
	assert.Positive(t, ups)
	assert.Equal(t, ups, downs)
}
