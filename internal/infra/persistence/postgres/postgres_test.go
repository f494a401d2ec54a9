package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"fitlog/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNew_RequiresPostgresConfig(t *testing.T) {
	db, err := New(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{},
		Logger:    slog.New(slog.DiscardHandler),
	})

	assert.Nil(t, db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres configuration must be provided")
}

func TestPoolWaitReport(t *testing.T) {
	base := sql.DBStats{MaxOpenConnections: 10, OpenConnections: 10, InUse: 10, WaitCount: 4, WaitDuration: time.Second}

	tests := []struct {
		name      string
		cur       sql.DBStats
		wantLevel slog.Level
		wantAvg   time.Duration
		waited    bool
	}{
		{name: "no new waits", cur: base},
		{
			name:      "short waits are debug",
			cur:       sql.DBStats{MaxOpenConnections: 10, WaitCount: 6, WaitDuration: time.Second + 20*time.Millisecond},
			wantLevel: slog.LevelDebug,
			wantAvg:   10 * time.Millisecond,
			waited:    true,
		},
		{
			name:      "long waits are warn",
			cur:       sql.DBStats{MaxOpenConnections: 10, WaitCount: 5, WaitDuration: time.Second + 80*time.Millisecond},
			wantLevel: slog.LevelWarn,
			wantAvg:   80 * time.Millisecond,
			waited:    true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			level, attrs, waited := poolWaitReport(base, tc.cur)
			assert.Equal(t, tc.waited, waited)
			if !tc.waited {
				assert.Empty(t, attrs)

				return
			}

			assert.Equal(t, tc.wantLevel, level)
			values := map[string]slog.Value{}
			for _, attr := range attrs {
				values[attr.Key] = attr.Value
			}
			assert.Equal(t, tc.wantAvg, values["avg_wait"].Duration())
			assert.Equal(t, int64(10), values["max_open_conns"].Int64())
		})
	}
}
