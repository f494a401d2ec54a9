package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"fitlog/config"
	deliverycontext "fitlog/internal/delivery/context"
	"fitlog/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCapturingLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func decodeLogLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		record := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &record))
		records = append(records, record)
	}

	return records
}

func debugConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Debug = true

	return cfg
}

func sqlAndRows(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	base, baseBuf := newCapturingLogger()
	requestLogger, requestBuf := newCapturingLogger()
	requestLogger = requestLogger.With(slog.String("request_id", "req-1"), slog.Int64("user_id", 7))

	gormLogger := newGormSlogLogger(base, debugConfig())
	ctx := deliverycontext.WithLogger(context.Background(), requestLogger)

	gormLogger.Trace(ctx, time.Now(), sqlAndRows(`SELECT 1`, 1), errors.New("connection reset"))

	assert.Empty(t, baseBuf.String())
	records := decodeLogLines(t, requestBuf)
	require.Len(t, records, 1)
	assert.Equal(t, "ERROR", records[0]["level"])
	assert.Equal(t, "GORM query failed", records[0]["msg"])
	assert.Equal(t, "req-1", records[0]["request_id"])
	assert.EqualValues(t, 7, records[0]["user_id"])
	assert.Equal(t, "connection reset", records[0]["error"])
}

func TestGormSlogLogger_FallsBackToBaseLogger(t *testing.T) {
	base, buf := newCapturingLogger()

	newGormSlogLogger(base, debugConfig()).Trace(context.Background(), time.Now(), sqlAndRows(`SELECT 1`, 1), nil)

	records := decodeLogLines(t, buf)
	require.Len(t, records, 1)
	assert.Equal(t, "GORM query", records[0]["msg"])
	assert.Equal(t, "SELECT 1", records[0]["sql"])
}

func TestGormSlogLogger_Classification(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		err       error
		wantLevel string
		wantMsg   string
	}{
		{name: "record not found is silent", debug: true, err: gorm.ErrRecordNotFound},
		{
			name:      "constraint violation is info",
			debug:     true,
			err:       &pgconn.PgError{Code: "23505"},
			wantLevel: "INFO",
			wantMsg:   "GORM constraint violation",
		},
		{name: "constraint violation hidden outside debug", err: &pgconn.PgError{Code: "23505"}},
		{
			name:      "server error outside debug",
			err:       errors.New("connection reset"),
			wantLevel: "ERROR",
			wantMsg:   "GORM query failed",
		},
		{name: "successful query hidden outside debug"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			base, buf := newCapturingLogger()
			cfg := &config.Config{}
			cfg.Env.Debug = tc.debug

			newGormSlogLogger(base, cfg).Trace(context.Background(), time.Now(), sqlAndRows(`INSERT`, 0), tc.err)

			records := decodeLogLines(t, buf)
			if tc.wantMsg == "" {
				assert.Empty(t, records)

				return
			}
			require.Len(t, records, 1)
			assert.Equal(t, tc.wantLevel, records[0]["level"])
			assert.Equal(t, tc.wantMsg, records[0]["msg"])
		})
	}
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	base, buf := newCapturingLogger()

	newGormSlogLogger(base, nil).Trace(context.Background(), time.Now().Add(-time.Second), sqlAndRows(`SELECT pg_sleep(1)`, 1), nil)

	records := decodeLogLines(t, buf)
	require.Len(t, records, 1)
	assert.Equal(t, "WARN", records[0]["level"])
	assert.Equal(t, "GORM slow query", records[0]["msg"])
}

func TestGormSlogLogger_LogMode(t *testing.T) {
	base, buf := newCapturingLogger()

	silent := newGormSlogLogger(base, debugConfig()).LogMode(logger.Silent)
	silent.Trace(context.Background(), time.Now(), sqlAndRows(`SELECT 1`, 1), errors.New("boom"))
	silent.Error(context.Background(), "failed: %s", "boom")

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_OmitsBoundParameters(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	base, buf := newCapturingLogger()
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(base, debugConfig()),
	})
	require.NoError(t, err)

	const hash = "$2a$10$abcdefghijklmnopqrstuuABCDEFGHIJKLMNOPQRSTUVWXYZ01234"
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	require.NoError(t, NewUserRepository(db).Create(context.Background(), &entity.User{Username: "alice", PasswordHash: hash}))
	require.NoError(t, mock.ExpectationsWereMet())

	assert.NotContains(t, buf.String(), hash)
	assert.NotContains(t, buf.String(), "alice")

	records := decodeLogLines(t, buf)
	require.NotEmpty(t, records)
	assert.Contains(t, records[len(records)-1]["sql"], "$1")
}
