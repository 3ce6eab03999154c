package kafka_test

import (
	"context"
	"database/sql/driver"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go-arquivo/internal/messaging/kafka"
)

func setupRepoTest(t *testing.T) (kafka.OutboxRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Discard})
	assert.NoError(t, err)

	return kafka.NewOutboxRepository(gormDB), sqlMock
}

// timeBetween matches a bound time.Time argument inside a window.
type timeBetween struct {
	from, to time.Time
}

func (m timeBetween) Match(v driver.Value) bool {
	ts, ok := v.(time.Time)
	return ok && !ts.Before(m.from) && !ts.After(m.to)
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	t.Run("backoff grows with the retry count", func(t *testing.T) {
		repo, sqlMock := setupRepoTest(t)

		sqlMock.ExpectQuery(`SELECT retry_count FROM outbox_events WHERE id = \$1`).
			WithArgs("evt-1").
			WillReturnRows(sqlmock.NewRows([]string{"retry_count"}).AddRow(2))

		// Third failure schedules the retry roughly 45 seconds out.
		before := time.Now().UTC()
		sqlMock.ExpectExec(`UPDATE outbox_events`).
			WithArgs(
				kafka.OutboxStatusFailed,
				"broker unreachable",
				timeBetween{from: before.Add(45 * time.Second), to: before.Add(46 * time.Second)},
				"evt-1",
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.MarkFailed(context.Background(), "evt-1", "broker unreachable")

		assert.NoError(t, err)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("long failure reasons are truncated", func(t *testing.T) {
		repo, sqlMock := setupRepoTest(t)

		sqlMock.ExpectQuery(`SELECT retry_count FROM outbox_events WHERE id = \$1`).
			WithArgs("evt-2").
			WillReturnRows(sqlmock.NewRows([]string{"retry_count"}).AddRow(0))
		sqlMock.ExpectExec(`UPDATE outbox_events`).
			WithArgs(
				kafka.OutboxStatusFailed,
				strings.Repeat("x", 500),
				sqlmock.AnyArg(),
				"evt-2",
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.MarkFailed(context.Background(), "evt-2", strings.Repeat("x", 600))

		assert.NoError(t, err)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}
