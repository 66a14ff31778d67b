package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/robfig/cron/v3"

	"kioskhub/internal/core/application/usecases/queries"
	"kioskhub/internal/core/domain/model/order"
	"kioskhub/internal/pkg/errs"
)

// QueueMonitorJob periodically logs how many pending orders each kiosk type
// has accumulated.
type QueueMonitorJob struct {
	dbProvider queries.DBProvider
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewQueueMonitorJob creates the queue depth monitor.
func NewQueueMonitorJob(dbProvider queries.DBProvider, logger *slog.Logger) *QueueMonitorJob {
	return &QueueMonitorJob{
		dbProvider: dbProvider,
		cron:       cron.New(),
		logger:     logger.With("component", "queue_monitor_job"),
	}
}

// Start schedules the monitor to run once a minute.
func (j *QueueMonitorJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		j.run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "queue monitor started (running every minute)")
	return nil
}

// Stop stops the monitor.
func (j *QueueMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "queue monitor stopped")
}

func (j *QueueMonitorJob) run(ctx context.Context) {
	db, err := j.dbProvider.DB()
	if err != nil {
		// Maintenance mode holds the pool closed. Not an incident.
		if errors.Is(err, errs.ErrDatabaseDisconnected) {
			return
		}
		j.logger.ErrorContext(ctx, "queue monitor failed to acquire database", "error", err)
		return
	}

	var rows []struct {
		KioskType string `gorm:"column:kiosk_type"`
		Pending   int64  `gorm:"column:pending"`
	}
	result := db.WithContext(ctx).Raw(
		"SELECT kiosk_type, COUNT(*) AS pending FROM orders WHERE status = ? GROUP BY kiosk_type ORDER BY kiosk_type",
		order.Pending.String(),
	).Scan(&rows)
	if result.Error != nil {
		j.logger.ErrorContext(ctx, "queue monitor query failed", "error", result.Error)
		return
	}

	if len(rows) == 0 {
		j.logger.InfoContext(ctx, "order queues empty")
		return
	}
	for _, row := range rows {
		j.logger.InfoContext(ctx, "pending orders", "kiosk_type", row.KioskType, "count", row.Pending)
	}
}
