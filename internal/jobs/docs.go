// Package jobs provides scheduled background tasks.
//
// Jobs use github.com/robfig/cron/v3 and are coordinated by JobManager,
// which the composition root starts after the HTTP server is wired and
// stops during graceful shutdown.
//
// The only job today is QueueMonitorJob: once a minute it logs the pending
// order depth per kiosk type, giving operators a heartbeat of the queues
// without a metrics stack. While maintenance mode holds the database pool
// closed the job skips its tick silently.
package jobs
