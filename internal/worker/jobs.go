package worker

import (
	"hub-booking/internal/pkg/config"
	"hub-booking/internal/usecase/commands"
)

const (
	JobAutoCheckout   = "auto_checkout"
	JobStaleBookings  = "stale_bookings"
	JobEventReminders = "event_reminders"
)

// MaintenanceJobs maps the maintenance commands onto their configured schedules.
func MaintenanceJobs(cfg config.WorkerConfig, m commands.MaintenanceCommands) []Job {
	return []Job{
		{Name: JobAutoCheckout, Interval: cfg.AutoCheckoutInterval, Run: m.AutoCheckout, RunOnStart: true},
		{Name: JobStaleBookings, Interval: cfg.CleanupInterval, Run: m.ReportStaleBookings},
		{Name: JobEventReminders, Interval: cfg.ReminderInterval, Run: m.SendEventReminders, RunOnStart: true},
	}
}

func MaintenancePolicy(cfg config.WorkerConfig) commands.MaintenancePolicy {
	p := commands.DefaultMaintenancePolicy()
	if cfg.AutoCheckoutGrace > 0 {
		p.CheckoutGrace = cfg.AutoCheckoutGrace
	}
	if cfg.CleanupAge > 0 {
		p.StaleAge = cfg.CleanupAge
	}
	if cfg.CleanupBatchSize > 0 {
		p.StaleBatchSize = cfg.CleanupBatchSize
	}
	if cfg.ReminderLeadTime > 0 {
		p.ReminderLead = cfg.ReminderLeadTime
	}
	if cfg.ReminderWindow > 0 {
		p.ReminderWindow = cfg.ReminderWindow
	}
	return p
}
