package cron

import (
	"context"
	"time"

	"github.com/linskybing/scrumish/internal/application"
	log "github.com/sirupsen/logrus"
)

const cleanupInterval = 24 * time.Hour

// StartCleanupTask prunes audit logs older than retentionDays once at
// startup and then every day until ctx is cancelled.
func StartCleanupTask(ctx context.Context, auditService *application.AuditService, retentionDays int) {
	go func() {
		log.WithField("retention_days", retentionDays).Info("Starting background cleanup task")
		runCleanup(auditService, retentionDays)

		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info("Background cleanup task stopped")
				return
			case <-ticker.C:
				runCleanup(auditService, retentionDays)
			}
		}
	}()
}

func runCleanup(auditService *application.AuditService, retentionDays int) {
	n, err := auditService.CleanupOldLogs(retentionDays)
	if err != nil {
		log.WithError(err).Error("Failed to cleanup old audit logs")
		return
	}
	log.WithField("deleted", n).Info("Audit log cleanup completed")
}
