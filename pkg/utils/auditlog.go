package utils

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scrumish/internal/domain/audit"
	"github.com/linskybing/scrumish/internal/repository"
	log "github.com/sirupsen/logrus"
)

var LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repos repository.AuditRepo) {
	// Extract data synchronously to avoid race conditions
	userID, _ := GetUserIDFromContext(c)
	var ip, ua string
	if c.Request != nil {
		ip = c.ClientIP()
		ua = c.GetHeader("User-Agent")
	}

	log.WithFields(log.Fields{
		"user_id":       userID,
		"action":        action,
		"resource_type": resourceType,
		"resource_id":   resourceID,
	}).Info(msg)

	go func() {
		if err := LogAudit(userID, ip, ua, action, resourceType, resourceID, oldData, newData, msg, repos); err != nil {
			log.WithError(err).Warn("failed to write audit log")
		}
	}()
}

var LogAudit = func(
	userID uint,
	ip string,
	ua string,
	action string,
	resourceType string,
	resourceID string,
	before any,
	after any,
	description string,
	repos repository.AuditRepo,
) error {
	var oldData, newData []byte
	var err error

	if before != nil {
		oldData, err = json.Marshal(before)
		if err != nil {
			log.WithError(err).Warn("audit: marshal old data")
		}
	}
	if after != nil {
		newData, err = json.Marshal(after)
		if err != nil {
			log.WithError(err).Warn("audit: marshal new data")
		}
	}

	auditLog := &audit.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      oldData,
		NewData:      newData,
		IPAddress:    ip,
		UserAgent:    ua,
		Description:  description,
	}

	return repos.CreateAuditLog(auditLog)
}
