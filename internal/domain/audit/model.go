package audit

import (
	"time"

	"gorm.io/datatypes"
)

type AuditLog struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       uint           `gorm:"index" json:"user_id"`
	Action       string         `gorm:"size:50;not null;index" json:"action"`
	ResourceType string         `gorm:"size:50;not null;index" json:"resource_type"`
	ResourceID   string         `gorm:"size:100" json:"resource_id"`
	OldData      datatypes.JSON `json:"old_data,omitempty"`
	NewData      datatypes.JSON `json:"new_data,omitempty"`
	IPAddress    string         `gorm:"size:64" json:"ip_address"`
	UserAgent    string         `gorm:"type:text" json:"user_agent"`
	Description  string         `gorm:"type:text" json:"description"`
	CreatedAt    time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
