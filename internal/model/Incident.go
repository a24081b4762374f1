package model

import (
	"time"

	"github.com/suritel/worklog-api/internal/constant"
)

// Incident is the outage record attached 1:1 to an incident-type work log.
// The owning work log also stores incident_id for fast lookup; both references
// are written inside the same transaction.
type Incident struct {
	IncidentID uint `gorm:"column:incident_id;primaryKey;autoIncrement" json:"incident_id"`
	LogID      uint `gorm:"column:log_id;not null" json:"log_id"`

	ActionType   constant.IncidentActionType `gorm:"column:action_type;type:varchar(50);not null" json:"action_type"`
	StartTime    time.Time                   `gorm:"column:start_time;not null" json:"start_time"`
	EndTime      time.Time                   `gorm:"column:end_time;not null" json:"end_time"`
	Severity     constant.IncidentSeverity   `gorm:"type:varchar(20);not null" json:"severity"`
	CauseType    string                      `gorm:"column:cause_type;type:varchar(20);not null" json:"cause_type"`
	IsRecurrence string                      `gorm:"column:is_recurrence;type:char(1);not null;default:'N'" json:"is_recurrence"`
}

func (i Incident) TableName() string {
	return "incidents"
}
