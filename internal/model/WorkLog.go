package model

import (
	"time"

	"github.com/suritel/worklog-api/internal/constant"
)

// WorkLog is one recorded engineer work session. UserID always comes from the
// authenticated actor, never from a request body.
type WorkLog struct {
	LogID      uint `gorm:"column:log_id;primaryKey;autoIncrement" json:"log_id"`
	UserID     uint `gorm:"column:user_id;not null" json:"user_id"`
	ProjectID  uint `gorm:"column:project_id;not null" json:"project_id"`
	ContactID  uint `gorm:"column:contact_id;not null" json:"contact_id"`
	IncidentID *uint `gorm:"column:incident_id" json:"incident_id"`

	WorkStart      time.Time           `gorm:"column:work_start;not null" json:"work_start"`
	WorkEnd        time.Time           `gorm:"column:work_end;not null" json:"work_end"`
	WorkType       string              `gorm:"column:work_type;type:varchar(50);not null" json:"work_type"`
	SupprtType     string              `gorm:"column:supprt_type;type:varchar(50);not null" json:"supprt_type"`
	ServiceType    string              `gorm:"column:service_type;type:varchar(50);not null" json:"service_type"`
	ProductType    string              `gorm:"column:product_type;type:varchar(50);not null" json:"product_type"`
	ProductVersion string              `gorm:"column:product_version;type:varchar(50);not null" json:"product_version"`
	Details        string              `gorm:"type:text;not null" json:"details"`
	Status         constant.WorkStatus `gorm:"type:varchar(10);not null;default:'등록'" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`

	User     *User           `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
	Project  *Project        `gorm:"foreignKey:ProjectID;references:ProjectID" json:"project,omitempty"`
	Contact  *ManagerContact `gorm:"foreignKey:ContactID;references:ContactID" json:"contact,omitempty"`
	Incident *Incident       `gorm:"foreignKey:IncidentID;references:IncidentID" json:"incident"`
	Files    []FileUpload    `gorm:"foreignKey:LogID;references:LogID" json:"files,omitempty"`
}

func (w WorkLog) TableName() string {
	return "work_log"
}
