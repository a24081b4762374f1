package model

type Project struct {
	ProjectID      uint   `gorm:"column:project_id;primaryKey;autoIncrement" json:"project_id"`
	ClientID       uint   `gorm:"column:client_id;not null" json:"client_id"`
	DeptID         uint   `gorm:"column:dept_id;not null" json:"dept_id"`
	ProjectName    string `gorm:"column:project_name;type:varchar(100);not null" json:"project_name"`
	ContractPeriod string `gorm:"column:contract_period;type:varchar(100);not null" json:"contract_period"`
	IsDeleted      bool   `gorm:"not null;default:false" json:"is_deleted"`

	Client     *Client          `gorm:"foreignKey:ClientID;references:ClientID" json:"client,omitempty"`
	Department *Department      `gorm:"foreignKey:DeptID;references:DeptID" json:"department,omitempty"`
	Contacts   []ManagerContact `gorm:"foreignKey:ProjectID;references:ProjectID" json:"contacts,omitempty"`
}

func (p Project) TableName() string {
	return "projects"
}
