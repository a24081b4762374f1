package model

type ManagerContact struct {
	ContactID uint   `gorm:"column:contact_id;primaryKey;autoIncrement" json:"contact_id"`
	ProjectID uint   `gorm:"column:project_id;not null" json:"project_id"`
	Name      string `gorm:"type:varchar(50);not null" json:"name"`
	Email     string `gorm:"type:varchar(100);not null" json:"email"`
	Phone     string `gorm:"type:varchar(20);not null" json:"phone"`
}

func (mc ManagerContact) TableName() string {
	return "manager_contacts"
}
