package model

import "github.com/suritel/worklog-api/internal/constant"

type User struct {
	UserID   uint              `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	DeptID   uint              `gorm:"column:dept_id;not null" json:"dept_id"`
	Email    string            `gorm:"type:varchar(50);unique;not null" json:"email"`
	Name     string            `gorm:"type:varchar(50);not null" json:"name"`
	Position string            `gorm:"type:varchar(20);not null" json:"position"`
	Password string            `gorm:"type:varchar(255);not null" json:"-"`
	Role     constant.UserRole `gorm:"type:varchar(20);not null;default:'engineer'" json:"role"`
	IsActive bool              `gorm:"not null;default:true" json:"is_active"`

	Department *Department `gorm:"foreignKey:DeptID;references:DeptID" json:"department,omitempty"`
}

func (u User) TableName() string {
	return "users"
}
