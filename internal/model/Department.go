package model

type Department struct {
	DeptID   uint   `gorm:"column:dept_id;primaryKey;autoIncrement" json:"dept_id"`
	DeptName string `gorm:"column:dept_name;type:varchar(30);not null" json:"dept_name" form:"dept_name" binding:"required,strNotEmpty,max=30"`
}

func (d Department) TableName() string {
	return "departments"
}
