package model

type Client struct {
	ClientID   uint   `gorm:"column:client_id;primaryKey;autoIncrement" json:"client_id"`
	ClientName string `gorm:"column:client_name;type:varchar(100);not null" json:"client_name" form:"client_name" binding:"required,strNotEmpty,max=100"`
	IsDeleted  bool   `gorm:"not null;default:false" json:"is_deleted"`

	Projects []Project `gorm:"foreignKey:ClientID;references:ClientID" json:"projects,omitempty"`
}

func (c Client) TableName() string {
	return "client"
}
