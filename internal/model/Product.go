package model

type Product struct {
	ProductID   uint   `gorm:"column:product_id;primaryKey;autoIncrement" json:"product_id"`
	ProductType string `gorm:"column:product_type;type:varchar(50);not null;uniqueIndex:idx_products_type_name" json:"product_type"`
	ProductName string `gorm:"column:product_name;type:varchar(100);not null;uniqueIndex:idx_products_type_name" json:"product_name"`
}

func (p Product) TableName() string {
	return "products"
}
