package model

// Product 商品模型；image 可为空（无图商品）
type Product struct {
	ID    int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name  string  `gorm:"column:name;size:255;not null" json:"name"`
	Price float64 `gorm:"column:price;type:decimal(10,2);not null" json:"price"`
	Image string  `gorm:"column:image;size:255" json:"image"`
}

func (Product) TableName() string {
	return "products"
}
