package model

// Client 客户档案（CRM），与订单、商品无关联
type Client struct {
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name       string `gorm:"column:name;size:255;not null" json:"name"`
	Email      string `gorm:"column:email;size:255" json:"email"`
	Phone      string `gorm:"column:phone;size:64" json:"phone"`
	Address    string `gorm:"column:address;size:255" json:"address"`
	HasCourses bool   `gorm:"column:has_courses;default:false" json:"has_courses"`
}

func (Client) TableName() string {
	return "clients"
}
