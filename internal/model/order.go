package model

import "time"

// Order 订单模型：创建后 total_price 固定不变，状态由后台改写，
// 联系方式（address/phone）由下单客户改写
type Order struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email      string    `gorm:"column:email;size:255;index" json:"email"`
	Address    string    `gorm:"column:address;size:255" json:"address"`
	Phone      string    `gorm:"column:phone;size:64" json:"phone"`
	TotalPrice float64   `gorm:"column:total_price;type:decimal(10,2)" json:"total_price"`
	Status     string    `gorm:"column:status;size:64" json:"status"`
	Date       time.Time `gorm:"column:date" json:"date"`
}

func (Order) TableName() string {
	return "orders"
}

// 订单生命周期标签。数据层不校验取值，任意字符串都会被接受，
// 这里的常量只是约定俗成的集合
const (
	OrderStatusNew        = "new"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderItem 订单行：下单时落库的不可变快照，不存价格，
// 读取时实时关联商品表取 name/price
type OrderItem struct {
	ID        int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrderID   int64 `gorm:"column:order_id;not null;index" json:"order_id"`
	ProductID int64 `gorm:"column:product_id;not null;index" json:"product_id"`
	Quantity  int32 `gorm:"column:quantity;not null" json:"quantity"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// OrderItemDetail 订单详情中的单行：quantity 来自 order_items，
// name/price 来自商品表的当前值
type OrderItemDetail struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int32   `json:"quantity"`
}
