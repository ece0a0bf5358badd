package model

// CartEntry 购物车条目：加入购物车时对商品 name/price 做快照，
// 只存在于会话存储中，不落库
type CartEntry struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int32   `json:"quantity"`
}

// Cart 以商品ID字符串为键的购物车，结账时整体转换为订单
type Cart map[string]CartEntry

// Total 计算购物车合计（price × quantity 求和）
func (c Cart) Total() float64 {
	var total float64
	for _, item := range c {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
