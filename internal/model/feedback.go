package model

// Feedback 用户留言，独立实体
type Feedback struct {
	ID      int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"column:name;size:255" json:"name"`
	Email   string `gorm:"column:email;size:255" json:"email"`
	Message string `gorm:"column:message;type:text" json:"message"`
}

func (Feedback) TableName() string {
	return "feedback"
}
