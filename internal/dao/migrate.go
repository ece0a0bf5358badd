package dao

import (
	"fmt"

	"github.com/CCDD2022/shop-system/internal/model"
	"gorm.io/gorm"
)

// Migrate 建表并补齐历史库缺失的列。
// 老库的 orders 没有 phone、clients 没有 has_courses，
// 这里先探查 schema 再决定是否加列，整个过程可重复执行
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Feedback{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.Client{},
	); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}

	m := db.Migrator()

	if !m.HasColumn(&model.Order{}, "phone") {
		if err := m.AddColumn(&model.Order{}, "phone"); err != nil {
			return fmt.Errorf("add orders.phone failed: %w", err)
		}
	}
	if !m.HasColumn(&model.Client{}, "has_courses") {
		if err := m.AddColumn(&model.Client{}, "has_courses"); err != nil {
			return fmt.Errorf("add clients.has_courses failed: %w", err)
		}
	}

	return nil
}
