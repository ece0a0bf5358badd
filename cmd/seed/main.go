package main

import (
	"context"
	"time"

	"github.com/CCDD2022/shop-system/internal/dao"
	"github.com/CCDD2022/shop-system/internal/dao/mysql"
	"github.com/CCDD2022/shop-system/internal/model"
	"github.com/CCDD2022/shop-system/pkg/app"
	"github.com/CCDD2022/shop-system/pkg/logger"
)

// 测试商品数据灌入工具：建表后插入一批演示商品
func main() {
	cfg := app.BootstrapApp()

	db, err := mysql.InitDB(&cfg.Database.Mysql)
	if err != nil {
		logger.Fatal("init mysql failed", "err", err)
	}
	if err := dao.Migrate(db); err != nil {
		logger.Fatal("migrate schema failed", "err", err)
	}

	products := []*model.Product{
		{Name: "Курси по HTML", Price: 299.99, Image: "/api/placeholder/200/200"},
		{Name: "Джинси", Price: 799.99, Image: "/api/placeholder/200/200"},
		{Name: "Кросівки", Price: 1299.99, Image: "/api/placeholder/200/200"},
		{Name: "Куртка", Price: 1599.99, Image: "/api/placeholder/200/200"},
		{Name: "Шапка", Price: 199.99, Image: "/api/placeholder/200/200"},
		{Name: "Шкарпетки", Price: 49.99, Image: "/api/placeholder/200/200"},
		{Name: "Рюкзак", Price: 699.99, Image: "/api/placeholder/200/200"},
		{Name: "Годинник", Price: 2499.99, Image: "/api/placeholder/200/200"},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	productDao := dao.NewProductDao(db)
	for _, p := range products {
		id, err := productDao.CreateProduct(ctx, p)
		if err != nil {
			logger.Fatal("seed product failed", "name", p.Name, "err", err)
		}
		logger.Info("seeded product", "id", id, "name", p.Name, "price", p.Price)
	}

	logger.Info("seed finished", "count", len(products))
}
