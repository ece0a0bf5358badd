package dao

import (
	"context"

	"github.com/CCDD2022/shop-system/internal/model"
	"gorm.io/gorm"
)

// ProductFilter 商品列表的可选过滤条件。
// 指针为 nil 表示该条件未启用；上层解析失败的价格边界不会出现在这里
type ProductFilter struct {
	Query    string
	MinPrice *float64
	MaxPrice *float64
	HasImage bool
}

type ProductDao struct {
	db *gorm.DB
}

func NewProductDao(db *gorm.DB) *ProductDao {
	return &ProductDao{
		db: db,
	}
}

// ListProducts 按过滤条件查询商品，按 id 升序返回全量结果（无分页）
func (d *ProductDao) ListProducts(ctx context.Context, filter ProductFilter) ([]*model.Product, error) {
	query := d.db.WithContext(ctx).Model(&model.Product{})

	if filter.Query != "" {
		query = query.Where("name LIKE ?", "%"+filter.Query+"%")
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.HasImage {
		query = query.Where("image IS NOT NULL AND image != ''")
	}

	var products []*model.Product
	err := query.Order("id").Find(&products).Error
	return products, err
}

// GetProductByID 根据ID获取商品
func (d *ProductDao) GetProductByID(ctx context.Context, productID int64) (*model.Product, error) {
	var product model.Product
	err := d.db.WithContext(ctx).Where("id = ?", productID).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct 创建商品，返回新ID
func (d *ProductDao) CreateProduct(ctx context.Context, product *model.Product) (int64, error) {
	if err := d.db.WithContext(ctx).Create(product).Error; err != nil {
		return 0, err
	}
	return product.ID, nil
}

// UpdateProduct 整体覆盖 name/price/image
func (d *ProductDao) UpdateProduct(ctx context.Context, productID int64, name string, price float64, image string) error {
	return d.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", productID).
		Updates(map[string]interface{}{
			"name":  name,
			"price": price,
			"image": image,
		}).Error
}

// DeleteProduct 删除商品；不存在的ID静默忽略
func (d *ProductDao) DeleteProduct(ctx context.Context, productID int64) error {
	return d.db.WithContext(ctx).Where("id = ?", productID).Delete(&model.Product{}).Error
}
