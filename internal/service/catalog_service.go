package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/CCDD2022/shop-system/internal/dao"
	"github.com/CCDD2022/shop-system/internal/model"
)

// ErrInvalidProduct 商品校验失败：名称为空或价格不为正
var ErrInvalidProduct = errors.New("product needs a name and a positive price")

type CatalogService struct {
	productDao *dao.ProductDao
}

func NewCatalogService(productDao *dao.ProductDao) *CatalogService {
	return &CatalogService{
		productDao: productDao,
	}
}

// ParseProductFilter 把原始查询参数解析为结构化过滤条件。
// 价格解析失败时丢弃该条件而不是报错
func ParseProductFilter(q, minPrice, maxPrice, hasImage string) dao.ProductFilter {
	filter := dao.ProductFilter{Query: q}

	if minPrice != "" {
		if v, err := strconv.ParseFloat(minPrice, 64); err == nil {
			filter.MinPrice = &v
		}
	}
	if maxPrice != "" {
		if v, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			filter.MaxPrice = &v
		}
	}
	filter.HasImage = isTruthy(hasImage)

	return filter
}

// isTruthy 表单和查询串风格的布尔值
func isTruthy(s string) bool {
	switch s {
	case "1", "on", "true", "yes":
		return true
	}
	return false
}

// ListProducts 按过滤条件查询商品目录
func (s *CatalogService) ListProducts(ctx context.Context, filter dao.ProductFilter) ([]*model.Product, error) {
	return s.productDao.ListProducts(ctx, filter)
}

// GetProduct 获取单个商品
func (s *CatalogService) GetProduct(ctx context.Context, productID int64) (*model.Product, error) {
	return s.productDao.GetProductByID(ctx, productID)
}

// CreateProduct 创建商品，校验名称非空且价格为正
func (s *CatalogService) CreateProduct(ctx context.Context, name string, price float64, image string) (int64, error) {
	if name == "" || price <= 0 {
		return 0, ErrInvalidProduct
	}
	return s.productDao.CreateProduct(ctx, &model.Product{
		Name:  name,
		Price: price,
		Image: image,
	})
}

// UpdateProduct 更新商品，校验规则同创建
func (s *CatalogService) UpdateProduct(ctx context.Context, productID int64, name string, price float64, image string) error {
	if name == "" || price <= 0 {
		return ErrInvalidProduct
	}
	return s.productDao.UpdateProduct(ctx, productID, name, price, image)
}

// DeleteProduct 删除商品；不存在的ID静默忽略
func (s *CatalogService) DeleteProduct(ctx context.Context, productID int64) error {
	return s.productDao.DeleteProduct(ctx, productID)
}
