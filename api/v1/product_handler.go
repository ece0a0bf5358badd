package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CCDD2022/shop-system/internal/service"
	"github.com/CCDD2022/shop-system/pkg/e"
)

type ProductHandler struct {
	catalog *service.CatalogService
}

func NewProductHandler(catalog *service.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

type productRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// ListProducts 获取商品列表，支持 q/min_price/max_price/has_image 过滤
func (h *ProductHandler) ListProducts(c *gin.Context) {
	filter := service.ParseProductFilter(
		c.Query("q"),
		c.Query("min_price"),
		c.Query("max_price"),
		c.Query("has_image"),
	)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	products, err := h.catalog.ListProducts(ctx, filter)
	if err != nil {
		Error(c, http.StatusInternalServerError, e.PRODUCT_RETRIEVAL_ERROR, e.GetMsg(e.PRODUCT_RETRIEVAL_ERROR))
		return
	}

	Success(c, http.StatusOK, products)
}

// GetProduct 获取单个商品
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Error(c, http.StatusBadRequest, e.INVALID_PARAMS, e.GetMsg(e.INVALID_PARAMS))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	product, err := h.catalog.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			Error(c, http.StatusNotFound, e.PRODUCT_NOT_FOUND, e.GetMsg(e.PRODUCT_NOT_FOUND))
			return
		}
		Error(c, http.StatusInternalServerError, e.PRODUCT_RETRIEVAL_ERROR, e.GetMsg(e.PRODUCT_RETRIEVAL_ERROR))
		return
	}

	Success(c, http.StatusOK, product)
}

// CreateProduct 创建商品（后台）
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, e.INVALID_JSON, e.GetMsg(e.INVALID_JSON))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	productID, err := h.catalog.CreateProduct(ctx, req.Name, req.Price, req.Image)
	if err != nil {
		if errors.Is(err, service.ErrInvalidProduct) {
			Error(c, http.StatusBadRequest, e.INVALID_PARAMS, err.Error())
			return
		}
		Error(c, http.StatusInternalServerError, e.PRODUCT_SAVE_ERROR, e.GetMsg(e.PRODUCT_SAVE_ERROR))
		return
	}

	SuccessWithMessage(c, http.StatusCreated, gin.H{"product_id": productID}, "Product created successfully")
}

// UpdateProduct 更新商品（后台）
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Error(c, http.StatusBadRequest, e.INVALID_PARAMS, e.GetMsg(e.INVALID_PARAMS))
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, e.INVALID_JSON, e.GetMsg(e.INVALID_JSON))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.catalog.UpdateProduct(ctx, productID, req.Name, req.Price, req.Image); err != nil {
		if errors.Is(err, service.ErrInvalidProduct) {
			Error(c, http.StatusBadRequest, e.INVALID_PARAMS, err.Error())
			return
		}
		Error(c, http.StatusInternalServerError, e.PRODUCT_SAVE_ERROR, e.GetMsg(e.PRODUCT_SAVE_ERROR))
		return
	}

	SuccessWithMessage(c, http.StatusOK, gin.H{"product_id": productID}, "Product updated successfully")
}

// DeleteProduct 删除商品（后台）；不存在的ID静默忽略
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Error(c, http.StatusBadRequest, e.INVALID_PARAMS, e.GetMsg(e.INVALID_PARAMS))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.catalog.DeleteProduct(ctx, productID); err != nil {
		Error(c, http.StatusInternalServerError, e.PRODUCT_SAVE_ERROR, e.GetMsg(e.PRODUCT_SAVE_ERROR))
		return
	}

	SuccessWithMessage(c, http.StatusOK, gin.H{"deleted_id": productID}, "Product deleted successfully")
}

// RegisterRoutes 注册公开商品路由
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProduct)
	}
}

// RegisterAdminRoutes 注册后台商品路由（需管理员令牌）
func (h *ProductHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.POST("", h.CreateProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}
}
