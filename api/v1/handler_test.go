package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/CCDD2022/shop-system/api/middleware"
	"github.com/CCDD2022/shop-system/config"
	"github.com/CCDD2022/shop-system/internal/dao"
	"github.com/CCDD2022/shop-system/internal/model"
	"github.com/CCDD2022/shop-system/internal/service"
	"github.com/CCDD2022/shop-system/internal/session"
	"github.com/CCDD2022/shop-system/pkg/utils"
)

const testAdminPassword = "prikol123"

type testServer struct {
	router  *gin.Engine
	db      *gorm.DB
	jwtUtil *utils.JWTUtil
}

// setupServer 按生产入口的方式拼出完整路由（不带限流和MQ）
func setupServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dao.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	sessions := session.NewStore(rdb, 24)
	productDao := dao.NewProductDao(db)
	orderDao := dao.NewOrderDao(db)

	catalogService := service.NewCatalogService(productDao)
	cartService := service.NewCartService(productDao, sessions)
	orderService := service.NewOrderService(orderDao, sessions, nil)
	clientService := service.NewClientService(dao.NewClientDao(db))
	feedbackService := service.NewFeedbackService(dao.NewFeedbackDao(db))

	jwtUtil := utils.NewJWTUtil("test-secret", 1)

	productHandler := NewProductHandler(catalogService)
	orderHandler := NewOrderHandler(orderService)
	feedbackHandler := NewFeedbackHandler(feedbackService)
	clientHandler := NewClientHandler(clientService)
	cartHandler := NewCartHandler(cartService)
	shopHandler := NewShopHandler(orderService, sessions)
	adminHandler := NewAdminHandler(testAdminPassword, jwtUtil, catalogService, orderService, clientService, feedbackService)

	router := gin.New()
	router.GET("/health", func(c *gin.Context) {
		Success(c, http.StatusOK, gin.H{"status": "API is running"})
	})
	apiV1 := router.Group("/api/v1")
	productHandler.RegisterRoutes(apiV1)
	orderHandler.RegisterRoutes(apiV1)
	feedbackHandler.RegisterRoutes(apiV1)

	shop := apiV1.Group("/shop")
	shop.Use(middleware.ShopSessionMiddleware(&config.SessionConfig{CookieName: "shop_session", TTLHours: 24}))
	cartHandler.RegisterRoutes(shop)
	shopHandler.RegisterRoutes(shop)

	admin := apiV1.Group("/admin")
	adminHandler.RegisterLoginRoute(admin)
	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware(jwtUtil))
	adminHandler.RegisterAdminRoutes(protected)
	productHandler.RegisterAdminRoutes(protected)
	orderHandler.RegisterAdminRoutes(protected)
	clientHandler.RegisterAdminRoutes(protected)
	feedbackHandler.RegisterAdminRoutes(protected)

	return &testServer{router: router, db: db, jwtUtil: jwtUtil}
}

func (s *testServer) request(t *testing.T, method, path string, body any, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, vals := range header {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func (s *testServer) adminToken(t *testing.T) string {
	t.Helper()
	token, err := s.jwtUtil.GenerateAdminToken()
	require.NoError(t, err)
	return token
}

func (s *testServer) adminHeader(t *testing.T) http.Header {
	return http.Header{"Authorization": {"Bearer " + s.adminToken(t)}}
}

func (s *testServer) seedProduct(t *testing.T, name string, price float64, image string) int64 {
	t.Helper()
	p := &model.Product{Name: name, Price: price, Image: image}
	require.NoError(t, s.db.Create(p).Error)
	return p.ID
}

func TestListProductsWithFilters(t *testing.T) {
	s := setupServer(t)
	s.seedProduct(t, "Шапка", 199.99, "images/hat.jpg")
	s.seedProduct(t, "Футболка", 299.99, "")
	s.seedProduct(t, "Куртка", 1499.99, "images/jacket.jpg")

	t.Run("all products", func(t *testing.T) {
		w := s.request(t, http.MethodGet, "/api/v1/products", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "success", body["status"])
		assert.Len(t, body["data"], 3)
	})

	t.Run("price and image filter", func(t *testing.T) {
		w := s.request(t, http.MethodGet, "/api/v1/products?min_price=200&has_image=1", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		data := decodeBody(t, w)["data"].([]any)
		require.Len(t, data, 1)
		assert.Equal(t, "Куртка", data[0].(map[string]any)["name"])
	})

	t.Run("garbage price bound is ignored", func(t *testing.T) {
		w := s.request(t, http.MethodGet, "/api/v1/products?min_price=abc", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody(t, w)["data"], 3)
	})
}

func TestGetProductNotFound(t *testing.T) {
	s := setupServer(t)

	w := s.request(t, http.MethodGet, "/api/v1/products/999", nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "PRODUCT_NOT_FOUND", body["code"])
	assert.Equal(t, float64(http.StatusNotFound), body["status"])
}

func TestCreateOrderValidation(t *testing.T) {
	s := setupServer(t)

	t.Run("missing email", func(t *testing.T) {
		w := s.request(t, http.MethodPost, "/api/v1/orders", gin.H{
			"address": "Київ", "cart": gin.H{},
		}, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "MISSING_FIELD", body["code"])
		assert.Equal(t, "email", body["field"])
	})

	t.Run("missing cart", func(t *testing.T) {
		w := s.request(t, http.MethodPost, "/api/v1/orders", gin.H{
			"email": "a@b.c", "address": "Київ",
		}, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "cart", decodeBody(t, w)["field"])
	})

	t.Run("invalid json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_JSON", decodeBody(t, w)["code"])
	})
}

func TestCreateAndFetchOrder(t *testing.T) {
	s := setupServer(t)
	hatID := s.seedProduct(t, "Шапка", 199.99, "")

	w := s.request(t, http.MethodPost, "/api/v1/orders", gin.H{
		"email":   "buyer@example.com",
		"address": "Київ, вул. Хрещатик 1",
		"phone":   "+380501112233",
		"cart": gin.H{
			fmt.Sprint(hatID): gin.H{"id": hatID, "name": "Шапка", "price": 199.99, "quantity": 2},
		},
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := decodeBody(t, w)["data"].(map[string]any)["order_id"].(float64)
	require.NotZero(t, orderID)

	w = s.request(t, http.MethodGet, fmt.Sprintf("/api/v1/orders/%d", int64(orderID)), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	order := data["order"].(map[string]any)
	items := data["items"].([]any)
	assert.Equal(t, "new", order["status"])
	assert.InDelta(t, 399.98, order["total_price"].(float64), 0.001)
	require.Len(t, items, 1)
	assert.Equal(t, float64(2), items[0].(map[string]any)["quantity"])
}

func TestHealth(t *testing.T) {
	s := setupServer(t)

	w := s.request(t, http.MethodGet, "/health", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "API is running", body["data"].(map[string]any)["status"])
}

func TestListOrdersByEmailQuery(t *testing.T) {
	s := setupServer(t)
	for _, email := range []string{"buyer@example.com", "buyer@example.com", "other@example.com"} {
		require.NoError(t, s.db.Create(&model.Order{Email: email, Status: model.OrderStatusNew}).Error)
	}

	t.Run("all orders without filter", func(t *testing.T) {
		w := s.request(t, http.MethodGet, "/api/v1/orders", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody(t, w)["data"], 3)
	})

	t.Run("email filter narrows the list", func(t *testing.T) {
		w := s.request(t, http.MethodGet, "/api/v1/orders?email=buyer@example.com", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		data := decodeBody(t, w)["data"].([]any)
		require.Len(t, data, 2)
		for _, o := range data {
			assert.Equal(t, "buyer@example.com", o.(map[string]any)["email"])
		}
	})

	t.Run("unknown email returns empty list", func(t *testing.T) {
		w := s.request(t, http.MethodGet, "/api/v1/orders?email=nobody@example.com", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decodeBody(t, w)["data"])
	})
}

func TestGetOrderNotFound(t *testing.T) {
	s := setupServer(t)

	w := s.request(t, http.MethodGet, "/api/v1/orders/12345", nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ORDER_NOT_FOUND", decodeBody(t, w)["code"])
}

func TestUpdateOrderStatus(t *testing.T) {
	s := setupServer(t)
	order := &model.Order{Email: "buyer@example.com", Status: model.OrderStatusNew}
	require.NoError(t, s.db.Create(order).Error)

	t.Run("missing status", func(t *testing.T) {
		w := s.request(t, http.MethodPut, fmt.Sprintf("/api/v1/orders/%d", order.ID), gin.H{}, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "status", decodeBody(t, w)["field"])
	})

	t.Run("arbitrary status accepted", func(t *testing.T) {
		w := s.request(t, http.MethodPut, fmt.Sprintf("/api/v1/orders/%d", order.ID), gin.H{"status": "whatever"}, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got model.Order
		require.NoError(t, s.db.First(&got, order.ID).Error)
		assert.Equal(t, "whatever", got.Status)
	})
}

func TestFeedbackLifecycle(t *testing.T) {
	s := setupServer(t)

	t.Run("missing message", func(t *testing.T) {
		w := s.request(t, http.MethodPost, "/api/v1/feedback", gin.H{
			"name": "Іван", "email": "ivan@example.com",
		}, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "message", decodeBody(t, w)["field"])
	})

	t.Run("create then delete", func(t *testing.T) {
		w := s.request(t, http.MethodPost, "/api/v1/feedback", gin.H{
			"name": "Іван", "email": "ivan@example.com", "message": "Гарний магазин",
		}, nil)
		require.Equal(t, http.StatusCreated, w.Code)
		id := decodeBody(t, w)["data"].(map[string]any)["feedback_id"].(float64)

		w = s.request(t, http.MethodDelete, fmt.Sprintf("/api/v1/feedback/%d", int64(id)), nil, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("delete missing returns 404", func(t *testing.T) {
		w := s.request(t, http.MethodDelete, "/api/v1/feedback/9999", nil, nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "FEEDBACK_NOT_FOUND", decodeBody(t, w)["code"])
	})

	t.Run("admin delete missing is silent", func(t *testing.T) {
		w := s.request(t, http.MethodDelete, "/api/v1/admin/feedback/9999", nil, s.adminHeader(t))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAdminLogin(t *testing.T) {
	s := setupServer(t)

	t.Run("wrong password", func(t *testing.T) {
		w := s.request(t, http.MethodPost, "/api/v1/admin/login", gin.H{"password": "guess"}, nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "WRONG_PASSWORD", decodeBody(t, w)["code"])
	})

	t.Run("missing password", func(t *testing.T) {
		w := s.request(t, http.MethodPost, "/api/v1/admin/login", gin.H{}, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "password", decodeBody(t, w)["field"])
	})

	t.Run("correct password returns token", func(t *testing.T) {
		w := s.request(t, http.MethodPost, "/api/v1/admin/login", gin.H{"password": testAdminPassword}, nil)
		require.Equal(t, http.StatusOK, w.Code)
		token := decodeBody(t, w)["data"].(map[string]any)["token"].(string)
		require.NotEmpty(t, token)

		claims, err := s.jwtUtil.ParseToken(token)
		require.NoError(t, err)
		assert.True(t, claims.IsAdmin)
	})
}

func TestAdminGate(t *testing.T) {
	s := setupServer(t)

	t.Run("no token", func(t *testing.T) {
		w := s.request(t, http.MethodGet, "/api/v1/admin/dashboard", nil, nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "AUTH_REQUIRED", decodeBody(t, w)["code"])
	})

	t.Run("malformed header", func(t *testing.T) {
		w := s.request(t, http.MethodGet, "/api/v1/admin/dashboard", nil, http.Header{"Authorization": {"Token abc"}})
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "AUTH_FAILED", decodeBody(t, w)["code"])
	})

	t.Run("bogus token", func(t *testing.T) {
		w := s.request(t, http.MethodGet, "/api/v1/admin/dashboard", nil, http.Header{"Authorization": {"Bearer not.a.token"}})
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "AUTH_FAILED", decodeBody(t, w)["code"])
	})

	t.Run("valid token", func(t *testing.T) {
		s.seedProduct(t, "Шапка", 199.99, "")
		w := s.request(t, http.MethodGet, "/api/v1/admin/dashboard", nil, s.adminHeader(t))
		require.Equal(t, http.StatusOK, w.Code)
		data := decodeBody(t, w)["data"].(map[string]any)
		assert.Contains(t, data, "feedback")
		assert.Contains(t, data, "orders")
		assert.Contains(t, data, "clients")
		assert.Len(t, data["products"], 1)
	})
}

func TestAdminProductCRUD(t *testing.T) {
	s := setupServer(t)
	header := s.adminHeader(t)

	t.Run("rejects invalid product", func(t *testing.T) {
		w := s.request(t, http.MethodPost, "/api/v1/admin/products", gin.H{"name": "", "price": 10}, header)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_PARAMS", decodeBody(t, w)["code"])
	})

	t.Run("create update delete", func(t *testing.T) {
		w := s.request(t, http.MethodPost, "/api/v1/admin/products", gin.H{
			"name": "Рюкзак", "price": 899.99, "image": "images/backpack.jpg",
		}, header)
		require.Equal(t, http.StatusCreated, w.Code)
		id := int64(decodeBody(t, w)["data"].(map[string]any)["product_id"].(float64))

		w = s.request(t, http.MethodPut, fmt.Sprintf("/api/v1/admin/products/%d", id), gin.H{
			"name": "Рюкзак міський", "price": 999.99,
		}, header)
		require.Equal(t, http.StatusOK, w.Code)

		w = s.request(t, http.MethodDelete, fmt.Sprintf("/api/v1/admin/products/%d", id), nil, header)
		require.Equal(t, http.StatusOK, w.Code)

		w = s.request(t, http.MethodGet, fmt.Sprintf("/api/v1/products/%d", id), nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unauthenticated write rejected", func(t *testing.T) {
		w := s.request(t, http.MethodPost, "/api/v1/admin/products", gin.H{"name": "x", "price": 1}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAdminClientCRUD(t *testing.T) {
	s := setupServer(t)
	header := s.adminHeader(t)

	t.Run("missing name", func(t *testing.T) {
		w := s.request(t, http.MethodPost, "/api/v1/admin/clients", gin.H{"email": "x@example.com"}, header)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "name", decodeBody(t, w)["field"])
	})

	t.Run("truthy string has_courses", func(t *testing.T) {
		w := s.request(t, http.MethodPost, "/api/v1/admin/clients", gin.H{
			"name": "Олена", "has_courses": "on",
		}, header)
		require.Equal(t, http.StatusCreated, w.Code)
		id := int64(decodeBody(t, w)["data"].(map[string]any)["client_id"].(float64))

		w = s.request(t, http.MethodGet, fmt.Sprintf("/api/v1/admin/clients/%d", id), nil, header)
		require.Equal(t, http.StatusOK, w.Code)
		client := decodeBody(t, w)["data"].(map[string]any)
		assert.Equal(t, true, client["has_courses"])
	})

	t.Run("boolean has_courses", func(t *testing.T) {
		w := s.request(t, http.MethodPost, "/api/v1/admin/clients", gin.H{
			"name": "Петро", "has_courses": false,
		}, header)
		require.Equal(t, http.StatusCreated, w.Code)
	})
}

// shopClient 带cookie续传的购物会话客户端
type shopClient struct {
	s      *testServer
	cookie *http.Cookie
}

func (c *shopClient) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}

	w := httptest.NewRecorder()
	c.s.router.ServeHTTP(w, req)

	res := w.Result()
	for _, ck := range res.Cookies() {
		if ck.Name == "shop_session" {
			c.cookie = ck
		}
	}
	return w
}

func TestShopCartFlow(t *testing.T) {
	s := setupServer(t)
	hatID := s.seedProduct(t, "Шапка", 199.99, "")
	client := &shopClient{s: s}

	// 两次加购同一商品
	w := client.do(t, http.MethodPost, fmt.Sprintf("/api/v1/shop/cart/items/%d", hatID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, client.cookie, "session cookie should be set")

	w = client.do(t, http.MethodPost, fmt.Sprintf("/api/v1/shop/cart/items/%d", hatID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = client.do(t, http.MethodGet, "/api/v1/shop/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	cart := data["cart"].(map[string]any)
	require.Len(t, cart, 1)
	entry := cart[fmt.Sprint(hatID)].(map[string]any)
	assert.Equal(t, float64(2), entry["quantity"])
	assert.InDelta(t, 399.98, data["total"].(float64), 0.001)

	// 加购不存在的商品返回成功但购物车不变
	w = client.do(t, http.MethodPost, "/api/v1/shop/cart/items/9999", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = client.do(t, http.MethodGet, "/api/v1/shop/cart", nil)
	assert.Len(t, decodeBody(t, w)["data"].(map[string]any)["cart"], 1)
}

func TestShopCheckoutFlow(t *testing.T) {
	s := setupServer(t)
	hatID := s.seedProduct(t, "Шапка", 199.99, "")
	client := &shopClient{s: s}

	w := client.do(t, http.MethodPost, fmt.Sprintf("/api/v1/shop/cart/items/%d", hatID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("missing address", func(t *testing.T) {
		w := client.do(t, http.MethodPost, "/api/v1/shop/checkout", gin.H{"email": "buyer@example.com"})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "address", decodeBody(t, w)["field"])
	})

	w = client.do(t, http.MethodPost, "/api/v1/shop/checkout", gin.H{
		"email": "buyer@example.com", "address": "Київ", "phone": "+380501112233",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := int64(decodeBody(t, w)["data"].(map[string]any)["order_id"].(float64))

	// 结账后购物车为空
	w = client.do(t, http.MethodGet, "/api/v1/shop/cart", nil)
	assert.Empty(t, decodeBody(t, w)["data"].(map[string]any)["cart"])

	// 订单历史走会话邮箱
	w = client.do(t, http.MethodGet, "/api/v1/shop/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "buyer@example.com", data["email"])
	require.Len(t, data["orders"], 1)

	// 订单详情同会话可见
	w = client.do(t, http.MethodGet, fmt.Sprintf("/api/v1/shop/orders/%d", orderID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestShopOrdersWithoutEmail(t *testing.T) {
	s := setupServer(t)
	client := &shopClient{s: s}

	w := client.do(t, http.MethodGet, "/api/v1/shop/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "No email set for this session", body["message"])
}

func TestShopOrderOwnership(t *testing.T) {
	s := setupServer(t)
	order := &model.Order{Email: "owner@example.com", Address: "Київ", Status: model.OrderStatusNew}
	require.NoError(t, s.db.Create(order).Error)

	t.Run("no session email grants access", func(t *testing.T) {
		client := &shopClient{s: s}
		w := client.do(t, http.MethodGet, fmt.Sprintf("/api/v1/shop/orders/%d", order.ID), nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("mismatched email is rejected", func(t *testing.T) {
		client := &shopClient{s: s}
		w := client.do(t, http.MethodPost, "/api/v1/shop/orders", gin.H{"email": "other@example.com"})
		require.Equal(t, http.StatusOK, w.Code)

		w = client.do(t, http.MethodGet, fmt.Sprintf("/api/v1/shop/orders/%d", order.ID), nil)
		require.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "ORDER_ACCESS_DENIED", decodeBody(t, w)["code"])

		w = client.do(t, http.MethodPut, fmt.Sprintf("/api/v1/shop/orders/%d/contact", order.ID), gin.H{
			"address": "hacked", "phone": "1",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("owner can update contact", func(t *testing.T) {
		client := &shopClient{s: s}
		w := client.do(t, http.MethodPost, "/api/v1/shop/orders", gin.H{"email": "owner@example.com"})
		require.Equal(t, http.StatusOK, w.Code)

		w = client.do(t, http.MethodPut, fmt.Sprintf("/api/v1/shop/orders/%d/contact", order.ID), gin.H{
			"address": "Львів", "phone": "+380671234567",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var got model.Order
		require.NoError(t, s.db.First(&got, order.ID).Error)
		assert.Equal(t, "Львів", got.Address)
		assert.Equal(t, "+380671234567", got.Phone)
	})
}
