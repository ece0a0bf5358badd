package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CCDD2022/shop-system/api/middleware"
	v1 "github.com/CCDD2022/shop-system/api/v1"
	"github.com/CCDD2022/shop-system/internal/dao"
	"github.com/CCDD2022/shop-system/internal/dao/mysql"
	daoredis "github.com/CCDD2022/shop-system/internal/dao/redis"
	"github.com/CCDD2022/shop-system/internal/mq"
	"github.com/CCDD2022/shop-system/internal/service"
	"github.com/CCDD2022/shop-system/internal/session"
	"github.com/CCDD2022/shop-system/pkg/app"
	"github.com/CCDD2022/shop-system/pkg/logger"
	"github.com/CCDD2022/shop-system/pkg/utils"
)

func main() {
	// 加载配置与日志
	cfg := app.BootstrapApp()

	// 设置Gin模式
	switch cfg.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	// 初始化存储
	db, err := mysql.InitDB(&cfg.Database.Mysql)
	if err != nil {
		logger.Fatal("init mysql failed", "err", err)
	}
	if err := dao.Migrate(db); err != nil {
		logger.Fatal("migrate schema failed", "err", err)
	}

	rdb, err := daoredis.InitRedis(&cfg.Database.Redis)
	if err != nil {
		logger.Fatal("init redis failed", "err", err)
	}

	// MQ可选：未启用时 publisher 为 nil，发布为空操作
	publisher, err := mq.Init(&cfg.MQ)
	if err != nil {
		logger.Fatal("init mq failed", "err", err)
	}
	defer publisher.Close()

	// 组装依赖
	sessions := session.NewStore(rdb, cfg.Session.TTLHours)

	productDao := dao.NewProductDao(db)
	orderDao := dao.NewOrderDao(db)
	clientDao := dao.NewClientDao(db)
	feedbackDao := dao.NewFeedbackDao(db)

	catalogSvc := service.NewCatalogService(productDao)
	cartSvc := service.NewCartService(productDao, sessions)
	orderSvc := service.NewOrderService(orderDao, sessions, publisher)
	clientSvc := service.NewClientService(clientDao)
	feedbackSvc := service.NewFeedbackService(feedbackDao)

	jwtUtil := utils.NewJWTUtil(cfg.JWT.Secret, cfg.JWT.ExpireHours)

	productHandler := v1.NewProductHandler(catalogSvc)
	orderHandler := v1.NewOrderHandler(orderSvc)
	feedbackHandler := v1.NewFeedbackHandler(feedbackSvc)
	clientHandler := v1.NewClientHandler(clientSvc)
	cartHandler := v1.NewCartHandler(cartSvc)
	shopHandler := v1.NewShopHandler(orderSvc, sessions)
	adminHandler := v1.NewAdminHandler(cfg.Admin.Password, jwtUtil, catalogSvc, orderSvc, clientSvc, feedbackSvc)

	r := gin.Default()

	// 全局限流
	r.Use(middleware.GlobalRateLimit(cfg))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		v1.Success(c, http.StatusOK, gin.H{"status": "API is running"})
	})

	api := r.Group("/api/v1")
	{
		// 公开JSON API
		productHandler.RegisterRoutes(api)
		orderHandler.RegisterRoutes(api)
		feedbackHandler.RegisterRoutes(api)

		// 购物会话面（cookie会话 + redis购物车）
		shop := api.Group("/shop")
		shop.Use(middleware.ShopSessionMiddleware(&cfg.Session))
		{
			cartHandler.RegisterRoutes(shop)
			shop.Use(middleware.CheckoutRateLimit(cfg))
			shopHandler.RegisterRoutes(shop)
		}

		// 后台面：登录开放，其余路由需要管理员令牌
		admin := api.Group("/admin")
		adminHandler.RegisterLoginRoute(admin)
		protected := admin.Group("")
		protected.Use(middleware.AdminAuthMiddleware(jwtUtil))
		{
			adminHandler.RegisterAdminRoutes(protected)
			productHandler.RegisterAdminRoutes(protected)
			orderHandler.RegisterAdminRoutes(protected)
			clientHandler.RegisterAdminRoutes(protected)
			feedbackHandler.RegisterAdminRoutes(protected)
		}
	}

	serverAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("shop server starting", "addr", serverAddr)
	if err := r.Run(serverAddr); err != nil {
		logger.Fatal("server exited", "err", err)
	}
}
