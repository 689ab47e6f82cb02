package main

import (
	"net/http"
	"strconv"

	"github.com/cecepns/rn-aneka-jaya/apps/api/middleware"
	"github.com/cecepns/rn-aneka-jaya/pkg/cache"
	"github.com/cecepns/rn-aneka-jaya/pkg/config"
	"github.com/cecepns/rn-aneka-jaya/pkg/uploads"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type server struct {
	db        *gorm.DB
	uploads   *uploads.Store
	settings  *cache.TTLCache
	cfg       *config.Config
	adminHash []byte
	// 限流中间件工厂，main 里注入 Sentinel 实现，测试时留空直通
	limiter func(resource string) gin.HandlerFunc
}

func newServer(db *gorm.DB, store *uploads.Store, settings *cache.TTLCache, cfg *config.Config) (*server, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &server{
		db:        db,
		uploads:   store,
		settings:  settings,
		cfg:       cfg,
		adminHash: hash,
	}, nil
}

func (s *server) guard(resource string) gin.HandlerFunc {
	if s.limiter == nil {
		return func(*gin.Context) {}
	}
	return s.limiter(resource)
}

func (s *server) router() *gin.Engine {
	r := gin.Default()
	r.Use(otelgin.Middleware(s.cfg.Service.Name))
	r.Use(cors.Default())

	// 上传目录直接静态暴露，前端按文件名拼 URL
	r.Static("/uploads", s.uploads.Dir())

	api := r.Group("/api")

	// 公开接口
	{
		api.POST("/auth/login", s.login)

		api.GET("/products", s.listProducts)
		api.GET("/products/:id", s.getProduct)
		api.GET("/categories", s.listCategories)

		api.GET("/news", s.listNews)
		api.GET("/news/:slug", s.getNewsBySlug)
		api.GET("/news-categories", s.listNewsCategories)

		api.GET("/payment-methods", s.listActivePaymentMethods)
		api.GET("/settings", s.getSettings)

		api.POST("/orders", s.guard(resOrders), s.createOrder)
		api.POST("/contact", s.guard(resContact), s.createMessage)

		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Server is running"})
		})
	}

	// 受保护的后台接口
	authed := api.Group("/")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("/products", s.createProduct)
		authed.PUT("/products/:id", s.updateProduct)
		authed.DELETE("/products/:id", s.deleteProduct)

		authed.POST("/variants", s.createVariant)
		authed.PUT("/variants/:id", s.updateVariant)
		authed.DELETE("/variants/:id", s.deleteVariant)

		authed.POST("/categories", s.createCategory)
		authed.PUT("/categories/:id", s.updateCategory)
		authed.DELETE("/categories/:id", s.deleteCategory)

		authed.POST("/news", s.createNews)
		authed.PUT("/news/:id", s.updateNews)
		authed.DELETE("/news/:id", s.deleteNews)

		authed.POST("/news-categories", s.createNewsCategory)
		authed.PUT("/news-categories/:id", s.updateNewsCategory)
		authed.DELETE("/news-categories/:id", s.deleteNewsCategory)

		authed.GET("/payment-methods/admin/all", s.listAllPaymentMethods)
		authed.POST("/payment-methods", s.createPaymentMethod)
		authed.PUT("/payment-methods/:id", s.updatePaymentMethod)
		authed.DELETE("/payment-methods/:id", s.deletePaymentMethod)

		authed.PUT("/settings", s.updateSettings)

		authed.GET("/orders/admin/all", s.listOrders)
		authed.GET("/orders/admin/export", s.exportOrders)
		authed.GET("/messages/admin/all", s.listMessages)
	}

	return r
}

// pagination 解析 page/limit，非法值回落默认
func pagination(ctx *gin.Context) (page, limit, offset int) {
	page, _ = strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit, (page - 1) * limit
}

func totalPages(total int64, limit int) int64 {
	return (total + int64(limit) - 1) / int64(limit)
}
