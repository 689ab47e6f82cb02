package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/cecepns/rn-aneka-jaya/apps/api/model"
	"github.com/cecepns/rn-aneka-jaya/pkg/cache"
	"github.com/cecepns/rn-aneka-jaya/pkg/config"
	"github.com/cecepns/rn-aneka-jaya/pkg/database"
	"github.com/cecepns/rn-aneka-jaya/pkg/jwt"
	"github.com/cecepns/rn-aneka-jaya/pkg/tracer"
	"github.com/cecepns/rn-aneka-jaya/pkg/uploads"

	sentinel "github.com/alibaba/sentinel-golang/api"
	"github.com/alibaba/sentinel-golang/core/base"
	"github.com/alibaba/sentinel-golang/core/flow"
	"github.com/gin-gonic/gin"
)

// 定义资源名称
const (
	resOrders  = "orders_api"
	resContact = "contact_api"
)

// initSentinel 初始化限流规则，公开写接口防刷
func initSentinel() {
	err := sentinel.InitDefault()
	if err != nil {
		log.Fatalf("初始化 Sentinel 失败: %v", err)
	}

	_, err = flow.LoadRules([]*flow.Rule{
		{
			Resource:               resOrders,
			TokenCalculateStrategy: flow.Direct,
			ControlBehavior:        flow.Reject,
			Threshold:              10, // 下单接口 QPS 限制为 10
			StatIntervalInMs:       1000,
		},
		{
			Resource:               resContact,
			TokenCalculateStrategy: flow.Direct,
			ControlBehavior:        flow.Reject,
			Threshold:              5, // 留言接口 QPS 限制为 5
			StatIntervalInMs:       1000,
		},
	})
	if err != nil {
		log.Fatalf("加载 Sentinel 规则失败: %v", err)
	}
	log.Println("Sentinel 限流规则已加载: orders QPS=10, contact QPS=5")
}

func sentinelLimit(resource string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		e, b := sentinel.Entry(resource, sentinel.WithTrafficType(base.Inbound))
		if b != nil {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests, please try again later"})
			return
		}
		defer e.Exit() // 务必退出
		ctx.Next()
	}
}

func main() {
	c, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 环境变量适配
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Service.Port = p
		}
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Mysql.Host = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		c.Mysql.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Mysql.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		c.Mysql.DbName = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Auth.JwtSecret = v
	}
	jwt.SetSecret(c.Auth.JwtSecret)

	initSentinel()

	// OTEL_ENDPOINT 为空时不上报链路
	shutdownTracer, err := tracer.Init(c.Service.Name, os.Getenv("OTEL_ENDPOINT"))
	if err != nil {
		log.Fatalf("Failed to init tracer: %v", err)
	}

	db, err := database.InitMySQL(c.Mysql)
	if err != nil {
		log.Fatalf("Failed to init mysql: %v", err)
	}
	db.AutoMigrate(
		&model.Product{}, &model.ProductVariant{}, &model.Category{},
		&model.News{}, &model.NewsCategory{},
		&model.PaymentMethod{}, &model.Settings{},
		&model.Order{}, &model.Message{},
	)

	store, err := uploads.NewStore(c.Upload.Dir, c.Upload.MaxSize)
	if err != nil {
		log.Fatalf("Failed to init upload dir: %v", err)
	}

	s, err := newServer(db, store, cache.New(time.Duration(c.Upload.SettingsTTL)*time.Second), c)
	if err != nil {
		log.Fatalf("Failed to init server: %v", err)
	}
	s.limiter = sentinelLimit

	addr := fmt.Sprintf(":%d", c.Service.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: s.router(),
	}

	log.Printf("API Service listening on %s", addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if err := shutdownTracer(ctx); err != nil {
		log.Printf("tracer shutdown: %v", err)
	}
}
