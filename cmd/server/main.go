package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"bakery/internal/checkout"
	"bakery/internal/commons"
	"bakery/internal/config"
	"bakery/internal/delivery"
	"bakery/internal/infrastructure/logger"
	"bakery/internal/infrastructure/mailer"
	"bakery/internal/infrastructure/mysql"
	"bakery/internal/infrastructure/redis"
	"bakery/internal/notification"
	"bakery/internal/order"
	"bakery/internal/product"
	"bakery/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New("bakery", cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx := context.Background()

	gateways, err := commons.LoadGatewayTable(cfg.Notification.CarrierGatewayFile)
	if err != nil {
		zapLogger.Fatal("loading carrier gateways", zap.Error(err))
	}

	var transport notification.Transport = mailer.DisabledTransport{}
	if cfg.SMTP.Host != "" {
		transport, err = mailer.NewSMTPTransport(cfg.SMTP, zapLogger)
		if err != nil {
			zapLogger.Fatal("creating smtp transport", zap.Error(err))
		}
	} else {
		zapLogger.Warn("SMTP_HOST not set, orders will be refused")
	}

	dispatcher := notification.NewDispatcher(transport, gateways, notification.Config{
		From:          cfg.SMTP.From,
		BusinessEmail: cfg.Notification.BusinessEmail,
		SMSCarrier:    cfg.Notification.SMSCarrier,
		SMSPhone:      cfg.Notification.SMSPhone,
		SMSUseMMS:     cfg.Notification.SMSUseMMS,
		SendTimeout:   cfg.Notification.SendTimeout,
	}, zapLogger)

	var cache redis.Cache
	if cfg.Redis.Addr != "" {
		c, closeCache, err := redis.NewCache(ctx, cfg.Redis)
		if err != nil {
			zapLogger.Fatal("connecting to redis", zap.Error(err))
		}
		defer closeCache()
		cache = c
		zapLogger.Info("redis connected", zap.String("addr", cfg.Redis.Addr))
	}

	area := delivery.NewArea(cfg.Delivery.Zips)
	ctrls := server.Controllers{
		Orders:   order.NewModule(dispatcher, area, cfg, zapLogger),
		Checkout: checkout.NewModule(cfg, cache, zapLogger),
		Delivery: delivery.NewController(area, zapLogger),
	}

	if cfg.Database.Host != "" {
		db, err := mysql.NewConnection(ctx, cfg.Database)
		if err != nil {
			zapLogger.Fatal("connecting to database", zap.Error(err))
		}
		defer db.Close()
		zapLogger.Info("database connected")

		ctrls.Products = product.NewModule(db, cache, zapLogger)
	}

	router := server.NewRouter(ctrls, cfg.Server.RequestTimeout, zapLogger)
	srv := server.New(cfg.Server, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
