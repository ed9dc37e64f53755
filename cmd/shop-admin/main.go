package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/Cheertaboi/shop-admin/internal/api"
	"github.com/Cheertaboi/shop-admin/internal/auth"
	"github.com/Cheertaboi/shop-admin/internal/cache"
	"github.com/Cheertaboi/shop-admin/internal/config"
	"github.com/Cheertaboi/shop-admin/internal/events"
	"github.com/Cheertaboi/shop-admin/internal/jobs"
	"github.com/Cheertaboi/shop-admin/internal/models"
	"github.com/Cheertaboi/shop-admin/internal/repository"
	"github.com/Cheertaboi/shop-admin/internal/service"
	"github.com/Cheertaboi/shop-admin/internal/validation"
	"github.com/Cheertaboi/shop-admin/pkg/db"
)

func main() {
	cfg := config.Load()
	if cfg.Auth.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	conn, err := db.NewPostgresConnection(cfg.DB)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer conn.Close()

	couponRepo := repository.NewCouponRepo(conn)
	productRepo := repository.NewProductRepo(conn)
	lookupRepo := repository.NewLookupRepo(conn)
	orderRepo := repository.NewOrderRepo(conn)
	userRepo := repository.NewUserRepo(conn)
	roleRepo := repository.NewRoleRepo(conn)

	roles := cache.NewRoleCache(roleRepo.IDByName)
	if cfg.Auth.AdminRoleID != "" {
		id, err := uuid.Parse(cfg.Auth.AdminRoleID)
		if err != nil {
			log.Fatalf("ADMIN_ROLE_ID: %v", err)
		}
		roles.Set(models.RoleAdmin, id)
	}

	pub := events.New(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	defer pub.Close()

	tokens := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	policy := validation.CouponPolicy{
		EndOfDayGrace:      cfg.Coupon.EndOfDayGrace,
		RequireFutureStart: cfg.Coupon.RequireFutureStart,
	}

	handler := api.NewRouter(api.Deps{
		DB:       conn,
		Auth:     service.NewAuthService(userRepo, roles, tokens),
		Coupons:  service.NewCouponService(couponRepo, pub, policy),
		Products: service.NewProductService(productRepo, lookupRepo, pub),
		Orders:   service.NewOrderService(orderRepo, pub),
		Users:    service.NewUserService(userRepo, roles, pub),
	})

	scheduler, err := jobs.NewScheduler(cfg.Jobs.CouponExpirySpec, couponRepo)
	if err != nil {
		log.Fatalf("jobs: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("starting shop-admin on %s", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server Shutdown: %v", err)
	}
	log.Println("server stopped")
}
