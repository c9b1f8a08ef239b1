package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/unihall/hall-allotment/internal/config"
	"github.com/unihall/hall-allotment/internal/database"
	"github.com/unihall/hall-allotment/internal/handler"
	"github.com/unihall/hall-allotment/internal/middleware"
	"github.com/unihall/hall-allotment/internal/model"
	"github.com/unihall/hall-allotment/internal/queue"
	"github.com/unihall/hall-allotment/internal/repository"
	"github.com/unihall/hall-allotment/internal/router"
)

func main() {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName, database.Pool{
		MaxOpen: cfg.DBMaxOpen,
		MaxIdle: cfg.DBMaxIdle,
		MaxLife: cfg.DBConnLifetime,
	})
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if cfg.SeedDemoData {
		if err := database.Seed(ctx, db, cfg.BcryptCost); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	halls := repository.NewHallRepo(db)
	forms := repository.NewFormRepo(db)
	apps := repository.NewApplicationRepo(db)
	seats := repository.NewSeatRepo(db)
	renewals := repository.NewRenewalRepo(db)
	notes := repository.NewNotificationRepo(db)
	complaints := repository.NewComplaintRepo(db)
	uploads := repository.NewUploadRepo(db)

	authH := handler.NewAuthHandler(cfg, users, halls, tokens)
	hallH := handler.NewHallHandler(halls)
	formH := handler.NewFormHandler(forms)
	appH := handler.NewApplicationHandler(apps, forms, users)
	seatH := handler.NewSeatHandler(seats)
	renH := handler.NewRenewalHandler(renewals)
	noteH := handler.NewNotificationHandler(notes)
	cmpH := handler.NewComplaintHandler(complaints, users)
	userH := handler.NewUserHandler(users)
	resultH := handler.NewUploadHandler(uploads, model.UploadResult)
	planH := handler.NewUploadHandler(uploads, model.UploadSeatPlan)

	e := echo.New()

	// Redis backs both the response cache and the token-bucket rate
	// limiter; both middlewares degrade to pass-through when the
	// client is unavailable.
	rdb := config.NewRedisClient()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterPublic(e, hallH)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterCommon(e, formH, appH, seatH, cmpH, noteH, resultH, planH, cfg.JWTSecret)
	router.RegisterStudent(e, appH, renH, cmpH, cfg.JWTSecret)
	router.RegisterAdmin(e, formH, appH, seatH, renH, noteH, userH, cfg.JWTSecret)
	router.RegisterReview(e, cmpH, cfg.JWTSecret)
	router.RegisterExamController(e, resultH, planH, cfg.JWTSecret)

	go func() {
		if err := queue.StartApplicationConsumer(); err != nil {
			log.Printf("application-consumer: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
