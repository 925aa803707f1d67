package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "github.com/DevKrishnasai/fundifyhub-sub001/internal/adapter/http"
	"github.com/DevKrishnasai/fundifyhub-sub001/internal/adapter/middleware"
	"github.com/DevKrishnasai/fundifyhub-sub001/internal/adapter/repository/mysql"
	"github.com/DevKrishnasai/fundifyhub-sub001/internal/config"
	"github.com/DevKrishnasai/fundifyhub-sub001/internal/infrastructure/cache"
	"github.com/DevKrishnasai/fundifyhub-sub001/internal/infrastructure/db"
	previewUC "github.com/DevKrishnasai/fundifyhub-sub001/internal/usecase/preview"
	requestUC "github.com/DevKrishnasai/fundifyhub-sub001/internal/usecase/request"
	workflowUC "github.com/DevKrishnasai/fundifyhub-sub001/internal/usecase/workflow"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	requests := mysql.NewRequestRepository(gdb)
	history := mysql.NewHistoryRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	reqUC := requestUC.NewUsecase(requests, history, tx)
	wfUC := workflowUC.NewUsecase(requests, tx)
	prevUC := previewUC.NewUsecase(rdb, time.Duration(cfg.PreviewTTLSecs)*time.Second)

	h := httpadp.NewHandler()
	reqH := httpadp.NewRequestHandler(reqUC)
	wfH := httpadp.NewWorkflowHandler(wfUC)
	prevH := httpadp.NewPreviewHandler(prevUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idemp := middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// routes
	e.GET("/health", h.Health)
	e.POST("/requests", reqH.SubmitRequest)
	e.GET("/requests/:request_id", reqH.GetRequest)
	e.GET("/requests/:request_id/history", reqH.GetHistory)
	e.GET("/requests/:request_id/actions", wfH.ListActions)
	e.POST("/requests/:request_id/actions/:action_id", wfH.Act, idemp)
	e.GET("/offers/preview", prevH.PreviewOffer)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
