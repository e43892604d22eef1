// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hgapps/medicare-api/config"
	"github.com/hgapps/medicare-api/endpoint"
	"github.com/hgapps/medicare-api/genai"
	"github.com/hgapps/medicare-api/middleware"
	"github.com/hgapps/medicare-api/model"
	"github.com/hgapps/medicare-api/reminder"
	"github.com/hgapps/medicare-api/store"
	"github.com/hgapps/medicare-api/util"
)

func main() {
	// Load the configuration
	cfg := config.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err := db.AutoMigrate(&model.StoreRecord{}, &model.EventLog{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	util.SetEventLoggerDB(db)

	config.ConnectRedis()

	if cfg.GeoIPDBPath != "" {
		if err := util.InitGeoIP(cfg.GeoIPDBPath); err != nil {
			log.Printf("GeoIP unavailable: %v", err)
		}
		defer util.CloseGeoIP()
	}

	st := store.New(db)

	aiClient, err := genai.NewClient(context.Background(), cfg.APIKey)
	if err != nil {
		log.Fatalf("Error creating content-generation client: %v", err)
	}
	endpoint.SetGenAIClient(aiClient)

	engine := startReminderEngine(cfg, st)
	defer engine.Stop()
	endpoint.SetReminderEngine(engine)

	// Set Gin mode from config
	gin.SetMode(cfg.GinMode)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DatabaseMiddleware(db, st))
	router.Use(middleware.EndpointCallLogger())

	// Basic HTTP handler for root path
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Welcome to %s!", cfg.AppName),
		})
	})

	registerRoutes(router)

	serve(router, cfg.AppPort)
}

func registerRoutes(router *gin.Engine) {
	authLimit := middleware.RateLimiter(middleware.RateLimitConfig{})
	// Generation endpoints are expensive; allow more than credential checks
	// but still bound them.
	genLimit := middleware.RateLimiter(middleware.RateLimitConfig{Limit: 30, Window: 15 * time.Minute})

	router.POST("/auth/signup", authLimit, endpoint.Signup)
	router.POST("/auth/login", authLimit, endpoint.Login)
	router.POST("/auth/logout", middleware.ValidateLoginToken(), endpoint.Logout)
	router.GET("/auth/session", endpoint.CurrentSession)

	router.GET("/preferences", endpoint.GetPreferences)
	router.PATCH("/preferences", endpoint.UpdatePreferences)

	router.POST("/plans/generate", genLimit, endpoint.GeneratePlan)
	router.POST("/plans", endpoint.SavePlan)
	router.GET("/plans/history", endpoint.GetHistory)
	router.GET("/plans/active", endpoint.GetActivePlan)

	router.GET("/reminders", endpoint.ListReminders)
	router.POST("/reminders", endpoint.CreateReminder)
	router.DELETE("/reminders/:id", endpoint.DeleteReminder)
	router.GET("/reminders/sounds", endpoint.ListSounds)

	router.POST("/chat", genLimit, endpoint.SendChatMessage)
	router.GET("/chat", endpoint.GetChatTranscript)
	router.DELETE("/chat", endpoint.ClearChatTranscript)

	router.GET("/news", endpoint.GetNews)
	router.GET("/news/live", endpoint.GetLiveNews)
	router.GET("/medicines", genLimit, endpoint.LookupMedicine)
	router.GET("/locations", endpoint.GetLocations)
}

func startReminderEngine(cfg *config.Config, st *store.Store) *reminder.Engine {
	opts := []reminder.Option{
		reminder.WithLeader(reminder.NewLeader(config.GetRedisClient(), uuid.NewString())),
		reminder.WithAlerter(reminder.AlerterFunc(func(a reminder.Alert) {
			util.LogAlertFired(a.ID, a.Name, a.Time)
		})),
	}
	if cfg.AlertWebhookURL != "" {
		opts = append(opts, reminder.WithAlerter(reminder.NewWebhookAlerter(cfg.AlertWebhookURL)))
	}

	engine := reminder.NewEngine(st, opts...)
	engine.Start()
	return engine
}

func serve(router *gin.Engine, port uint16) {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("error starting server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
}
