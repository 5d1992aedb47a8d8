package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/puttdental/backend-allotment/config"
	"github.com/puttdental/backend-allotment/logger"
	"github.com/puttdental/backend-allotment/middleware"
	"github.com/puttdental/backend-allotment/routes"
	"github.com/puttdental/backend-allotment/services"
	"github.com/puttdental/backend-allotment/store"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// Initialize configuration
	cfg := config.NewConfig()

	zlog, err := logger.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	// Pick the persistence backend: Supabase when configured and reachable,
	// the local workbook otherwise.
	st := selectStore(cfg, zlog)
	zlog.Info("storage backend ready", zap.String("backend", st.Name()))

	// SMS provider for reminders (optional)
	var sms services.SMSClient
	switch cfg.SMSProvider {
	case "sms2pro":
		if cfg.SMS2ProAPIKey != "" {
			sms = services.NewSMS2ProClient(cfg.SMS2ProAPIKey)
		}
	default:
		if cfg.SMSMKTKey != "" {
			sms = &services.SMSMKTClient{
				APIKey:     cfg.SMSMKTKey,
				SecretKey:  cfg.SMSMKTSecretKey,
				ProjectKey: cfg.SMSMKTProjectKey,
				URL:        cfg.SMSMKTURL,
			}
		}
	}
	reminders := services.NewReminderService(sms, cfg.ReminderPhone, cfg.ReminderLeadMin, zlog)

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.Default()

	// Setup CORS middleware
	router.Use(config.CORSMiddleware(cfg))
	router.Use(middleware.RateLimitMiddleware())

	// Setup routes
	routes.SetupRoutes(router, st, cfg, reminders)

	// Start server
	zlog.Info("server starting", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("server failed", zap.Error(err))
	}
}

func selectStore(cfg *config.Config, zlog *zap.Logger) store.Store {
	client, err := config.NewSupabaseClient(cfg)
	if err == nil {
		supaStore := store.NewSupabaseStore(client, zlog)
		if pingErr := supaStore.Ping(); pingErr == nil {
			return supaStore
		} else {
			zlog.Warn("supabase unreachable, falling back to workbook", zap.Error(pingErr))
		}
	} else {
		zlog.Warn("supabase not configured, using workbook", zap.Error(err))
	}

	excelStore, err := store.NewExcelStore(cfg.ExcelFile, zlog)
	if err != nil {
		zlog.Fatal("failed to open workbook", zap.Error(err))
	}
	return excelStore
}
