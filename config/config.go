package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	SupabaseURL        string
	SupabaseAnonKey    string
	SupabaseServiceKey string
	ExcelFile          string
	JWTSecret          string
	Port               string
	Environment        string
	LogLevel           string
	AllowedOrigins     []string
	DashboardUser      string
	DashboardPIN       string
	AdminPIN           string
	SMSProvider        string
	SMSMKTKey          string
	SMSMKTSecretKey    string
	SMSMKTProjectKey   string
	SMSMKTURL          string
	SMS2ProAPIKey      string
	ReminderPhone      string
	ReminderLeadMin    int
}

func NewConfig() *Config {
	allowedOriginsStr := os.Getenv("ALLOWED_ORIGINS")
	allowedOrigins := []string{"http://localhost:3000"}
	if allowedOriginsStr != "" {
		allowedOrigins = strings.Split(allowedOriginsStr, ",")
	}

	return &Config{
		SupabaseURL:        os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey:    os.Getenv("SUPABASE_ANON_KEY"),
		SupabaseServiceKey: os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),
		ExcelFile:          getEnvOrDefault("EXCEL_FILE", "Putt Allotment.xlsx"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		Port:               getEnvOrDefault("PORT", "8080"),
		Environment:        getEnvOrDefault("ENVIRONMENT", "development"),
		LogLevel:           getEnvOrDefault("LOG_LEVEL", "info"),
		AllowedOrigins:     allowedOrigins,
		DashboardUser:      getEnvOrDefault("DASHBOARD_USER", "frontdesk"),
		DashboardPIN:       os.Getenv("DASHBOARD_PIN"),
		AdminPIN:           os.Getenv("ADMIN_PIN"),
		SMSProvider:        getEnvOrDefault("SMS_PROVIDER", "smsmkt"),
		SMSMKTKey:          os.Getenv("SMSMKT_API_KEY"),
		SMSMKTSecretKey:    os.Getenv("SMSMKT_SECRET_KEY"),
		SMSMKTProjectKey:   os.Getenv("SMSMKT_PROJECT_KEY"),
		SMSMKTURL:          os.Getenv("SMSMKT_URL"),
		SMS2ProAPIKey:      os.Getenv("SMS2PRO_API_KEY"),
		ReminderPhone:      os.Getenv("REMINDER_PHONE"),
		ReminderLeadMin:    getEnvIntOrDefault("REMINDER_LEAD_MINUTES", 15),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
