package config

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// Data file locations, overridable per environment. Defaults match the
// repository's assets layout.
func DataDir() string {
	return getEnv("DATA_DIR", filepath.Join("assets", "data"))
}

func OrdersPath() string {
	return filepath.Join(DataDir(), getEnv("ORDERS_FILE", "orders_data.parquet"))
}

func CategoryTranslationPath() string {
	return filepath.Join(DataDir(), getEnv("CATEGORY_TRANSLATION_FILE", "product_category_name_translation.csv"))
}

func GeolocationPath() string {
	return filepath.Join(DataDir(), getEnv("GEOLOCATION_FILE", "geolocation.csv"))
}

func CalendarNamesPath() string {
	return filepath.Join(DataDir(), getEnv("CALENDAR_NAMES_FILE", "calendar_names.json"))
}

func ServerAddr() string {
	return ":" + getEnv("PORT", "8081")
}

// WithTimeout returns a context with a 10s budget for one interaction's
// recomputation pass.
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
