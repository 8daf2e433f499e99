package config

import (
	"log"
	"os"
)

type Config struct {
	HTTPPort     string
	DatabasePath string
	CORSOrigins  string
	JWTSecret    string // boşsa ingest token'ı sadece format kontrolünden geçer

	// Rapor/print ayarları (eski sistemdeki örtük tarayıcı ayarlarının yerine)
	ReportTitle      string
	ReportShowFooter bool
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:         getEnv("HTTP_PORT", "4000"),
		DatabasePath:     getEnv("DATABASE_PATH", "./mo_receiver.db"),
		CORSOrigins:      getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		JWTSecret:        getEnv("RECEIVER_JWT_SECRET", ""),
		ReportTitle:      getEnv("REPORT_TITLE", "Report Summary Penimbangan"),
		ReportShowFooter: getEnv("REPORT_SHOW_FOOTER", "true") != "false",
	}

	if cfg.JWTSecret == "" {
		log.Println("[WARN] RECEIVER_JWT_SECRET tanımlı değil, ingest endpoint'i her bearer token'ı kabul edecek.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS varsayılan değer kullanılıyor, production için mutlaka kendi domain'ini tanımla.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
