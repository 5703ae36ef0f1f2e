package configs

import (
	"os"
	"sync"
)

// AppConfig concentra a configuração lida do ambiente.
type AppConfig struct {
	DatabaseURL   string // DSN do Postgres
	PublicURL     string // URL base pública usada nos links de confirmação
	ListenAddr    string
	SessionSecret string
	EventName     string // nome do evento usado nas mensagens de convite
}

var (
	appConfig     *AppConfig
	appConfigOnce sync.Once
)

// GetAppConfig carrega (uma única vez) e retorna a configuração da aplicação.
func GetAppConfig() *AppConfig {
	appConfigOnce.Do(func() {
		appConfig = &AppConfig{
			DatabaseURL:   getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=chadebebe port=5432 sslmode=disable"),
			PublicURL:     getEnv("APP_PUBLIC_URL", "http://localhost:3000"),
			ListenAddr:    getEnv("LISTEN_ADDR", ":3000"),
			SessionSecret: getEnv("SESSION_SECRET", ""),
			EventName:     getEnv("EVENT_NAME", "chá de bebê da Antonella"),
		}
	})
	return appConfig
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
