package configs

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

var (
	sessionStore *session.Store
	sessionOnce  sync.Once
)

// SetupSession retorna o session store único da aplicação.
// Armazenamento em memória basta para o tráfego de um único administrador.
func SetupSession() *session.Store {
	sessionOnce.Do(func() {
		sessionStore = session.New(session.Config{
			Expiration:     12 * time.Hour,
			KeyLookup:      "cookie:chadebebe_session",
			CookieHTTPOnly: true,
			CookieSameSite: "Lax",
		})
	})
	return sessionStore
}
