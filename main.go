package main

import (
	"os"
	"os/signal"
	"syscall"

	"chadebebe.link/configs"
	"chadebebe.link/configs/configsdatabase"
	"chadebebe.link/configs/configslog"
	"chadebebe.link/database"
	"chadebebe.link/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	configslog.InitLogger()
	defer configslog.SyncLogger()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	// MIGRATE=true / SEED=true permitem preparar o banco junto com o boot,
	// útil em ambientes onde não se roda o comando database/cmd separado.
	migrate := os.Getenv("MIGRATE") == "true"
	seed := os.Getenv("SEED") == "true"
	if migrate || seed {
		database.Initialize(configsdatabase.GetDB(), migrate, seed)
	}

	cfg := configs.GetAppConfig()

	app := fiber.New(fiber.Config{
		AppName:               cfg.EventName,
		DisableStartupMessage: true,
	})

	routes.SetupRoutes(app)

	go func() {
		configslog.SLog.Infof("Servidor ouvindo em %s", cfg.ListenAddr)
		if err := app.Listen(cfg.ListenAddr); err != nil {
			configslog.Log.Fatal("Servidor encerrado com erro", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	configslog.SLog.Info("Encerrando o servidor...")
	if err := app.Shutdown(); err != nil {
		configslog.Log.Error("Erro ao encerrar o servidor", zap.Error(err))
	}
	configslog.SLog.Info("Servidor encerrado.")
}
