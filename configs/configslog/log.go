package configslog

import (
	"os"

	"go.uber.org/zap"
)

// Log é o logger estruturado global. SLog é a versão "sugared" para
// mensagens de ciclo de vida.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// InitLogger inicializa os loggers globais. APP_ENV=development habilita
// o encoder de console.
func InitLogger() {
	var err error
	if os.Getenv("APP_ENV") == "development" {
		Log, err = zap.NewDevelopment()
	} else {
		Log, err = zap.NewProduction()
	}
	if err != nil {
		panic("não foi possível inicializar o logger: " + err.Error())
	}
	SLog = Log.Sugar()
}

// SyncLogger descarrega buffers pendentes. Chamar via defer no main.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
