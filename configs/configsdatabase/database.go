package configsdatabase

import (
	"time"

	"chadebebe.link/configs"
	"chadebebe.link/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB abre a conexão com o Postgres e configura o pool.
func InitDB() {
	cfg := configs.GetAppConfig()

	var err error
	db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		configslog.Log.Fatal("Não foi possível conectar ao banco de dados", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Fatal("Não foi possível obter o pool de conexões", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	configslog.SLog.Info("Conexão com o banco de dados estabelecida")
}

// GetDB retorna a conexão global. InitDB deve ter sido chamado antes.
func GetDB() *gorm.DB {
	if db == nil {
		configslog.Log.Fatal("GetDB chamado antes de InitDB")
	}
	return db
}

// CloseDB encerra o pool de conexões.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Erro ao obter pool para encerramento", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Erro ao encerrar conexão com o banco", zap.Error(err))
	}
}
