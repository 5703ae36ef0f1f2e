package migrations

import (
	"chadebebe.link/configs/configslog"
	"chadebebe.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateUsersTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrando tabela users...")
	err := db.AutoMigrate(&models.User{})
	if err != nil {
		configslog.Log.Error("Falha ao migrar a tabela users", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Tabela users migrada com sucesso")
	return nil
}
