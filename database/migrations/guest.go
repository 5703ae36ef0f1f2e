package migrations

import (
	"chadebebe.link/configs/configslog"
	"chadebebe.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateGuestsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrando tabela guests...")
	err := db.AutoMigrate(&models.Guest{})
	if err != nil {
		configslog.Log.Error("Falha ao migrar a tabela guests", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Tabela guests migrada com sucesso")
	return nil
}
