package migrations

import (
	"chadebebe.link/configs/configslog"
	"chadebebe.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateGroupsTable cria/atualiza a tabela groups. A FK leader_id para
// guests só é resolvida depois que a tabela guests existir, por isso o
// AutoMigrate de Group roda antes e o de Guest completa a relação.
func MigrateGroupsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrando tabela groups...")
	err := db.AutoMigrate(&models.Group{})
	if err != nil {
		configslog.Log.Error("Falha ao migrar a tabela groups", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Tabela groups migrada com sucesso")
	return nil
}
