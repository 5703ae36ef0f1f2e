package migrations

import (
	"chadebebe.link/configs/configslog"
	"chadebebe.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateConfirmationsTable cria/atualiza a tabela confirmations.
// As tabelas guests e groups já devem existir (FKs guest_id e group_id).
func MigrateConfirmationsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrando tabela confirmations...")
	err := db.AutoMigrate(&models.Confirmation{})
	if err != nil {
		configslog.Log.Error("Falha ao migrar a tabela confirmations", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Tabela confirmations migrada com sucesso")
	return nil
}
