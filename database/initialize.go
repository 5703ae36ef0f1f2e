package database

import (
	"chadebebe.link/configs/configslog"
	"chadebebe.link/database/migrations"
	"chadebebe.link/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Nenhuma flag de migrate ou seed informada, nada a fazer.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Não foi possível iniciar a transação do banco", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Inicialização do banco falhou (panic)", zap.Any("panic_info", r))
		} else if err := tx.Error; err != nil && err != gorm.ErrInvalidTransaction {
			configslog.SLog.Warn("Erro durante a inicialização, revertendo a transação.", zap.Error(err))
			rbErr := tx.Rollback().Error
			if rbErr != nil && rbErr != gorm.ErrInvalidTransaction {
				configslog.Log.Error("Erro adicional durante o rollback", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Iniciando a preparação do banco de dados...")

	if migrate {
		configslog.SLog.Info("Executando migrações...")
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migração falhou", zap.Error(err))
			return
		}
		configslog.SLog.Info("Migrações concluídas.")
	} else {
		configslog.SLog.Info("Flag de migrate não informada, etapa de migração ignorada.")
	}

	if seed {
		configslog.SLog.Info("Executando seeders...")
		if err := CheckAndRunSeeders(tx); err != nil {
			configslog.Log.Error("Seeding falhou", zap.Error(err))
			return
		}
		configslog.SLog.Info("Seeders concluídos.")
	} else {
		configslog.SLog.Info("Flag de seed não informada, etapa de seed ignorada.")
	}

	configslog.SLog.Info("Efetuando commit da transação...")
	if err := tx.Commit().Error; err != nil {
		tx.Error = err
		configslog.Log.Error("Commit falhou", zap.Error(err))
		return
	}

	configslog.SLog.Info("Banco de dados preparado com sucesso")
}

// RunMigrationsInOrder roda as migrações respeitando as dependências de FK:
// users, groups, guests e por último confirmations.
func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info(" -> Migrando users...")
	if err := migrations.MigrateUsersTable(db); err != nil {
		configslog.Log.Error("Migração da tabela users falhou", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> Migrando groups...")
	if err := migrations.MigrateGroupsTable(db); err != nil {
		configslog.Log.Error("Migração da tabela groups falhou", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> Migrando guests...")
	if err := migrations.MigrateGuestsTable(db); err != nil {
		configslog.Log.Error("Migração da tabela guests falhou", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> Migrando confirmations...")
	if err := migrations.MigrateConfirmationsTable(db); err != nil {
		configslog.Log.Error("Migração da tabela confirmations falhou", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Todas as migrações foram executadas com sucesso.")
	return nil
}

func CheckAndRunSeeders(db *gorm.DB) error {
	configslog.SLog.Info("Verificando/criando usuário administrador...")
	if err := seeders.SeedAdminUser(db); err != nil {
		configslog.Log.Error("Seed do usuário administrador falhou", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Todos os seeders foram verificados/executados com sucesso.")
	return nil
}
