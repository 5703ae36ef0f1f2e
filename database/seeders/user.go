package seeders

import (
	"errors"
	"os"

	"chadebebe.link/configs/configslog"
	"chadebebe.link/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	defaultAdminName     = "Administrador"
	defaultAdminEmail    = "admin@chadebebe.link"
	defaultAdminPassword = "admin123"
)

// SeedAdminUser garante que exista um usuário administrador. Email e senha
// vêm de ADMIN_EMAIL/ADMIN_PASSWORD; em produção os padrões devem ser trocados.
func SeedAdminUser(db *gorm.DB) error {
	email := envOrDefault("ADMIN_EMAIL", defaultAdminEmail)
	password := envOrDefault("ADMIN_PASSWORD", defaultAdminPassword)

	var existing models.User
	result := db.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		configslog.SLog.Infof("Usuário administrador '%s' já existe, seed ignorado.", email)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Erro ao verificar usuário administrador", zap.Error(result.Error))
		return result.Error
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Falha ao gerar hash da senha do administrador", zap.Error(err))
		return err
	}

	admin := models.User{
		Name:     defaultAdminName,
		Email:    email,
		Password: string(hashed),
		Role:     "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		configslog.Log.Error("Falha ao criar usuário administrador", zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Usuário administrador '%s' criado com sucesso (ID: %d).", email, admin.ID)
	return nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
