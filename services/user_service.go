package services

import (
	"context"
	"errors"

	"chadebebe.link/configs/configslog"
	"chadebebe.link/models"
	"chadebebe.link/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserServiceError é o tipo dos erros de negócio do serviço de usuários.
type UserServiceError string

func (e UserServiceError) Error() string { return string(e) }

const (
	ErrUserNotFound       UserServiceError = "usuário não encontrado"
	ErrInvalidCredentials UserServiceError = "e-mail ou senha inválidos"
)

// IUserService expõe autenticação e consulta de usuários do painel.
type IUserService interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

type UserService struct {
	repo repositories.IUserRepository
}

// NewUserService cria um UserService com a conexão global.
func NewUserService() IUserService {
	return &UserService{repo: repositories.NewUserRepository()}
}

// NewUserServiceTx cria um UserService por cima de uma conexão específica.
func NewUserServiceTx(db *gorm.DB) IUserService {
	return &UserService{repo: repositories.NewUserRepositoryTx(db)}
}

// Authenticate valida e-mail e senha contra o hash bcrypt armazenado.
// Credenciais inválidas e usuário inexistente retornam o mesmo erro.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		configslog.SLog.Warnf("Tentativa de login com senha incorreta: %s", email)
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		configslog.Log.Error("UserService.GetUserByID: erro de banco", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return user, nil
}

var _ IUserService = (*UserService)(nil)
