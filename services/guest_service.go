package services

import (
	"context"
	"errors"
	"fmt"

	"chadebebe.link/configs/configsdatabase"
	"chadebebe.link/configs/configslog"
	"chadebebe.link/models"
	"chadebebe.link/pkg/invitetoken"
	"chadebebe.link/pkg/queryparams"
	"chadebebe.link/repositories"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// validate é compartilhado pelos serviços para validar structs de entrada.
var validate = validator.New()

// GuestServiceError é o tipo dos erros de negócio do serviço de convidados.
type GuestServiceError string

func (e GuestServiceError) Error() string { return string(e) }

const (
	ErrGuestNotFound       GuestServiceError = "convidado não encontrado"
	ErrGuestNameRequired   GuestServiceError = "nome é obrigatório"
	ErrGuestCreationFailed GuestServiceError = "não foi possível criar o convidado"
	ErrGuestUpdateFailed   GuestServiceError = "não foi possível atualizar o convidado"
	ErrGuestDeletionFailed GuestServiceError = "não foi possível excluir o convidado"
)

// GuestInput é o payload normalizado de criação/edição de convidado.
// Sentinelas de formulário ("nenhum") já devem ter virado nil na borda HTTP.
type GuestInput struct {
	Name         string  `json:"name" validate:"required"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	GroupID      *uint   `json:"groupId"`
	GiftSize     *string `json:"giftSize"`
	GiftQuantity *int    `json:"giftQuantity"`
	IsChild      bool    `json:"isChild"`
}

// IGuestService expõe o CRUD de convidados.
type IGuestService interface {
	CreateGuest(ctx context.Context, input GuestInput) (*models.Guest, error)
	GetGuestByID(ctx context.Context, id uint) (*models.Guest, error)
	ListGuests(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateGuest(ctx context.Context, id uint, input GuestInput) (*models.Guest, error)
	DeleteGuest(ctx context.Context, id uint) error
}

type GuestService struct {
	repo       repositories.IGuestRepository
	identifier IIdentifierService
	db         *gorm.DB
}

// NewGuestService cria um GuestService com a conexão global.
func NewGuestService() IGuestService {
	return NewGuestServiceTx(configsdatabase.GetDB())
}

// NewGuestServiceTx cria um GuestService numa conexão específica.
func NewGuestServiceTx(db *gorm.DB) IGuestService {
	return &GuestService{
		repo:       repositories.NewGuestRepositoryTx(db),
		identifier: NewIdentifierServiceTx(db),
		db:         db,
	}
}

// CreateGuest cria um convidado com slug único e token de convite novo.
func (s *GuestService) CreateGuest(ctx context.Context, input GuestInput) (*models.Guest, error) {
	if err := validate.Struct(input); err != nil {
		return nil, ErrGuestNameRequired
	}

	guestSlug, err := s.identifier.GenerateUniqueGuestSlug(ctx, input.Name)
	if err != nil {
		if errors.Is(err, ErrIdentifierEmptyName) {
			return nil, ErrGuestNameRequired
		}
		return nil, err
	}

	quantity := input.GiftQuantity
	if quantity == nil && input.GiftSize != nil {
		one := 1
		quantity = &one
	}

	guest := models.Guest{
		Name:         input.Name,
		Slug:         guestSlug,
		Email:        input.Email,
		Phone:        input.Phone,
		GroupID:      input.GroupID,
		GiftSize:     input.GiftSize,
		GiftQuantity: quantity,
		IsChild:      input.IsChild,
		InviteLink:   invitetoken.New(),
	}
	if err := s.repo.Create(ctx, &guest); err != nil {
		configslog.Log.Error("CreateGuest: erro ao criar convidado", zap.String("name", input.Name), zap.Error(err))
		return nil, ErrGuestCreationFailed
	}
	configslog.SLog.Infof("Convidado criado: ID %d, nome %s, slug %s", guest.ID, guest.Name, guest.Slug)
	return &guest, nil
}

func (s *GuestService) GetGuestByID(ctx context.Context, id uint) (*models.Guest, error) {
	guest, err := s.repo.FindByIDWithRelations(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}
	return guest, nil
}

// ListGuests lista convidados paginados em ordem alfabética.
func (s *GuestService) ListGuests(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	guests, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: guests,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

// UpdateGuest atualiza os dados do convidado. Slug e token de convite são
// estáveis: não mudam quando o nome muda, para não quebrar links já enviados.
func (s *GuestService) UpdateGuest(ctx context.Context, id uint, input GuestInput) (*models.Guest, error) {
	if err := validate.Struct(input); err != nil {
		return nil, ErrGuestNameRequired
	}
	guest, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}

	guest.Name = input.Name
	guest.Email = input.Email
	guest.Phone = input.Phone
	guest.GroupID = input.GroupID
	guest.GiftSize = input.GiftSize
	guest.GiftQuantity = input.GiftQuantity
	guest.IsChild = input.IsChild
	if guest.GiftQuantity == nil && guest.GiftSize != nil {
		one := 1
		guest.GiftQuantity = &one
	}

	if err := s.repo.Save(ctx, guest); err != nil {
		configslog.Log.Error("UpdateGuest: erro ao salvar convidado", zap.Uint("id", id), zap.Error(err))
		return nil, ErrGuestUpdateFailed
	}
	return guest, nil
}

// DeleteGuest exclui o convidado e, antes, sua confirmação individual.
// Grupos liderados por ele perdem a referência de líder.
func (s *GuestService) DeleteGuest(ctx context.Context, id uint) error {
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		guestRepoTx := repositories.NewGuestRepositoryTx(tx)
		confirmationRepoTx := repositories.NewConfirmationRepositoryTx(tx)

		guest, err := guestRepoTx.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrGuestNotFound
			}
			return err
		}

		if err := confirmationRepoTx.DeleteByGuestID(ctx, guest.ID); err != nil {
			return fmt.Errorf("%w: %v", ErrGuestDeletionFailed, err)
		}
		if err := tx.WithContext(ctx).Model(&models.Group{}).
			Where("leader_id = ?", guest.ID).
			Update("leader_id", nil).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrGuestDeletionFailed, err)
		}
		if err := guestRepoTx.Delete(ctx, guest); err != nil {
			return fmt.Errorf("%w: %v", ErrGuestDeletionFailed, err)
		}
		return nil
	})
	if txErr != nil {
		if !errors.Is(txErr, ErrGuestNotFound) {
			configslog.Log.Error("DeleteGuest: transação falhou", zap.Uint("id", id), zap.Error(txErr))
		}
		return txErr
	}
	configslog.SLog.Infof("Convidado excluído: ID %d", id)
	return nil
}

var _ IGuestService = (*GuestService)(nil)
