package repositories

import (
	"context"
	"errors"

	"chadebebe.link/configs/configsdatabase"
	"chadebebe.link/configs/configslog"
	"chadebebe.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IConfirmationRepository expõe as operações de banco sobre confirmações.
type IConfirmationRepository interface {
	Create(ctx context.Context, confirmation *models.Confirmation) error
	Save(ctx context.Context, confirmation *models.Confirmation) error
	FindByGuestID(ctx context.Context, guestID uint) (*models.Confirmation, error)
	FindByGroupID(ctx context.Context, groupID uint) (*models.Confirmation, error)
	FindAllOrdered(ctx context.Context) ([]models.Confirmation, error)
	DeleteByGuestID(ctx context.Context, guestID uint) error
	DeleteByGroupID(ctx context.Context, groupID uint) error
	CountConfirmedGuests(ctx context.Context) (int64, error)
}

type ConfirmationRepository struct {
	db   *gorm.DB
	base *BaseRepository[models.Confirmation]
}

// NewConfirmationRepository cria um ConfirmationRepository com a conexão global.
func NewConfirmationRepository() IConfirmationRepository {
	return NewConfirmationRepositoryTx(configsdatabase.GetDB())
}

// NewConfirmationRepositoryTx cria um ConfirmationRepository numa transação.
func NewConfirmationRepositoryTx(tx *gorm.DB) IConfirmationRepository {
	return &ConfirmationRepository{db: tx, base: NewBaseRepository[models.Confirmation](tx)}
}

func (r *ConfirmationRepository) Create(ctx context.Context, confirmation *models.Confirmation) error {
	if confirmation == nil {
		return errors.New("confirmação inválida para criação")
	}
	// Exatamente um dono: convidado OU grupo.
	if (confirmation.GuestID == nil) == (confirmation.GroupID == nil) {
		return errors.New("confirmação deve pertencer a um convidado ou a um grupo")
	}
	return r.base.Create(ctx, confirmation)
}

func (r *ConfirmationRepository) Save(ctx context.Context, confirmation *models.Confirmation) error {
	if confirmation == nil || confirmation.ID == 0 {
		return errors.New("confirmação inválida para atualização")
	}
	return r.base.Save(ctx, confirmation)
}

func (r *ConfirmationRepository) findOneBy(ctx context.Context, column string, id uint) (*models.Confirmation, error) {
	if id == 0 {
		return nil, errors.New("ID inválido")
	}
	var confirmation models.Confirmation
	err := r.db.WithContext(ctx).Where(column+" = ?", id).First(&confirmation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ConfirmationRepository: erro de banco na busca",
			zap.String("coluna", column), zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &confirmation, nil
}

func (r *ConfirmationRepository) FindByGuestID(ctx context.Context, guestID uint) (*models.Confirmation, error) {
	return r.findOneBy(ctx, "guest_id", guestID)
}

func (r *ConfirmationRepository) FindByGroupID(ctx context.Context, groupID uint) (*models.Confirmation, error) {
	return r.findOneBy(ctx, "group_id", groupID)
}

// FindAllOrdered lista as confirmações para o painel: confirmadas primeiro,
// mais recentes primeiro, com convidado (e seu grupo) e grupo (e seus
// membros) pré-carregados.
func (r *ConfirmationRepository) FindAllOrdered(ctx context.Context) ([]models.Confirmation, error) {
	var confirmations []models.Confirmation
	err := r.db.WithContext(ctx).
		Preload("Guest").
		Preload("Guest.Group").
		Preload("Group").
		Preload("Group.Guests").
		Order("confirmed desc").
		Order("confirmation_date desc").
		Find(&confirmations).Error
	if err != nil {
		configslog.Log.Error("ConfirmationRepository.FindAllOrdered: erro de banco", zap.Error(err))
		return nil, err
	}
	return confirmations, nil
}

// DeleteByGuestID remove a confirmação do convidado, se existir.
func (r *ConfirmationRepository) DeleteByGuestID(ctx context.Context, guestID uint) error {
	if guestID == 0 {
		return errors.New("ID de convidado inválido")
	}
	return r.db.WithContext(ctx).Where("guest_id = ?", guestID).Delete(&models.Confirmation{}).Error
}

// DeleteByGroupID remove a confirmação do grupo, se existir.
func (r *ConfirmationRepository) DeleteByGroupID(ctx context.Context, groupID uint) error {
	if groupID == 0 {
		return errors.New("ID de grupo inválido")
	}
	return r.db.WithContext(ctx).Where("group_id = ?", groupID).Delete(&models.Confirmation{}).Error
}

// CountConfirmedGuests conta confirmações individuais com presença confirmada.
func (r *ConfirmationRepository) CountConfirmedGuests(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Confirmation{}).
		Where("guest_id IS NOT NULL AND confirmed = ?", true).
		Count(&count).Error
	return count, err
}

var _ IConfirmationRepository = (*ConfirmationRepository)(nil)
