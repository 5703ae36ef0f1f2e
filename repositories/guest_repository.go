package repositories

import (
	"context"
	"errors"
	"strings"

	"chadebebe.link/configs/configsdatabase"
	"chadebebe.link/configs/configslog"
	"chadebebe.link/models"
	"chadebebe.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IGuestRepository expõe as operações de banco sobre convidados.
type IGuestRepository interface {
	Create(ctx context.Context, guest *models.Guest) error
	FindByID(ctx context.Context, id uint) (*models.Guest, error)
	FindByIDWithRelations(ctx context.Context, id uint) (*models.Guest, error)
	FindBySlug(ctx context.Context, slug string) (*models.Guest, error)
	FindByInviteLink(ctx context.Context, token string) (*models.Guest, error)
	FindAllByGroupID(ctx context.Context, groupID uint) ([]models.Guest, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Guest, int64, error)
	FindAllWithConfirmation(ctx context.Context) ([]models.Guest, error)
	FindUnconfirmed(ctx context.Context) ([]models.Guest, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Save(ctx context.Context, guest *models.Guest) error
	Delete(ctx context.Context, guest *models.Guest) error
	CountAll(ctx context.Context) (int64, error)
}

type GuestRepository struct {
	db   *gorm.DB
	base *BaseRepository[models.Guest]
}

// NewGuestRepository cria um GuestRepository usando a conexão global.
func NewGuestRepository() IGuestRepository {
	return NewGuestRepositoryTx(configsdatabase.GetDB())
}

// NewGuestRepositoryTx cria um GuestRepository por cima de uma transação.
func NewGuestRepositoryTx(tx *gorm.DB) IGuestRepository {
	base := NewBaseRepository[models.Guest](tx)
	base.SetAllowedSortColumns([]string{"id", "name", "created_at"})
	return &GuestRepository{db: tx, base: base}
}

func (r *GuestRepository) Create(ctx context.Context, guest *models.Guest) error {
	if guest == nil || guest.Name == "" || guest.Slug == "" {
		return errors.New("convidado inválido para criação")
	}
	return r.base.Create(ctx, guest)
}

func (r *GuestRepository) FindByID(ctx context.Context, id uint) (*models.Guest, error) {
	if id == 0 {
		return nil, errors.New("ID de convidado inválido")
	}
	return r.base.FindByID(ctx, id)
}

// FindByIDWithRelations carrega o convidado com confirmação e grupo.
func (r *GuestRepository) FindByIDWithRelations(ctx context.Context, id uint) (*models.Guest, error) {
	if id == 0 {
		return nil, errors.New("ID de convidado inválido")
	}
	var guest models.Guest
	err := r.db.WithContext(ctx).
		Preload("Confirmation").
		Preload("Group").
		First(&guest, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("GuestRepository.FindByIDWithRelations: erro de banco", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &guest, nil
}

func (r *GuestRepository) findOneEager(ctx context.Context, column, value string) (*models.Guest, error) {
	var guest models.Guest
	err := r.db.WithContext(ctx).
		Preload("Confirmation").
		Preload("Group").
		Preload("Group.Guests").
		Preload("Group.Leader").
		Preload("LeadingGroups").
		Where(column+" = ?", value).
		First(&guest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("GuestRepository: erro de banco na busca por identificador",
			zap.String("coluna", column), zap.String("valor", value), zap.Error(err))
		return nil, err
	}
	return &guest, nil
}

// FindBySlug busca pelo slug com confirmação, grupo e grupos liderados.
func (r *GuestRepository) FindBySlug(ctx context.Context, slugValue string) (*models.Guest, error) {
	return r.findOneEager(ctx, "slug", slugValue)
}

// FindByInviteLink busca pelo token legado com as mesmas relações.
func (r *GuestRepository) FindByInviteLink(ctx context.Context, token string) (*models.Guest, error) {
	return r.findOneEager(ctx, "invite_link", token)
}

// FindAllByGroupID retorna os membros de um grupo com suas confirmações.
func (r *GuestRepository) FindAllByGroupID(ctx context.Context, groupID uint) ([]models.Guest, error) {
	if groupID == 0 {
		return nil, errors.New("ID de grupo inválido")
	}
	var guests []models.Guest
	err := r.db.WithContext(ctx).
		Preload("Confirmation").
		Where("group_id = ?", groupID).
		Find(&guests).Error
	if err != nil {
		configslog.Log.Error("GuestRepository.FindAllByGroupID: erro de banco", zap.Uint("groupID", groupID), zap.Error(err))
		return nil, err
	}
	return guests, nil
}

// FindAllPaginated lista convidados em ordem alfabética com grupo e
// confirmação, com filtro opcional por nome.
func (r *GuestRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Guest, int64, error) {
	var guests []models.Guest
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&models.Guest{})
	if params.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(params.Name)+"%")
	}

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("GuestRepository.FindAllPaginated: erro no count", zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return guests, 0, nil
	}

	sortBy := params.SortBy
	if !r.base.SortColumnAllowed(sortBy) {
		sortBy = "name"
	}
	err := query.
		Preload("Group").
		Preload("Confirmation").
		Order(sortBy + " " + params.OrderBy).
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&guests).Error
	if err != nil {
		configslog.Log.Error("GuestRepository.FindAllPaginated: erro de banco", zap.Error(err))
		return nil, totalCount, err
	}
	return guests, totalCount, nil
}

// FindAllWithConfirmation retorna todos os convidados com confirmação
// pré-carregada (usado no resumo de presentes).
func (r *GuestRepository) FindAllWithConfirmation(ctx context.Context) ([]models.Guest, error) {
	var guests []models.Guest
	err := r.db.WithContext(ctx).Preload("Confirmation").Find(&guests).Error
	if err != nil {
		configslog.Log.Error("GuestRepository.FindAllWithConfirmation: erro de banco", zap.Error(err))
		return nil, err
	}
	return guests, nil
}

// FindUnconfirmed retorna convidados sem nenhum registro de confirmação.
func (r *GuestRepository) FindUnconfirmed(ctx context.Context) ([]models.Guest, error) {
	var guests []models.Guest
	err := r.db.WithContext(ctx).
		Joins("LEFT JOIN confirmations ON confirmations.guest_id = guests.id").
		Where("confirmations.id IS NULL").
		Preload("Group").
		Order("guests.name asc").
		Find(&guests).Error
	if err != nil {
		configslog.Log.Error("GuestRepository.FindUnconfirmed: erro de banco", zap.Error(err))
		return nil, err
	}
	return guests, nil
}

// SlugExists informa se já há convidado com o slug dado.
func (r *GuestRepository) SlugExists(ctx context.Context, slugValue string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Guest{}).Where("slug = ?", slugValue).Count(&count).Error
	if err != nil {
		configslog.Log.Error("GuestRepository.SlugExists: erro de banco", zap.String("slug", slugValue), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

func (r *GuestRepository) Save(ctx context.Context, guest *models.Guest) error {
	if guest == nil || guest.ID == 0 {
		return errors.New("convidado inválido para atualização")
	}
	return r.base.Save(ctx, guest)
}

func (r *GuestRepository) Delete(ctx context.Context, guest *models.Guest) error {
	if guest == nil || guest.ID == 0 {
		return errors.New("convidado inválido para exclusão")
	}
	return r.base.Delete(ctx, guest)
}

func (r *GuestRepository) CountAll(ctx context.Context) (int64, error) {
	return r.base.Count(ctx)
}

var _ IGuestRepository = (*GuestRepository)(nil)
