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

// IGroupRepository expõe as operações de banco sobre grupos.
type IGroupRepository interface {
	Create(ctx context.Context, group *models.Group) error
	FindByID(ctx context.Context, id uint) (*models.Group, error)
	FindByIDWithMembers(ctx context.Context, id uint) (*models.Group, error)
	FindByName(ctx context.Context, name string) (*models.Group, error)
	FindBySlug(ctx context.Context, slug string) (*models.Group, error)
	FindByInviteLink(ctx context.Context, token string) (*models.Group, error)
	FindAllOrdered(ctx context.Context) ([]models.Group, error)
	CountMembers(ctx context.Context, groupID uint) (int64, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Save(ctx context.Context, group *models.Group) error
	SetLeader(ctx context.Context, groupID uint, leaderID *uint) error
	DetachAllMembers(ctx context.Context, groupID uint) error
	Delete(ctx context.Context, group *models.Group) error
	CountAll(ctx context.Context) (int64, error)
}

type GroupRepository struct {
	db   *gorm.DB
	base *BaseRepository[models.Group]
}

// NewGroupRepository cria um GroupRepository usando a conexão global.
func NewGroupRepository() IGroupRepository {
	return NewGroupRepositoryTx(configsdatabase.GetDB())
}

// NewGroupRepositoryTx cria um GroupRepository por cima de uma transação.
func NewGroupRepositoryTx(tx *gorm.DB) IGroupRepository {
	base := NewBaseRepository[models.Group](tx)
	base.SetAllowedSortColumns([]string{"id", "name", "created_at"})
	return &GroupRepository{db: tx, base: base}
}

func (r *GroupRepository) Create(ctx context.Context, group *models.Group) error {
	if group == nil || group.Name == "" || group.Slug == "" {
		return errors.New("grupo inválido para criação")
	}
	return r.base.Create(ctx, group)
}

func (r *GroupRepository) FindByID(ctx context.Context, id uint) (*models.Group, error) {
	if id == 0 {
		return nil, errors.New("ID de grupo inválido")
	}
	return r.base.FindByID(ctx, id)
}

// FindByIDWithMembers carrega o grupo com membros, líder e confirmação.
func (r *GroupRepository) FindByIDWithMembers(ctx context.Context, id uint) (*models.Group, error) {
	if id == 0 {
		return nil, errors.New("ID de grupo inválido")
	}
	var group models.Group
	err := r.db.WithContext(ctx).
		Preload("Guests").
		Preload("Guests.Confirmation").
		Preload("Leader").
		Preload("Confirmation").
		First(&group, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("GroupRepository.FindByIDWithMembers: erro de banco", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &group, nil
}

// FindByName busca um grupo pelo nome exato (usado pela importação).
func (r *GroupRepository) FindByName(ctx context.Context, name string) (*models.Group, error) {
	var group models.Group
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("GroupRepository.FindByName: erro de banco", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepository) findOneEager(ctx context.Context, column, value string) (*models.Group, error) {
	var group models.Group
	err := r.db.WithContext(ctx).
		Preload("Guests").
		Preload("Guests.Confirmation").
		Preload("Leader").
		Preload("Confirmation").
		Where(column+" = ?", value).
		First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("GroupRepository: erro de banco na busca por identificador",
			zap.String("coluna", column), zap.String("valor", value), zap.Error(err))
		return nil, err
	}
	return &group, nil
}

// FindBySlug busca pelo slug com membros, líder e confirmação.
func (r *GroupRepository) FindBySlug(ctx context.Context, slugValue string) (*models.Group, error) {
	return r.findOneEager(ctx, "slug", slugValue)
}

// FindByInviteLink busca pelo token legado com as mesmas relações.
func (r *GroupRepository) FindByInviteLink(ctx context.Context, token string) (*models.Group, error) {
	return r.findOneEager(ctx, "invite_link", token)
}

// FindAllOrdered lista todos os grupos em ordem alfabética, com líder e
// confirmação pré-carregados.
func (r *GroupRepository) FindAllOrdered(ctx context.Context) ([]models.Group, error) {
	var groups []models.Group
	err := r.db.WithContext(ctx).
		Preload("Leader").
		Preload("Confirmation").
		Order("name asc").
		Find(&groups).Error
	if err != nil {
		configslog.Log.Error("GroupRepository.FindAllOrdered: erro de banco", zap.Error(err))
		return nil, err
	}
	return groups, nil
}

// CountMembers retorna o total de membros de um grupo.
func (r *GroupRepository) CountMembers(ctx context.Context, groupID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Guest{}).Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}

// SlugExists informa se já há grupo com o slug dado.
func (r *GroupRepository) SlugExists(ctx context.Context, slugValue string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Group{}).Where("slug = ?", slugValue).Count(&count).Error
	if err != nil {
		configslog.Log.Error("GroupRepository.SlugExists: erro de banco", zap.String("slug", slugValue), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

func (r *GroupRepository) Save(ctx context.Context, group *models.Group) error {
	if group == nil || group.ID == 0 {
		return errors.New("grupo inválido para atualização")
	}
	return r.base.Save(ctx, group)
}

// SetLeader grava apenas a coluna leader_id, sem tocar nos demais campos.
func (r *GroupRepository) SetLeader(ctx context.Context, groupID uint, leaderID *uint) error {
	if groupID == 0 {
		return errors.New("ID de grupo inválido")
	}
	result := r.db.WithContext(ctx).Model(&models.Group{}).Where("id = ?", groupID).Update("leader_id", leaderID)
	if result.Error != nil {
		configslog.Log.Error("GroupRepository.SetLeader: erro de banco", zap.Uint("groupID", groupID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DetachAllMembers remove o vínculo de todos os membros com o grupo.
func (r *GroupRepository) DetachAllMembers(ctx context.Context, groupID uint) error {
	if groupID == 0 {
		return errors.New("ID de grupo inválido")
	}
	err := r.db.WithContext(ctx).Model(&models.Guest{}).Where("group_id = ?", groupID).Update("group_id", nil).Error
	if err != nil {
		configslog.Log.Error("GroupRepository.DetachAllMembers: erro de banco", zap.Uint("groupID", groupID), zap.Error(err))
	}
	return err
}

func (r *GroupRepository) Delete(ctx context.Context, group *models.Group) error {
	if group == nil || group.ID == 0 {
		return errors.New("grupo inválido para exclusão")
	}
	return r.base.Delete(ctx, group)
}

func (r *GroupRepository) CountAll(ctx context.Context) (int64, error) {
	return r.base.Count(ctx)
}

var _ IGroupRepository = (*GroupRepository)(nil)
