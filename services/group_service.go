package services

import (
	"context"
	"errors"
	"fmt"

	"chadebebe.link/configs/configsdatabase"
	"chadebebe.link/configs/configslog"
	"chadebebe.link/models"
	"chadebebe.link/pkg/invitetoken"
	"chadebebe.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GroupServiceError é o tipo dos erros de negócio do serviço de grupos.
type GroupServiceError string

func (e GroupServiceError) Error() string { return string(e) }

const (
	ErrGroupNotFound        GroupServiceError = "grupo não encontrado"
	ErrGroupNameRequired    GroupServiceError = "nome é obrigatório"
	ErrGroupCreationFailed  GroupServiceError = "não foi possível criar o grupo"
	ErrGroupUpdateFailed    GroupServiceError = "não foi possível atualizar o grupo"
	ErrGroupDeletionFailed  GroupServiceError = "não foi possível excluir o grupo"
	ErrLeaderNotMember      GroupServiceError = "o líder precisa ser membro do grupo"
	ErrGuestNotInGroup      GroupServiceError = "convidado não encontrado neste grupo"
	ErrMemberGuestNotFound  GroupServiceError = "convidado não encontrado"
	ErrMemberGroupNotFound  GroupServiceError = "grupo não encontrado"
)

// GroupInput é o payload normalizado de criação/edição de grupo.
// LeaderID já deve ter sido normalizado na borda ("none" vira nil).
type GroupInput struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	LeaderID    *uint   `json:"leaderId"`
}

// GroupListItem é um grupo da listagem do painel com o total de membros.
type GroupListItem struct {
	models.Group
	MemberCount int64 `json:"memberCount"`
}

// IGroupService expõe o CRUD de grupos e a gestão de membros.
type IGroupService interface {
	CreateGroup(ctx context.Context, input GroupInput) (*models.Group, error)
	GetGroupByID(ctx context.Context, id uint) (*models.Group, error)
	ListGroups(ctx context.Context) ([]GroupListItem, error)
	UpdateGroup(ctx context.Context, id uint, input GroupInput) (*models.Group, error)
	DeleteGroup(ctx context.Context, id uint) error
	AddMember(ctx context.Context, groupID, guestID uint) (*models.Guest, error)
	RemoveMember(ctx context.Context, groupID, guestID uint) error
}

type GroupService struct {
	repo       repositories.IGroupRepository
	guestRepo  repositories.IGuestRepository
	identifier IIdentifierService
	db         *gorm.DB
}

// NewGroupService cria um GroupService com a conexão global.
func NewGroupService() IGroupService {
	return NewGroupServiceTx(configsdatabase.GetDB())
}

// NewGroupServiceTx cria um GroupService numa conexão específica.
func NewGroupServiceTx(db *gorm.DB) IGroupService {
	return &GroupService{
		repo:       repositories.NewGroupRepositoryTx(db),
		guestRepo:  repositories.NewGuestRepositoryTx(db),
		identifier: NewIdentifierServiceTx(db),
		db:         db,
	}
}

// CreateGroup cria um grupo com slug único e token de convite novo.
func (s *GroupService) CreateGroup(ctx context.Context, input GroupInput) (*models.Group, error) {
	if err := validate.Struct(input); err != nil {
		return nil, ErrGroupNameRequired
	}

	groupSlug, err := s.identifier.GenerateUniqueGroupSlug(ctx, input.Name)
	if err != nil {
		if errors.Is(err, ErrIdentifierEmptyName) {
			return nil, ErrGroupNameRequired
		}
		return nil, err
	}

	group := models.Group{
		Name:        input.Name,
		Slug:        groupSlug,
		Description: input.Description,
		InviteLink:  invitetoken.New(),
	}
	if err := s.repo.Create(ctx, &group); err != nil {
		configslog.Log.Error("CreateGroup: erro ao criar grupo", zap.String("name", input.Name), zap.Error(err))
		return nil, ErrGroupCreationFailed
	}
	configslog.SLog.Infof("Grupo criado: ID %d, nome %s, slug %s", group.ID, group.Name, group.Slug)
	return &group, nil
}

func (s *GroupService) GetGroupByID(ctx context.Context, id uint) (*models.Group, error) {
	group, err := s.repo.FindByIDWithMembers(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return group, nil
}

// ListGroups lista os grupos em ordem alfabética com o total de membros.
func (s *GroupService) ListGroups(ctx context.Context) ([]GroupListItem, error) {
	groups, err := s.repo.FindAllOrdered(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]GroupListItem, 0, len(groups))
	for _, g := range groups {
		count, err := s.repo.CountMembers(ctx, g.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, GroupListItem{Group: g, MemberCount: count})
	}
	return items, nil
}

// UpdateGroup atualiza nome, descrição e líder. O líder precisa pertencer ao
// próprio grupo; slug e token de convite não mudam.
func (s *GroupService) UpdateGroup(ctx context.Context, id uint, input GroupInput) (*models.Group, error) {
	if err := validate.Struct(input); err != nil {
		return nil, ErrGroupNameRequired
	}
	group, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}

	if input.LeaderID != nil {
		leader, err := s.guestRepo.FindByID(ctx, *input.LeaderID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrLeaderNotMember
			}
			return nil, err
		}
		if leader.GroupID == nil || *leader.GroupID != group.ID {
			return nil, ErrLeaderNotMember
		}
	}

	group.Name = input.Name
	group.Description = input.Description
	group.LeaderID = input.LeaderID
	if err := s.repo.Save(ctx, group); err != nil {
		configslog.Log.Error("UpdateGroup: erro ao salvar grupo", zap.Uint("id", id), zap.Error(err))
		return nil, ErrGroupUpdateFailed
	}
	return group, nil
}

// DeleteGroup exclui o grupo em três passos na mesma transação: remove a
// confirmação do grupo, desvincula todos os membros e apaga o registro.
func (s *GroupService) DeleteGroup(ctx context.Context, id uint) error {
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		groupRepoTx := repositories.NewGroupRepositoryTx(tx)
		confirmationRepoTx := repositories.NewConfirmationRepositoryTx(tx)

		group, err := groupRepoTx.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrGroupNotFound
			}
			return err
		}

		if err := confirmationRepoTx.DeleteByGroupID(ctx, group.ID); err != nil {
			return fmt.Errorf("%w: %v", ErrGroupDeletionFailed, err)
		}
		if err := groupRepoTx.DetachAllMembers(ctx, group.ID); err != nil {
			return fmt.Errorf("%w: %v", ErrGroupDeletionFailed, err)
		}
		if err := groupRepoTx.Delete(ctx, group); err != nil {
			return fmt.Errorf("%w: %v", ErrGroupDeletionFailed, err)
		}
		return nil
	})
	if txErr != nil {
		if !errors.Is(txErr, ErrGroupNotFound) {
			configslog.Log.Error("DeleteGroup: transação falhou", zap.Uint("id", id), zap.Error(txErr))
		}
		return txErr
	}
	configslog.SLog.Infof("Grupo excluído: ID %d", id)
	return nil
}

// AddMember vincula um convidado existente ao grupo.
func (s *GroupService) AddMember(ctx context.Context, groupID, guestID uint) (*models.Guest, error) {
	if _, err := s.repo.FindByID(ctx, groupID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMemberGroupNotFound
		}
		return nil, err
	}
	guest, err := s.guestRepo.FindByID(ctx, guestID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMemberGuestNotFound
		}
		return nil, err
	}
	guest.GroupID = &groupID
	if err := s.guestRepo.Save(ctx, guest); err != nil {
		configslog.Log.Error("AddMember: erro ao vincular convidado",
			zap.Uint("groupID", groupID), zap.Uint("guestID", guestID), zap.Error(err))
		return nil, ErrGroupUpdateFailed
	}
	return guest, nil
}

// RemoveMember desvincula um convidado do grupo. Se ele era o líder, a
// liderança é limpa junto, preservando a invariante líder-é-membro.
func (s *GroupService) RemoveMember(ctx context.Context, groupID, guestID uint) error {
	guest, err := s.guestRepo.FindByID(ctx, guestID)
	if err != nil || guest.GroupID == nil || *guest.GroupID != groupID {
		return ErrGuestNotInGroup
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		guestRepoTx := repositories.NewGuestRepositoryTx(tx)
		groupRepoTx := repositories.NewGroupRepositoryTx(tx)

		group, err := groupRepoTx.FindByID(ctx, groupID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrGuestNotInGroup
			}
			return err
		}
		if group.LeaderID != nil && *group.LeaderID == guestID {
			if err := groupRepoTx.SetLeader(ctx, groupID, nil); err != nil {
				return err
			}
		}
		guest.GroupID = nil
		return guestRepoTx.Save(ctx, guest)
	})
}

var _ IGroupService = (*GroupService)(nil)
