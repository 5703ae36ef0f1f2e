package services

import (
	"context"
	"errors"
	"time"

	"chadebebe.link/configs/configsdatabase"
	"chadebebe.link/configs/configslog"
	"chadebebe.link/models"
	"chadebebe.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ConfirmationServiceError é o tipo dos erros do motor de confirmações.
type ConfirmationServiceError string

func (e ConfirmationServiceError) Error() string { return string(e) }

const (
	ErrConfirmationGuestNotFound ConfirmationServiceError = "convidado não encontrado"
	ErrConfirmationGroupNotFound ConfirmationServiceError = "grupo não encontrado"
	ErrConfirmationSaveFailed    ConfirmationServiceError = "não foi possível registrar a confirmação"
)

// ConfirmationInput é a resposta de RSVP enviada pelo formulário público.
type ConfirmationInput struct {
	Confirmed      bool    `json:"confirmed"`
	NumberOfPeople *int    `json:"numberOfPeople"`
	Notes          *string `json:"notes"`
}

// GroupConfirmationInput acrescenta a lista opcional de membros confirmados,
// permitindo que o líder confirme só parte do grupo.
type GroupConfirmationInput struct {
	ConfirmationInput
	ConfirmedMembers []uint `json:"confirmedMembers"`
}

// ConfirmationResult indica o que foi tocado pela operação.
type ConfirmationResult struct {
	GroupConfirmation bool                 `json:"groupConfirmation"`
	Confirmation      *models.Confirmation `json:"confirmation,omitempty"`
}

// ConfirmationListing é a visão do painel: todas as confirmações mais os
// convidados que nunca responderam.
type ConfirmationListing struct {
	Confirmations []models.Confirmation `json:"confirmations"`
	Unconfirmed   []models.Guest        `json:"unconfirmed"`
}

// IConfirmationService aplica decisões de RSVP a convidados e grupos.
type IConfirmationService interface {
	ConfirmGuest(ctx context.Context, guestID uint, input ConfirmationInput) (*ConfirmationResult, error)
	ConfirmGroup(ctx context.Context, groupID uint, input GroupConfirmationInput) (*ConfirmationResult, error)
	ListConfirmations(ctx context.Context) (*ConfirmationListing, error)
}

type ConfirmationService struct {
	repo      repositories.IConfirmationRepository
	guestRepo repositories.IGuestRepository
	groupRepo repositories.IGroupRepository
}

// NewConfirmationService cria um ConfirmationService com a conexão global.
func NewConfirmationService() IConfirmationService {
	return NewConfirmationServiceTx(configsdatabase.GetDB())
}

// NewConfirmationServiceTx cria um ConfirmationService numa conexão específica.
func NewConfirmationServiceTx(db *gorm.DB) IConfirmationService {
	return &ConfirmationService{
		repo:      repositories.NewConfirmationRepositoryTx(db),
		guestRepo: repositories.NewGuestRepositoryTx(db),
		groupRepo: repositories.NewGroupRepositoryTx(db),
	}
}

// ConfirmGuest aplica a resposta de um convidado.
//
// Convidado de grupo aceitando: a aceitação propaga para todos os membros do
// grupo e para o registro do próprio grupo; as observações ficam só na linha
// de quem respondeu. Convidado sem grupo, ou recusa: só a linha do próprio
// convidado muda; uma recusa individual não fala pelo grupo inteiro.
//
// A propagação é uma sequência de upserts sem transação: uma falha no meio
// interrompe e devolve o erro, deixando os membros já gravados (limitação
// conhecida, tráfego de administrador único).
func (s *ConfirmationService) ConfirmGuest(ctx context.Context, guestID uint, input ConfirmationInput) (*ConfirmationResult, error) {
	guest, err := s.guestRepo.FindByIDWithRelations(ctx, guestID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrConfirmationGuestNotFound
		}
		return nil, err
	}

	var confirmDate *time.Time
	if input.Confirmed {
		now := time.Now()
		confirmDate = &now
	}

	if guest.GroupID != nil && input.Confirmed {
		members, err := s.guestRepo.FindAllByGroupID(ctx, *guest.GroupID)
		if err != nil {
			return nil, err
		}
		for i := range members {
			member := &members[i]
			isActor := member.ID == guest.ID
			if member.Confirmation != nil {
				member.Confirmation.Confirmed = true
				member.Confirmation.ConfirmationDate = confirmDate
				if isActor {
					member.Confirmation.Notes = input.Notes
				}
				if err := s.repo.Save(ctx, member.Confirmation); err != nil {
					return nil, s.saveFailed(err, "membro", member.ID)
				}
				continue
			}
			confirmation := models.Confirmation{
				GuestID:          &member.ID,
				Confirmed:        true,
				ConfirmationDate: confirmDate,
			}
			if isActor {
				confirmation.Notes = input.Notes
			}
			if err := s.repo.Create(ctx, &confirmation); err != nil {
				return nil, s.saveFailed(err, "membro", member.ID)
			}
		}

		// Registro do grupo: NumberOfPeople fica como veio (sem default aqui).
		if err := s.upsertGroupConfirmation(ctx, *guest.GroupID, models.Confirmation{
			GroupID:          guest.GroupID,
			Confirmed:        true,
			NumberOfPeople:   input.NumberOfPeople,
			ConfirmationDate: confirmDate,
			Notes:            input.Notes,
		}); err != nil {
			return nil, err
		}
		return &ConfirmationResult{GroupConfirmation: true}, nil
	}

	desired := models.Confirmation{
		GuestID:          &guest.ID,
		Confirmed:        input.Confirmed,
		NumberOfPeople:   input.NumberOfPeople,
		Notes:            input.Notes,
		ConfirmationDate: confirmDate,
	}
	if guest.Confirmation != nil {
		guest.Confirmation.Confirmed = desired.Confirmed
		guest.Confirmation.NumberOfPeople = desired.NumberOfPeople
		guest.Confirmation.Notes = desired.Notes
		guest.Confirmation.ConfirmationDate = desired.ConfirmationDate
		if err := s.repo.Save(ctx, guest.Confirmation); err != nil {
			return nil, s.saveFailed(err, "convidado", guest.ID)
		}
		return &ConfirmationResult{Confirmation: guest.Confirmation}, nil
	}
	if err := s.repo.Create(ctx, &desired); err != nil {
		return nil, s.saveFailed(err, "convidado", guest.ID)
	}
	return &ConfirmationResult{Confirmation: &desired}, nil
}

// ConfirmGroup aplica a resposta de um grupo inteiro. Com ConfirmedMembers
// presente, cada membro confirma apenas se estiver na lista e a resposta
// geral for positiva; sem a lista, todos espelham a resposta geral.
func (s *ConfirmationService) ConfirmGroup(ctx context.Context, groupID uint, input GroupConfirmationInput) (*ConfirmationResult, error) {
	group, err := s.groupRepo.FindByIDWithMembers(ctx, groupID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrConfirmationGroupNotFound
		}
		return nil, err
	}

	var confirmDate *time.Time
	if input.Confirmed {
		now := time.Now()
		confirmDate = &now
	}

	confirmedSet := make(map[uint]bool, len(input.ConfirmedMembers))
	for _, id := range input.ConfirmedMembers {
		confirmedSet[id] = true
	}

	for i := range group.Guests {
		member := &group.Guests[i]
		memberConfirmed := input.Confirmed
		if input.ConfirmedMembers != nil {
			memberConfirmed = input.Confirmed && confirmedSet[member.ID]
		}
		var memberDate *time.Time
		if memberConfirmed {
			memberDate = confirmDate
		}

		if member.Confirmation != nil {
			member.Confirmation.Confirmed = memberConfirmed
			member.Confirmation.ConfirmationDate = memberDate
			if err := s.repo.Save(ctx, member.Confirmation); err != nil {
				return nil, s.saveFailed(err, "membro", member.ID)
			}
			continue
		}
		confirmation := models.Confirmation{
			GuestID:          &member.ID,
			Confirmed:        memberConfirmed,
			ConfirmationDate: memberDate,
		}
		if err := s.repo.Create(ctx, &confirmation); err != nil {
			return nil, s.saveFailed(err, "membro", member.ID)
		}
	}

	numberOfPeople := input.NumberOfPeople
	if numberOfPeople == nil {
		memberCount := len(group.Guests)
		numberOfPeople = &memberCount
	}
	if err := s.upsertGroupConfirmation(ctx, group.ID, models.Confirmation{
		GroupID:          &group.ID,
		Confirmed:        input.Confirmed,
		NumberOfPeople:   numberOfPeople,
		ConfirmationDate: confirmDate,
		Notes:            input.Notes,
	}); err != nil {
		return nil, err
	}
	configslog.SLog.Infof("Confirmação de grupo registrada: grupo %d, confirmado=%v", group.ID, input.Confirmed)
	return &ConfirmationResult{GroupConfirmation: true}, nil
}

func (s *ConfirmationService) upsertGroupConfirmation(ctx context.Context, groupID uint, desired models.Confirmation) error {
	existing, err := s.repo.FindByGroupID(ctx, groupID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return err
	}
	if existing == nil {
		if err := s.repo.Create(ctx, &desired); err != nil {
			return s.saveFailed(err, "grupo", groupID)
		}
		return nil
	}
	existing.Confirmed = desired.Confirmed
	existing.NumberOfPeople = desired.NumberOfPeople
	existing.ConfirmationDate = desired.ConfirmationDate
	existing.Notes = desired.Notes
	if err := s.repo.Save(ctx, existing); err != nil {
		return s.saveFailed(err, "grupo", groupID)
	}
	return nil
}

func (s *ConfirmationService) saveFailed(err error, kind string, id uint) error {
	configslog.Log.Error("Erro ao gravar confirmação",
		zap.String("tipo", kind), zap.Uint("id", id), zap.Error(err))
	return ErrConfirmationSaveFailed
}

// ListConfirmations monta a visão do painel: confirmações ordenadas
// (confirmadas e mais recentes primeiro) e convidados sem resposta.
func (s *ConfirmationService) ListConfirmations(ctx context.Context) (*ConfirmationListing, error) {
	confirmations, err := s.repo.FindAllOrdered(ctx)
	if err != nil {
		return nil, err
	}
	unconfirmed, err := s.guestRepo.FindUnconfirmed(ctx)
	if err != nil {
		return nil, err
	}
	return &ConfirmationListing{Confirmations: confirmations, Unconfirmed: unconfirmed}, nil
}

var _ IConfirmationService = (*ConfirmationService)(nil)
