package services

import (
	"context"

	"chadebebe.link/configs/configsdatabase"
	"chadebebe.link/repositories"

	"gorm.io/gorm"
)

// DashboardStats são os totais exibidos na visão geral do painel.
type DashboardStats struct {
	TotalConvidados       int64 `json:"totalConvidados"`
	TotalGrupos           int64 `json:"totalGrupos"`
	ConvidadosConfirmados int64 `json:"convidadosConfirmados"`
	FraldasPrometidas     int   `json:"fraldasPrometidas"`
}

// IStatsService calcula os totais da visão geral do painel.
type IStatsService interface {
	DashboardSummary(ctx context.Context) (*DashboardStats, error)
}

type StatsService struct {
	guestRepo        repositories.IGuestRepository
	groupRepo        repositories.IGroupRepository
	confirmationRepo repositories.IConfirmationRepository
}

// NewStatsService cria um StatsService com a conexão global.
func NewStatsService() IStatsService {
	return NewStatsServiceTx(configsdatabase.GetDB())
}

// NewStatsServiceTx cria um StatsService numa conexão específica.
func NewStatsServiceTx(db *gorm.DB) IStatsService {
	return &StatsService{
		guestRepo:        repositories.NewGuestRepositoryTx(db),
		groupRepo:        repositories.NewGroupRepositoryTx(db),
		confirmationRepo: repositories.NewConfirmationRepositoryTx(db),
	}
}

// DashboardSummary agrega os quatro totais da visão geral: convidados,
// grupos, presenças confirmadas e pacotes de fralda prometidos (quantidade
// ausente conta como um pacote, como no resumo de presentes).
func (s *StatsService) DashboardSummary(ctx context.Context) (*DashboardStats, error) {
	totalGuests, err := s.guestRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	totalGroups, err := s.groupRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	confirmed, err := s.confirmationRepo.CountConfirmedGuests(ctx)
	if err != nil {
		return nil, err
	}

	guests, err := s.guestRepo.FindAllWithConfirmation(ctx)
	if err != nil {
		return nil, err
	}
	diapers := 0
	for _, guest := range guests {
		if guest.GiftSize == nil || *guest.GiftSize == "" {
			continue
		}
		if guest.GiftQuantity != nil {
			diapers += *guest.GiftQuantity
		} else {
			diapers++
		}
	}

	return &DashboardStats{
		TotalConvidados:       totalGuests,
		TotalGrupos:           totalGroups,
		ConvidadosConfirmados: confirmed,
		FraldasPrometidas:     diapers,
	}, nil
}

var _ IStatsService = (*StatsService)(nil)
