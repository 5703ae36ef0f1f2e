package services

import (
	"context"

	"chadebebe.link/repositories"

	"gorm.io/gorm"
)

// Preço médio por pacote de fraldas, usado na estimativa de valor.
const diaperPackagePrice = 50

// diaperSizes são os tamanhos pré-semeados no resumo, nesta ordem.
var diaperSizes = []string{"P", "M", "G", "XG", "XXG"}

// GiftSizeCount acumula pacotes confirmados e pendentes de um tamanho.
type GiftSizeCount struct {
	Confirmadas int `json:"confirmadas"`
	Pendentes   int `json:"pendentes"`
	Total       int `json:"total"`
}

// GiftSummary é o resumo de fraldas do painel de presentes.
type GiftSummary struct {
	Total          GiftSizeCount            `json:"total"`
	PorTamanho     map[string]GiftSizeCount `json:"porTamanho"`
	Tamanhos       []string                 `json:"tamanhos"`
	ValorEstimado  int                      `json:"valorEstimado"`  // pacotes confirmados x preço médio
	ValorPotencial int                      `json:"valorPotencial"` // todos os pacotes x preço médio
}

// IGiftService calcula o resumo de presentes (pacotes de fraldas).
type IGiftService interface {
	Summary(ctx context.Context) (*GiftSummary, error)
}

type GiftService struct {
	guestRepo repositories.IGuestRepository
}

// NewGiftService cria um GiftService com a conexão global.
func NewGiftService() IGiftService {
	return &GiftService{guestRepo: repositories.NewGuestRepository()}
}

// NewGiftServiceTx cria um GiftService numa conexão específica.
func NewGiftServiceTx(db *gorm.DB) IGiftService {
	return &GiftService{guestRepo: repositories.NewGuestRepositoryTx(db)}
}

// Summary percorre os convidados com tamanho de fralda definido e agrega as
// quantidades por tamanho, separando confirmados de pendentes. Quantidade
// ausente conta como um pacote.
func (s *GiftService) Summary(ctx context.Context) (*GiftSummary, error) {
	guests, err := s.guestRepo.FindAllWithConfirmation(ctx)
	if err != nil {
		return nil, err
	}

	summary := &GiftSummary{
		PorTamanho: make(map[string]GiftSizeCount, len(diaperSizes)),
		Tamanhos:   diaperSizes,
	}
	for _, size := range diaperSizes {
		summary.PorTamanho[size] = GiftSizeCount{}
	}

	for _, guest := range guests {
		if guest.GiftSize == nil || *guest.GiftSize == "" {
			continue
		}
		size := *guest.GiftSize
		quantity := 1
		if guest.GiftQuantity != nil {
			quantity = *guest.GiftQuantity
		}
		confirmed := guest.Confirmation != nil && guest.Confirmation.Confirmed

		count := summary.PorTamanho[size]
		if confirmed {
			count.Confirmadas += quantity
			summary.Total.Confirmadas += quantity
		} else {
			count.Pendentes += quantity
			summary.Total.Pendentes += quantity
		}
		count.Total += quantity
		summary.Total.Total += quantity
		summary.PorTamanho[size] = count
	}

	summary.ValorEstimado = summary.Total.Confirmadas * diaperPackagePrice
	summary.ValorPotencial = summary.Total.Total * diaperPackagePrice
	return summary, nil
}

var _ IGiftService = (*GiftService)(nil)
