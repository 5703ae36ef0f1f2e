package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"

	"chadebebe.link/configs"
	"chadebebe.link/models"
	"chadebebe.link/pkg/slug"
	"chadebebe.link/repositories"

	"gorm.io/gorm"
)

// IdentifierServiceError é o tipo dos erros do serviço de identificadores.
type IdentifierServiceError string

func (e IdentifierServiceError) Error() string { return string(e) }

const (
	ErrIdentifierGuestNotFound IdentifierServiceError = "convidado não encontrado"
	ErrIdentifierGroupNotFound IdentifierServiceError = "grupo não encontrado"
	ErrIdentifierEmptyName     IdentifierServiceError = "nome não gera identificador válido"
)

// IIdentifierService deriva slugs únicos e resolve identificadores públicos
// (slug ou token legado) de volta para seus registros.
type IIdentifierService interface {
	GenerateUniqueGuestSlug(ctx context.Context, name string) (string, error)
	GenerateUniqueGroupSlug(ctx context.Context, name string) (string, error)
	FindGuestBySlugOrInviteLink(ctx context.Context, identifier string) (*models.Guest, error)
	FindGroupBySlugOrInviteLink(ctx context.Context, identifier string) (*models.Group, error)
	GuestConfirmationPath(guest *models.Guest) string
	GuestConfirmationURL(guest *models.Guest) string
	GuestWhatsAppURL(guest *models.Guest) string
}

type IdentifierService struct {
	guestRepo repositories.IGuestRepository
	groupRepo repositories.IGroupRepository
	publicURL string
	eventName string
}

// NewIdentifierService cria um IdentifierService com a conexão global.
func NewIdentifierService() IIdentifierService {
	return &IdentifierService{
		guestRepo: repositories.NewGuestRepository(),
		groupRepo: repositories.NewGroupRepository(),
		publicURL: configs.GetAppConfig().PublicURL,
		eventName: configs.GetAppConfig().EventName,
	}
}

// NewIdentifierServiceTx cria um IdentifierService numa conexão específica.
func NewIdentifierServiceTx(db *gorm.DB) IIdentifierService {
	return &IdentifierService{
		guestRepo: repositories.NewGuestRepositoryTx(db),
		groupRepo: repositories.NewGroupRepositoryTx(db),
		publicURL: configs.GetAppConfig().PublicURL,
		eventName: configs.GetAppConfig().EventName,
	}
}

// generateUnique calcula o slug base e acrescenta -1, -2, ... até achar um
// livre. Há uma janela de corrida entre a checagem e o insert; com um único
// administrador criando registros isso é aceitável.
func generateUnique(ctx context.Context, name string, exists func(context.Context, string) (bool, error)) (string, error) {
	base := slug.Make(name)
	if base == "" {
		return "", ErrIdentifierEmptyName
	}
	candidate := base
	for counter := 1; ; counter++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = base + "-" + strconv.Itoa(counter)
	}
}

func (s *IdentifierService) GenerateUniqueGuestSlug(ctx context.Context, name string) (string, error) {
	return generateUnique(ctx, name, s.guestRepo.SlugExists)
}

func (s *IdentifierService) GenerateUniqueGroupSlug(ctx context.Context, name string) (string, error) {
	return generateUnique(ctx, name, s.groupRepo.SlugExists)
}

// FindGuestBySlugOrInviteLink resolve um identificador público: primeiro por
// slug, depois pelo token legado, para compatibilidade com links antigos.
func (s *IdentifierService) FindGuestBySlugOrInviteLink(ctx context.Context, identifier string) (*models.Guest, error) {
	if identifier == "" {
		return nil, ErrIdentifierGuestNotFound
	}
	guest, err := s.guestRepo.FindBySlug(ctx, identifier)
	if err == nil {
		return guest, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	guest, err = s.guestRepo.FindByInviteLink(ctx, identifier)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrIdentifierGuestNotFound
		}
		return nil, err
	}
	return guest, nil
}

// FindGroupBySlugOrInviteLink é o equivalente para grupos.
func (s *IdentifierService) FindGroupBySlugOrInviteLink(ctx context.Context, identifier string) (*models.Group, error) {
	if identifier == "" {
		return nil, ErrIdentifierGroupNotFound
	}
	group, err := s.groupRepo.FindBySlug(ctx, identifier)
	if err == nil {
		return group, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	group, err = s.groupRepo.FindByInviteLink(ctx, identifier)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrIdentifierGroupNotFound
		}
		return nil, err
	}
	return group, nil
}

// preferredIdentifier retorna o slug quando existe, senão o token legado.
func preferredIdentifier(slugValue, inviteLink string) string {
	if slugValue != "" {
		return slugValue
	}
	return inviteLink
}

// GuestConfirmationPath monta o caminho público de confirmação do convidado.
func (s *IdentifierService) GuestConfirmationPath(guest *models.Guest) string {
	return "/confirmar/" + preferredIdentifier(guest.Slug, guest.InviteLink)
}

// GuestConfirmationURL monta a URL completa, com a base pública configurada.
func (s *IdentifierService) GuestConfirmationURL(guest *models.Guest) string {
	return s.publicURL + s.GuestConfirmationPath(guest)
}

var nonDigits = regexp.MustCompile(`\D`)

// GuestWhatsAppURL monta o deep link do WhatsApp com a mensagem de convite
// pré-preenchida. Sem telefone, cai no link de compartilhamento sem contato.
func (s *IdentifierService) GuestWhatsAppURL(guest *models.Guest) string {
	message := fmt.Sprintf("Olá %s! Você foi convidado(a) para o %s! Para confirmar sua presença, acesse: %s",
		guest.Name, s.eventName, s.GuestConfirmationURL(guest))
	encoded := url.QueryEscape(message)
	if guest.Phone != nil && *guest.Phone != "" {
		return "https://wa.me/" + nonDigits.ReplaceAllString(*guest.Phone, "") + "?text=" + encoded
	}
	return "https://wa.me/?text=" + encoded
}

var _ IIdentifierService = (*IdentifierService)(nil)
