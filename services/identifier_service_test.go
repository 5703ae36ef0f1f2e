package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"chadebebe.link/models"
)

func TestFindGuestBySlugOrInviteLink(t *testing.T) {
	db := newTestDB(t)
	guestSvc := NewGuestServiceTx(db)
	svc := NewIdentifierServiceTx(db)
	ctx := context.Background()

	guest, err := guestSvc.CreateGuest(ctx, GuestInput{Name: "Helena"})
	if err != nil {
		t.Fatalf("CreateGuest: %v", err)
	}

	bySlug, err := svc.FindGuestBySlugOrInviteLink(ctx, guest.Slug)
	if err != nil {
		t.Fatalf("busca por slug: %v", err)
	}
	if bySlug.ID != guest.ID {
		t.Errorf("busca por slug retornou o convidado %d, esperado %d", bySlug.ID, guest.ID)
	}

	byToken, err := svc.FindGuestBySlugOrInviteLink(ctx, guest.InviteLink)
	if err != nil {
		t.Fatalf("busca por token legado: %v", err)
	}
	if byToken.ID != guest.ID {
		t.Errorf("busca por token retornou o convidado %d, esperado %d", byToken.ID, guest.ID)
	}

	if _, err := svc.FindGuestBySlugOrInviteLink(ctx, "nao-existe"); !errors.Is(err, ErrIdentifierGuestNotFound) {
		t.Errorf("identificador desconhecido: erro = %v, esperado ErrIdentifierGuestNotFound", err)
	}
	if _, err := svc.FindGuestBySlugOrInviteLink(ctx, ""); !errors.Is(err, ErrIdentifierGuestNotFound) {
		t.Errorf("identificador vazio: erro = %v, esperado ErrIdentifierGuestNotFound", err)
	}
}

func TestFindGroupBySlugOrInviteLink(t *testing.T) {
	db := newTestDB(t)
	groupSvc := NewGroupServiceTx(db)
	svc := NewIdentifierServiceTx(db)
	ctx := context.Background()

	group, err := groupSvc.CreateGroup(ctx, GroupInput{Name: "Vizinhos do Prédio"})
	if err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}

	bySlug, err := svc.FindGroupBySlugOrInviteLink(ctx, group.Slug)
	if err != nil {
		t.Fatalf("busca por slug: %v", err)
	}
	if bySlug.ID != group.ID {
		t.Errorf("busca por slug retornou o grupo %d, esperado %d", bySlug.ID, group.ID)
	}

	byToken, err := svc.FindGroupBySlugOrInviteLink(ctx, group.InviteLink)
	if err != nil {
		t.Fatalf("busca por token legado: %v", err)
	}
	if byToken.ID != group.ID {
		t.Errorf("busca por token retornou o grupo %d, esperado %d", byToken.ID, group.ID)
	}

	if _, err := svc.FindGroupBySlugOrInviteLink(ctx, "nao-existe"); !errors.Is(err, ErrIdentifierGroupNotFound) {
		t.Errorf("identificador desconhecido: erro = %v, esperado ErrIdentifierGroupNotFound", err)
	}
}

func TestGenerateUniqueSlugRejectsEmptyName(t *testing.T) {
	db := newTestDB(t)
	svc := NewIdentifierServiceTx(db)

	if _, err := svc.GenerateUniqueGuestSlug(context.Background(), "!!!"); !errors.Is(err, ErrIdentifierEmptyName) {
		t.Errorf("erro = %v, esperado ErrIdentifierEmptyName", err)
	}
}

func TestGuestConfirmationPathPrefersSlug(t *testing.T) {
	db := newTestDB(t)
	svc := NewIdentifierServiceTx(db)

	withSlug := &models.Guest{Name: "Nina", Slug: "nina", InviteLink: "abc123-xyz"}
	if got := svc.GuestConfirmationPath(withSlug); got != "/confirmar/nina" {
		t.Errorf("caminho = %q, esperado /confirmar/nina", got)
	}

	legacyOnly := &models.Guest{Name: "Nina", InviteLink: "abc123-xyz"}
	if got := svc.GuestConfirmationPath(legacyOnly); got != "/confirmar/abc123-xyz" {
		t.Errorf("caminho legado = %q, esperado /confirmar/abc123-xyz", got)
	}
}

func TestGuestWhatsAppURL(t *testing.T) {
	db := newTestDB(t)
	svc := NewIdentifierServiceTx(db)

	guest := &models.Guest{Name: "Otávio", Slug: "otavio", InviteLink: "tok", Phone: strPtr("+55 (11) 99999-0001")}
	link := svc.GuestWhatsAppURL(guest)

	if !strings.HasPrefix(link, "https://wa.me/5511999990001?text=") {
		t.Errorf("link = %q, esperado número só com dígitos", link)
	}
	if !strings.Contains(link, "Ot%C3%A1vio") {
		t.Errorf("mensagem não foi codificada para URL: %q", link)
	}
	if !strings.Contains(link, "%2Fconfirmar%2Fotavio") {
		t.Errorf("link de confirmação não aparece na mensagem: %q", link)
	}

	noPhone := &models.Guest{Name: "Paula", Slug: "paula", InviteLink: "tok2"}
	if !strings.HasPrefix(svc.GuestWhatsAppURL(noPhone), "https://wa.me/?text=") {
		t.Error("sem telefone, o link deveria cair no compartilhamento sem contato")
	}
}
