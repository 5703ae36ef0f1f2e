package services

import (
	"context"
	"errors"
	"testing"

	"chadebebe.link/pkg/queryparams"
	"chadebebe.link/repositories"
)

func TestCreateGuestGeneratesUniqueSlug(t *testing.T) {
	db := newTestDB(t)
	svc := NewGuestServiceTx(db)
	ctx := context.Background()

	first, err := svc.CreateGuest(ctx, GuestInput{Name: "João Silva"})
	if err != nil {
		t.Fatalf("CreateGuest: %v", err)
	}
	if first.Slug != "joao-silva" {
		t.Errorf("slug = %q, esperado joao-silva", first.Slug)
	}
	if first.InviteLink == "" {
		t.Error("InviteLink não foi gerado")
	}

	second, err := svc.CreateGuest(ctx, GuestInput{Name: "João Silva"})
	if err != nil {
		t.Fatalf("CreateGuest homônimo: %v", err)
	}
	if second.Slug != "joao-silva-1" {
		t.Errorf("slug do homônimo = %q, esperado joao-silva-1", second.Slug)
	}
	if second.InviteLink == first.InviteLink {
		t.Error("tokens de convite repetidos entre convidados")
	}

	third, err := svc.CreateGuest(ctx, GuestInput{Name: "João Silva"})
	if err != nil {
		t.Fatalf("CreateGuest segundo homônimo: %v", err)
	}
	if third.Slug != "joao-silva-2" {
		t.Errorf("slug do segundo homônimo = %q, esperado joao-silva-2", third.Slug)
	}
}

func TestCreateGuestRequiresName(t *testing.T) {
	db := newTestDB(t)
	svc := NewGuestServiceTx(db)

	if _, err := svc.CreateGuest(context.Background(), GuestInput{Name: ""}); !errors.Is(err, ErrGuestNameRequired) {
		t.Errorf("erro = %v, esperado ErrGuestNameRequired", err)
	}
	if _, err := svc.CreateGuest(context.Background(), GuestInput{Name: "!!!"}); !errors.Is(err, ErrGuestNameRequired) {
		t.Errorf("nome sem caracteres válidos: erro = %v, esperado ErrGuestNameRequired", err)
	}
}

func TestCreateGuestDefaultsGiftQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := NewGuestServiceTx(db)
	ctx := context.Background()

	guest, err := svc.CreateGuest(ctx, GuestInput{Name: "Maria", GiftSize: strPtr("M")})
	if err != nil {
		t.Fatalf("CreateGuest: %v", err)
	}
	if guest.GiftQuantity == nil || *guest.GiftQuantity != 1 {
		t.Errorf("GiftQuantity = %v, esperado 1 quando só o tamanho é informado", guest.GiftQuantity)
	}

	guest, err = svc.CreateGuest(ctx, GuestInput{Name: "Clara", GiftSize: strPtr("G"), GiftQuantity: intPtr(3)})
	if err != nil {
		t.Fatalf("CreateGuest: %v", err)
	}
	if guest.GiftQuantity == nil || *guest.GiftQuantity != 3 {
		t.Errorf("GiftQuantity = %v, esperado 3", guest.GiftQuantity)
	}

	guest, err = svc.CreateGuest(ctx, GuestInput{Name: "Pedro"})
	if err != nil {
		t.Fatalf("CreateGuest: %v", err)
	}
	if guest.GiftQuantity != nil {
		t.Errorf("GiftQuantity = %v, esperado nil sem tamanho de fralda", *guest.GiftQuantity)
	}
}

func TestUpdateGuestKeepsIdentifiers(t *testing.T) {
	db := newTestDB(t)
	svc := NewGuestServiceTx(db)
	ctx := context.Background()

	guest, err := svc.CreateGuest(ctx, GuestInput{Name: "Maria"})
	if err != nil {
		t.Fatalf("CreateGuest: %v", err)
	}
	originalSlug := guest.Slug
	originalToken := guest.InviteLink

	updated, err := svc.UpdateGuest(ctx, guest.ID, GuestInput{Name: "Maria Clara", Email: strPtr("maria@example.com")})
	if err != nil {
		t.Fatalf("UpdateGuest: %v", err)
	}
	if updated.Name != "Maria Clara" {
		t.Errorf("Name = %q, esperado Maria Clara", updated.Name)
	}
	if updated.Slug != originalSlug {
		t.Errorf("slug mudou com a renomeação: %q -> %q", originalSlug, updated.Slug)
	}
	if updated.InviteLink != originalToken {
		t.Errorf("token de convite mudou com a renomeação")
	}
	if updated.Email == nil || *updated.Email != "maria@example.com" {
		t.Errorf("Email = %v, esperado maria@example.com", updated.Email)
	}
}

func TestUpdateGuestNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewGuestServiceTx(db)

	if _, err := svc.UpdateGuest(context.Background(), 999, GuestInput{Name: "Alguém"}); !errors.Is(err, ErrGuestNotFound) {
		t.Errorf("erro = %v, esperado ErrGuestNotFound", err)
	}
}

func TestDeleteGuestClearsConfirmationAndLeadership(t *testing.T) {
	db := newTestDB(t)
	guestSvc := NewGuestServiceTx(db)
	groupSvc := NewGroupServiceTx(db)
	confirmationSvc := NewConfirmationServiceTx(db)
	ctx := context.Background()

	group, err := groupSvc.CreateGroup(ctx, GroupInput{Name: "Família Silva"})
	if err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}
	guest, err := guestSvc.CreateGuest(ctx, GuestInput{Name: "Tia Rê", GroupID: &group.ID})
	if err != nil {
		t.Fatalf("CreateGuest: %v", err)
	}
	if _, err := groupSvc.UpdateGroup(ctx, group.ID, GroupInput{Name: group.Name, LeaderID: &guest.ID}); err != nil {
		t.Fatalf("UpdateGroup: %v", err)
	}
	if _, err := confirmationSvc.ConfirmGuest(ctx, guest.ID, ConfirmationInput{Confirmed: true}); err != nil {
		t.Fatalf("ConfirmGuest: %v", err)
	}

	if err := guestSvc.DeleteGuest(ctx, guest.ID); err != nil {
		t.Fatalf("DeleteGuest: %v", err)
	}

	if _, err := guestSvc.GetGuestByID(ctx, guest.ID); !errors.Is(err, ErrGuestNotFound) {
		t.Errorf("convidado ainda existe após exclusão: %v", err)
	}
	confirmationRepo := repositories.NewConfirmationRepositoryTx(db)
	if _, err := confirmationRepo.FindByGuestID(ctx, guest.ID); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("confirmação individual não foi removida: %v", err)
	}
	reloaded, err := groupSvc.GetGroupByID(ctx, group.ID)
	if err != nil {
		t.Fatalf("GetGroupByID: %v", err)
	}
	if reloaded.LeaderID != nil {
		t.Errorf("grupo ainda referencia o líder excluído: %v", *reloaded.LeaderID)
	}
}

func TestListGuestsPaginatesAndFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewGuestServiceTx(db)
	ctx := context.Background()

	names := []string{"Ana", "Beatriz", "Carla", "Daniela", "Eduarda"}
	for _, name := range names {
		if _, err := svc.CreateGuest(ctx, GuestInput{Name: name}); err != nil {
			t.Fatalf("CreateGuest %s: %v", name, err)
		}
	}

	params := queryparams.DefaultListParams("name")
	params.PerPage = 2
	params.Page = 2
	result, err := svc.ListGuests(ctx, params)
	if err != nil {
		t.Fatalf("ListGuests: %v", err)
	}
	if result.Meta.TotalItems != 5 {
		t.Errorf("TotalItems = %d, esperado 5", result.Meta.TotalItems)
	}
	if result.Meta.TotalPages != 3 {
		t.Errorf("TotalPages = %d, esperado 3", result.Meta.TotalPages)
	}

	params = queryparams.DefaultListParams("name")
	params.Name = "ana"
	result, err = svc.ListGuests(ctx, params)
	if err != nil {
		t.Fatalf("ListGuests com filtro: %v", err)
	}
	if result.Meta.TotalItems != 1 {
		t.Errorf("filtro por nome: TotalItems = %d, esperado 1", result.Meta.TotalItems)
	}
}
