package services

import (
	"context"
	"errors"
	"testing"

	"chadebebe.link/repositories"
)

func TestCreateGroupGeneratesSlugAndToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewGroupServiceTx(db)
	ctx := context.Background()

	group, err := svc.CreateGroup(ctx, GroupInput{Name: "Família São João"})
	if err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}
	if group.Slug != "familia-sao-joao" {
		t.Errorf("slug = %q, esperado familia-sao-joao", group.Slug)
	}
	if group.InviteLink == "" {
		t.Error("InviteLink não foi gerado")
	}

	twin, err := svc.CreateGroup(ctx, GroupInput{Name: "Família São João"})
	if err != nil {
		t.Fatalf("CreateGroup homônimo: %v", err)
	}
	if twin.Slug != "familia-sao-joao-1" {
		t.Errorf("slug do homônimo = %q, esperado familia-sao-joao-1", twin.Slug)
	}
}

func TestUpdateGroupLeaderMustBeMember(t *testing.T) {
	db := newTestDB(t)
	groupSvc := NewGroupServiceTx(db)
	guestSvc := NewGuestServiceTx(db)
	ctx := context.Background()

	group, err := groupSvc.CreateGroup(ctx, GroupInput{Name: "Família Lima"})
	if err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}
	outsider, err := guestSvc.CreateGuest(ctx, GuestInput{Name: "Fulano"})
	if err != nil {
		t.Fatalf("CreateGuest: %v", err)
	}

	if _, err := groupSvc.UpdateGroup(ctx, group.ID, GroupInput{Name: group.Name, LeaderID: &outsider.ID}); !errors.Is(err, ErrLeaderNotMember) {
		t.Errorf("líder de fora do grupo: erro = %v, esperado ErrLeaderNotMember", err)
	}

	unknownID := uint(999)
	if _, err := groupSvc.UpdateGroup(ctx, group.ID, GroupInput{Name: group.Name, LeaderID: &unknownID}); !errors.Is(err, ErrLeaderNotMember) {
		t.Errorf("líder inexistente: erro = %v, esperado ErrLeaderNotMember", err)
	}

	member, err := guestSvc.CreateGuest(ctx, GuestInput{Name: "Ciclana", GroupID: &group.ID})
	if err != nil {
		t.Fatalf("CreateGuest membro: %v", err)
	}
	updated, err := groupSvc.UpdateGroup(ctx, group.ID, GroupInput{Name: group.Name, LeaderID: &member.ID})
	if err != nil {
		t.Fatalf("UpdateGroup com membro como líder: %v", err)
	}
	if updated.LeaderID == nil || *updated.LeaderID != member.ID {
		t.Errorf("LeaderID = %v, esperado %d", updated.LeaderID, member.ID)
	}
}

func TestUpdateGroupKeepsIdentifiers(t *testing.T) {
	db := newTestDB(t)
	svc := NewGroupServiceTx(db)
	ctx := context.Background()

	group, err := svc.CreateGroup(ctx, GroupInput{Name: "Colegas do Trabalho"})
	if err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}
	originalSlug := group.Slug

	updated, err := svc.UpdateGroup(ctx, group.ID, GroupInput{Name: "Colegas da Firma", Description: strPtr("equipe toda")})
	if err != nil {
		t.Fatalf("UpdateGroup: %v", err)
	}
	if updated.Slug != originalSlug {
		t.Errorf("slug mudou com a renomeação: %q -> %q", originalSlug, updated.Slug)
	}
	if updated.Description == nil || *updated.Description != "equipe toda" {
		t.Errorf("Description = %v, esperado 'equipe toda'", updated.Description)
	}
}

func TestDeleteGroupDetachesMembers(t *testing.T) {
	db := newTestDB(t)
	groupSvc := NewGroupServiceTx(db)
	guestSvc := NewGuestServiceTx(db)
	confirmationSvc := NewConfirmationServiceTx(db)
	ctx := context.Background()

	group, err := groupSvc.CreateGroup(ctx, GroupInput{Name: "Família Souza"})
	if err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}
	ana, err := guestSvc.CreateGuest(ctx, GuestInput{Name: "Ana", GroupID: &group.ID})
	if err != nil {
		t.Fatalf("CreateGuest: %v", err)
	}
	bia, err := guestSvc.CreateGuest(ctx, GuestInput{Name: "Bia", GroupID: &group.ID})
	if err != nil {
		t.Fatalf("CreateGuest: %v", err)
	}
	// Confirmação em grupo cria o registro agregado do grupo
	if _, err := confirmationSvc.ConfirmGroup(ctx, group.ID, GroupConfirmationInput{
		ConfirmationInput: ConfirmationInput{Confirmed: true},
	}); err != nil {
		t.Fatalf("ConfirmGroup: %v", err)
	}

	if err := groupSvc.DeleteGroup(ctx, group.ID); err != nil {
		t.Fatalf("DeleteGroup: %v", err)
	}

	if _, err := groupSvc.GetGroupByID(ctx, group.ID); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("grupo ainda existe após exclusão: %v", err)
	}
	confirmationRepo := repositories.NewConfirmationRepositoryTx(db)
	if _, err := confirmationRepo.FindByGroupID(ctx, group.ID); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("confirmação do grupo não foi removida: %v", err)
	}
	for _, id := range []uint{ana.ID, bia.ID} {
		guest, err := guestSvc.GetGuestByID(ctx, id)
		if err != nil {
			t.Fatalf("membro %d sumiu junto com o grupo: %v", id, err)
		}
		if guest.GroupID != nil {
			t.Errorf("membro %d ainda aponta para o grupo excluído", id)
		}
	}
}

func TestAddMember(t *testing.T) {
	db := newTestDB(t)
	groupSvc := NewGroupServiceTx(db)
	guestSvc := NewGuestServiceTx(db)
	ctx := context.Background()

	group, err := groupSvc.CreateGroup(ctx, GroupInput{Name: "Amigas da Escola"})
	if err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}
	guest, err := guestSvc.CreateGuest(ctx, GuestInput{Name: "Paula"})
	if err != nil {
		t.Fatalf("CreateGuest: %v", err)
	}

	added, err := groupSvc.AddMember(ctx, group.ID, guest.ID)
	if err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if added.GroupID == nil || *added.GroupID != group.ID {
		t.Errorf("GroupID = %v, esperado %d", added.GroupID, group.ID)
	}

	if _, err := groupSvc.AddMember(ctx, 999, guest.ID); !errors.Is(err, ErrMemberGroupNotFound) {
		t.Errorf("grupo inexistente: erro = %v, esperado ErrMemberGroupNotFound", err)
	}
	if _, err := groupSvc.AddMember(ctx, group.ID, 999); !errors.Is(err, ErrMemberGuestNotFound) {
		t.Errorf("convidado inexistente: erro = %v, esperado ErrMemberGuestNotFound", err)
	}
}

func TestRemoveMemberClearsLeadership(t *testing.T) {
	db := newTestDB(t)
	groupSvc := NewGroupServiceTx(db)
	guestSvc := NewGuestServiceTx(db)
	ctx := context.Background()

	group, err := groupSvc.CreateGroup(ctx, GroupInput{Name: "Família Costa"})
	if err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}
	leader, err := guestSvc.CreateGuest(ctx, GuestInput{Name: "Dona Lúcia", GroupID: &group.ID})
	if err != nil {
		t.Fatalf("CreateGuest: %v", err)
	}
	if _, err := groupSvc.UpdateGroup(ctx, group.ID, GroupInput{Name: group.Name, LeaderID: &leader.ID}); err != nil {
		t.Fatalf("UpdateGroup: %v", err)
	}

	if err := groupSvc.RemoveMember(ctx, group.ID, leader.ID); err != nil {
		t.Fatalf("RemoveMember: %v", err)
	}

	reloaded, err := groupSvc.GetGroupByID(ctx, group.ID)
	if err != nil {
		t.Fatalf("GetGroupByID: %v", err)
	}
	if reloaded.LeaderID != nil {
		t.Errorf("liderança não foi limpa ao remover o líder")
	}
	removed, err := guestSvc.GetGuestByID(ctx, leader.ID)
	if err != nil {
		t.Fatalf("GetGuestByID: %v", err)
	}
	if removed.GroupID != nil {
		t.Errorf("convidado removido ainda aponta para o grupo")
	}

	if err := groupSvc.RemoveMember(ctx, group.ID, leader.ID); !errors.Is(err, ErrGuestNotInGroup) {
		t.Errorf("remoção repetida: erro = %v, esperado ErrGuestNotInGroup", err)
	}
}
