package services

import (
	"context"
	"errors"
	"testing"

	"chadebebe.link/models"

	"golang.org/x/crypto/bcrypt"
)

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserServiceTx(db)
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("segredo123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	user := models.User{Name: "Admin", Email: "admin@example.com", Password: string(hashed), Role: "admin"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed do usuário: %v", err)
	}

	authenticated, err := svc.Authenticate(ctx, "admin@example.com", "segredo123")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if authenticated.ID != user.ID {
		t.Errorf("usuário autenticado = %d, esperado %d", authenticated.ID, user.ID)
	}

	if _, err := svc.Authenticate(ctx, "admin@example.com", "errada"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("senha errada: erro = %v, esperado ErrInvalidCredentials", err)
	}
	if _, err := svc.Authenticate(ctx, "ninguem@example.com", "segredo123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("e-mail desconhecido: erro = %v, esperado ErrInvalidCredentials", err)
	}
	if _, err := svc.Authenticate(ctx, "", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("credenciais vazias: erro = %v, esperado ErrInvalidCredentials", err)
	}
}

func TestGetUserByID(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserServiceTx(db)
	ctx := context.Background()

	user := models.User{Name: "Admin", Email: "admin@example.com", Password: "hash", Role: "admin"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed do usuário: %v", err)
	}

	found, err := svc.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if found.Email != user.Email {
		t.Errorf("Email = %q, esperado %q", found.Email, user.Email)
	}

	if _, err := svc.GetUserByID(ctx, 999); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("erro = %v, esperado ErrUserNotFound", err)
	}
}
