package invitetoken

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewFormat(t *testing.T) {
	token := New()

	parts := strings.SplitN(token, "-", 2)
	if len(parts) != 2 {
		t.Fatalf("token %q não tem o formato aleatório-timestamp", token)
	}
	if len(parts[0]) != 13 {
		t.Errorf("parte aleatória tem %d caracteres, esperado 13", len(parts[0]))
	}
	for _, part := range parts {
		for _, r := range part {
			if !strings.ContainsRune(base36Alphabet, r) {
				t.Errorf("token %q contém caractere fora do base36: %q", token, r)
			}
		}
	}
}

func TestNewUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		token := New()
		if seen[token] {
			t.Fatalf("token repetido: %q", token)
		}
		seen[token] = true
	}
}

func TestNewPrefixed(t *testing.T) {
	token := NewPrefixed("group")
	if !strings.HasPrefix(token, "group-") {
		t.Errorf("token %q não tem o prefixo group-", token)
	}
	if len(token) <= len("group-") {
		t.Errorf("token %q não tem conteúdo além do prefixo", token)
	}
}

func TestNewUUID(t *testing.T) {
	token := NewUUID()
	if _, err := uuid.Parse(token); err != nil {
		t.Errorf("NewUUID retornou %q, que não é um UUID válido: %v", token, err)
	}
}
