package slug

import "testing"

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"nome simples", "Maria", "maria"},
		{"nome composto", "Maria Clara", "maria-clara"},
		{"acentos removidos", "João Antônio", "joao-antonio"},
		{"cedilha e til", "Conceição São João", "conceicao-sao-joao"},
		{"pontuação removida", "Ana & Bia!", "ana-bia"},
		{"espaços múltiplos", "Família   Silva", "familia-silva"},
		{"hífens preservados e colapsados", "Ana--Luiza", "ana-luiza"},
		{"hífens nas pontas aparados", " - Tia Rê - ", "tia-re"},
		{"números mantidos", "Mesa 12", "mesa-12"},
		{"vazio", "", ""},
		{"só símbolos", "!!! ???", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Make(tt.input); got != tt.want {
				t.Errorf("Make(%q) = %q, esperado %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMakeIdempotent(t *testing.T) {
	inputs := []string{"João Antônio", "Família Silva", "mesa-12"}
	for _, input := range inputs {
		once := Make(input)
		twice := Make(once)
		if once != twice {
			t.Errorf("Make não é idempotente para %q: %q != %q", input, once, twice)
		}
	}
}
