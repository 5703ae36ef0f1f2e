package queryparams

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		params      ListParams
		wantPage    int
		wantPerPage int
		wantOrderBy string
	}{
		{"valores válidos passam", ListParams{Page: 2, PerPage: 50, OrderBy: "desc"}, 2, 50, "desc"},
		{"página zero vira padrão", ListParams{Page: 0, PerPage: 10, OrderBy: "asc"}, DefaultPage, 10, "asc"},
		{"página negativa vira padrão", ListParams{Page: -3, PerPage: 10, OrderBy: "asc"}, DefaultPage, 10, "asc"},
		{"per_page zero vira padrão", ListParams{Page: 1, PerPage: 0, OrderBy: "asc"}, 1, DefaultPerPage, "asc"},
		{"per_page acima do limite é truncado", ListParams{Page: 1, PerPage: 500, OrderBy: "asc"}, 1, MaxPerPage, "asc"},
		{"order_by inválido vira asc", ListParams{Page: 1, PerPage: 10, OrderBy: "sideways"}, 1, 10, DefaultOrderBy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.params
			p.Validate()
			if p.Page != tt.wantPage {
				t.Errorf("Page = %d, esperado %d", p.Page, tt.wantPage)
			}
			if p.PerPage != tt.wantPerPage {
				t.Errorf("PerPage = %d, esperado %d", p.PerPage, tt.wantPerPage)
			}
			if p.OrderBy != tt.wantOrderBy {
				t.Errorf("OrderBy = %q, esperado %q", p.OrderBy, tt.wantOrderBy)
			}
		})
	}
}

func TestCalculateOffset(t *testing.T) {
	p := ListParams{Page: 3, PerPage: 20}
	if got := p.CalculateOffset(); got != 40 {
		t.Errorf("CalculateOffset = %d, esperado 40", got)
	}
	p = ListParams{Page: 1, PerPage: 20}
	if got := p.CalculateOffset(); got != 0 {
		t.Errorf("CalculateOffset = %d, esperado 0", got)
	}
}

func TestCalculateTotalPages(t *testing.T) {
	tests := []struct {
		totalItems int64
		perPage    int
		want       int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{100, 20, 5},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := CalculateTotalPages(tt.totalItems, tt.perPage); got != tt.want {
			t.Errorf("CalculateTotalPages(%d, %d) = %d, esperado %d", tt.totalItems, tt.perPage, got, tt.want)
		}
	}
}
