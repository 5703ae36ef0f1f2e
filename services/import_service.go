package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"chadebebe.link/configs/configsdatabase"
	"chadebebe.link/configs/configslog"
	"chadebebe.link/models"
	"chadebebe.link/pkg/invitetoken"
	"chadebebe.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ImportServiceError é o tipo dos erros estruturais da importação, os que
// abortam o arquivo inteiro antes de qualquer escrita.
type ImportServiceError string

func (e ImportServiceError) Error() string { return string(e) }

const (
	ErrImportEmptyFile       ImportServiceError = "arquivo vazio ou ilegível"
	ErrImportMissingColumns  ImportServiceError = "colunas obrigatórias ausentes"
	ErrImportMultipleLeaders ImportServiceError = "grupos com mais de um líder definido"
)

// requiredColumns são as oito colunas obrigatórias do CSV, nessa grafia.
var requiredColumns = []string{
	"nome", "email", "telefone", "grupo",
	"tamanho_fralda", "quantidade_fralda", "crianca", "lider_grupo",
}

// ImportRowError é um erro de linha individual, devolvido como dado.
type ImportRowError struct {
	Linha int    `json:"linha"` // 1-based, contando o cabeçalho
	Nome  string `json:"nome"`
	Erro  string `json:"erro"`
}

// ImportResult é o resumo de uma importação. Erros de linha não derrubam a
// operação: importação é "melhor esforço, sucesso parcial".
type ImportResult struct {
	ConvidadosImportados int              `json:"convidadosImportados"`
	GruposAtualizados    int              `json:"gruposAtualizados"`
	Erros                []ImportRowError `json:"erros"`
}

// IImportService expõe a importação de convidados via CSV.
type IImportService interface {
	ImportGuestsCSV(ctx context.Context, file io.Reader) (*ImportResult, error)
}

type ImportService struct {
	guestRepo  repositories.IGuestRepository
	groupRepo  repositories.IGroupRepository
	identifier IIdentifierService
}

// NewImportService cria um ImportService com a conexão global.
func NewImportService() IImportService {
	return NewImportServiceTx(configsdatabase.GetDB())
}

// NewImportServiceTx cria um ImportService numa conexão específica.
func NewImportServiceTx(db *gorm.DB) IImportService {
	return &ImportService{
		guestRepo:  repositories.NewGuestRepositoryTx(db),
		groupRepo:  repositories.NewGroupRepositoryTx(db),
		identifier: NewIdentifierServiceTx(db),
	}
}

// importRow é uma linha do CSV já mapeada pelo cabeçalho e com células
// aparadas.
type importRow map[string]string

func (r importRow) isLeader() bool {
	return strings.EqualFold(r["lider_grupo"], "sim")
}

func (r importRow) groupName() string {
	return strings.TrimSpace(r["grupo"])
}

// parseRows lê o CSV inteiro: primeira linha é o cabeçalho, linhas em branco
// são ignoradas, células são aparadas.
func parseRows(file io.Reader) ([]string, []importRow, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrImportEmptyFile, err)
	}
	if len(records) == 0 {
		return nil, nil, ErrImportEmptyFile
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}

	rows := make([]importRow, 0, len(records)-1)
	for _, record := range records[1:] {
		blank := true
		row := make(importRow, len(header))
		for i, col := range header {
			value := ""
			if i < len(record) {
				value = strings.TrimSpace(record[i])
			}
			if value != "" {
				blank = false
			}
			row[col] = value
		}
		if blank {
			continue
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

// validateHeader confere as oito colunas obrigatórias e reporta todas as
// ausentes de uma vez.
func validateHeader(header []string) error {
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}
	var missing []string
	for _, col := range requiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrImportMissingColumns, strings.Join(missing, ", "))
	}
	return nil
}

// validateLeaders aborta a importação quando algum grupo tem mais de uma
// linha marcada como líder, nomeando todos os grupos problemáticos.
func validateLeaders(rows []importRow) error {
	leadersPerGroup := map[string]int{}
	var order []string
	for _, row := range rows {
		if row.groupName() != "" && row.isLeader() {
			if leadersPerGroup[row.groupName()] == 0 {
				order = append(order, row.groupName())
			}
			leadersPerGroup[row.groupName()]++
		}
	}
	var offenders []string
	for _, name := range order {
		if leadersPerGroup[name] > 1 {
			offenders = append(offenders, name)
		}
	}
	if len(offenders) > 0 {
		return fmt.Errorf("%w: %s", ErrImportMultipleLeaders, strings.Join(offenders, ", "))
	}
	return nil
}

// groupState acompanha um grupo resolvido durante a importação.
type groupState struct {
	id       uint
	leaderID *uint
}

// ImportGuestsCSV processa o arquivo em duas passadas: validações estruturais
// (abortam tudo), depois as linhas em ordem, acumulando erros por linha. Os
// líderes são aplicados só depois de todas as linhas, evitando referências
// para frente, e apenas em grupos ainda sem líder.
func (s *ImportService) ImportGuestsCSV(ctx context.Context, file io.Reader) (*ImportResult, error) {
	header, rows, err := parseRows(file)
	if err != nil {
		return nil, err
	}
	if err := validateHeader(header); err != nil {
		return nil, err
	}
	if err := validateLeaders(rows); err != nil {
		return nil, err
	}

	result := &ImportResult{Erros: []ImportRowError{}}
	groups := map[string]*groupState{}   // nome do grupo -> estado
	pendingLeaders := map[string]uint{}  // nome do grupo -> ID do novo líder
	var pendingOrder []string

	for index, row := range rows {
		line := index + 2 // 1-based, compensando o cabeçalho
		name := strings.TrimSpace(row["nome"])
		if name == "" {
			result.Erros = append(result.Erros, ImportRowError{Linha: line, Nome: row["nome"], Erro: "Nome é obrigatório"})
			continue
		}

		var groupID *uint
		if groupName := row.groupName(); groupName != "" {
			state, err := s.resolveGroup(ctx, groups, groupName)
			if err != nil {
				result.Erros = append(result.Erros, ImportRowError{Linha: line, Nome: name, Erro: err.Error()})
				continue
			}
			groupID = &state.id
		}

		guestSlug, err := s.identifier.GenerateUniqueGuestSlug(ctx, name)
		if err != nil {
			result.Erros = append(result.Erros, ImportRowError{Linha: line, Nome: name, Erro: err.Error()})
			continue
		}

		guest := models.Guest{
			Name:         name,
			Slug:         guestSlug,
			Email:        optionalString(row["email"]),
			Phone:        optionalString(row["telefone"]),
			GroupID:      groupID,
			GiftSize:     optionalString(row["tamanho_fralda"]),
			GiftQuantity: optionalInt(row["quantidade_fralda"]),
			IsChild:      strings.EqualFold(row["crianca"], "sim"),
			InviteLink:   invitetoken.NewUUID(),
		}
		if err := s.guestRepo.Create(ctx, &guest); err != nil {
			configslog.Log.Error("ImportGuestsCSV: erro ao criar convidado", zap.Int("linha", line), zap.Error(err))
			result.Erros = append(result.Erros, ImportRowError{Linha: line, Nome: name, Erro: ErrGuestCreationFailed.Error()})
			continue
		}
		result.ConvidadosImportados++

		if row.groupName() != "" && row.isLeader() {
			if _, seen := pendingLeaders[row.groupName()]; !seen {
				pendingOrder = append(pendingOrder, row.groupName())
			}
			pendingLeaders[row.groupName()] = guest.ID
		}
	}

	// Segunda passada: aplicar líderes em grupos que ainda não têm um.
	for _, groupName := range pendingOrder {
		state := groups[groupName]
		if state == nil || state.leaderID != nil {
			continue
		}
		leaderID := pendingLeaders[groupName]
		if err := s.groupRepo.SetLeader(ctx, state.id, &leaderID); err != nil {
			configslog.Log.Error("ImportGuestsCSV: erro ao definir líder",
				zap.String("grupo", groupName), zap.Error(err))
			continue
		}
		state.leaderID = &leaderID
		result.GruposAtualizados++
	}

	configslog.SLog.Infof("Importação concluída: %d convidados, %d grupos atualizados, %d erros",
		result.ConvidadosImportados, result.GruposAtualizados, len(result.Erros))
	return result, nil
}

// resolveGroup reaproveita um grupo já visto nesta importação, busca um
// existente pelo nome ou cria um novo com slug único e token legado.
func (s *ImportService) resolveGroup(ctx context.Context, groups map[string]*groupState, name string) (*groupState, error) {
	if state, ok := groups[name]; ok {
		return state, nil
	}

	existing, err := s.groupRepo.FindByName(ctx, name)
	if err == nil {
		state := &groupState{id: existing.ID, leaderID: existing.LeaderID}
		groups[name] = state
		return state, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	groupSlug, err := s.identifier.GenerateUniqueGroupSlug(ctx, name)
	if err != nil {
		return nil, err
	}
	group := models.Group{
		Name:       name,
		Slug:       groupSlug,
		InviteLink: invitetoken.NewPrefixed("group"),
	}
	if err := s.groupRepo.Create(ctx, &group); err != nil {
		return nil, ErrGroupCreationFailed
	}
	state := &groupState{id: group.ID}
	groups[name] = state
	return state, nil
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func optionalInt(value string) *int {
	if value == "" {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &parsed
}

var _ IImportService = (*ImportService)(nil)
