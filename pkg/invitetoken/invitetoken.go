// Package invitetoken gera os tokens aleatórios legados usados nos links de
// convite emitidos antes da introdução dos slugs. Novos registros ainda
// recebem um token para manter o campo preenchido e único.
package invitetoken

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// New retorna um token no formato legado: 13 caracteres base36 aleatórios,
// um hífen e o timestamp atual em base36.
func New() string {
	return randBase36(13) + "-" + strconv.FormatInt(time.Now().UnixMilli(), 36)
}

// NewPrefixed retorna um token legado com um prefixo, por exemplo
// "group-<token>" para grupos criados via importação.
func NewPrefixed(prefix string) string {
	return prefix + "-" + New()
}

// NewUUID retorna um token UUID v4, o formato usado para convidados criados
// pela importação de CSV.
func NewUUID() string {
	return uuid.NewString()
}

func randBase36(n int) string {
	max := big.NewInt(int64(len(base36Alphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand só falha se a fonte de entropia do sistema falhar
			panic(err)
		}
		b[i] = base36Alphabet[idx.Int64()]
	}
	return string(b)
}
