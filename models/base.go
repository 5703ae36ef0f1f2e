package models

import "time"

// BaseModel é embutido por todos os modelos.
// Exclusões são físicas (o cadastro de convidados é pequeno e as regras de
// cascata do domínio removem os registros dependentes explicitamente).
type BaseModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
