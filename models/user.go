package models

// User é o usuário administrador do painel. Criado via seeder, nunca pelos
// fluxos públicos de confirmação.
type User struct {
	BaseModel
	Name     string `gorm:"type:varchar(150);not null"`
	Email    string `gorm:"type:varchar(150);uniqueIndex;not null"`
	Password string `gorm:"type:varchar(255);not null" json:"-"` // hash bcrypt
	Role     string `gorm:"type:varchar(20);not null;default:'admin'"`
}
