package models

// Guest é um convidado individual do evento.
// Slug é o identificador público preferido; InviteLink é o token aleatório
// legado, mantido para links emitidos antes da introdução dos slugs.
type Guest struct {
	BaseModel
	Name         string  `gorm:"type:varchar(150);not null" json:"name"`
	Slug         string  `gorm:"type:varchar(180);uniqueIndex;not null" json:"slug"`
	Email        *string `gorm:"type:varchar(150)" json:"email"`
	Phone        *string `gorm:"type:varchar(30)" json:"phone"`
	GroupID      *uint   `gorm:"index" json:"groupId"`
	GiftSize     *string `gorm:"type:varchar(10)" json:"giftSize"`     // tamanho do pacote de fraldas
	GiftQuantity *int    `gorm:"type:integer" json:"giftQuantity"`     // pacotes prometidos
	IsChild      bool    `gorm:"not null;default:false" json:"isChild"`
	InviteLink   string  `gorm:"type:varchar(60);uniqueIndex;not null" json:"inviteLink"`

	Group         *Group        `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	Confirmation  *Confirmation `gorm:"foreignKey:GuestID" json:"confirmation,omitempty"`
	LeadingGroups []Group       `gorm:"foreignKey:LeaderID" json:"leadingGroups,omitempty"`
}
