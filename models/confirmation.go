package models

import "time"

// Confirmation é o registro de RSVP. Pertence a exatamente um convidado OU a
// um grupo (nunca ambos); a ausência de registro significa "nunca respondeu".
// Os índices únicos em GuestID/GroupID garantem no máximo um registro por dono.
type Confirmation struct {
	BaseModel
	GuestID          *uint      `gorm:"uniqueIndex" json:"guestId"`
	GroupID          *uint      `gorm:"uniqueIndex" json:"groupId"`
	Confirmed        bool       `gorm:"not null;default:false;index" json:"confirmed"`
	NumberOfPeople   *int       `gorm:"type:integer" json:"numberOfPeople"`
	Notes            *string    `gorm:"type:text" json:"notes"`
	ConfirmationDate *time.Time `json:"confirmationDate"`

	Guest *Guest `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
	Group *Group `gorm:"foreignKey:GroupID" json:"group,omitempty"`
}
