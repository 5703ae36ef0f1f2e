package models

// Group é um conjunto nomeado de convidados, com um líder opcional que
// confirma em nome de todos. O líder, quando definido, precisa ser membro do
// próprio grupo (regra garantida na camada de serviço).
type Group struct {
	BaseModel
	Name        string  `gorm:"type:varchar(150);not null;index" json:"name"`
	Slug        string  `gorm:"type:varchar(180);uniqueIndex;not null" json:"slug"`
	Description *string `gorm:"type:text" json:"description"`
	InviteLink  string  `gorm:"type:varchar(60);uniqueIndex;not null" json:"inviteLink"`
	LeaderID    *uint   `gorm:"index" json:"leaderId"`

	Guests       []Guest       `gorm:"foreignKey:GroupID" json:"guests,omitempty"`
	Leader       *Guest        `gorm:"foreignKey:LeaderID" json:"leader,omitempty"`
	Confirmation *Confirmation `gorm:"foreignKey:GroupID" json:"confirmation,omitempty"`
}
