package models

const DefaultSmtpPort = 587

type SmtpConfig struct {
	Model
	UserID   string  `gorm:"size:36;not null;uniqueIndex"`
	Host     string  `gorm:"not null"`
	Port     int     `gorm:"not null;default:587"`
	Secure   bool    `gorm:"not null;default:false"`
	Username string  `gorm:"not null"`
	Password string  `gorm:"not null"`
	FromName *string `gorm:"column:from_name"`
}
