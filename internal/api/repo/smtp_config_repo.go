package repo

import (
	"jobhunter"
	"jobhunter/internal/api/models"

	"gorm.io/gorm"
)

type SmtpConfigRepository struct {
	Db *gorm.DB
}

func NewSmtpConfigRepository() *SmtpConfigRepository {
	return &SmtpConfigRepository{Db: jobhunter.DB}
}

func (slf *SmtpConfigRepository) FindByUser(userID string) (models.SmtpConfig, error) {
	var cfg models.SmtpConfig
	err := slf.Db.Where("user_id = ?", userID).First(&cfg).Error
	return cfg, err
}

// Save inserts the config or updates it in place when it already has an ID.
func (slf *SmtpConfigRepository) Save(cfg *models.SmtpConfig) error {
	if cfg.ID == "" {
		return slf.Db.Create(cfg).Error
	}
	return slf.Db.Save(cfg).Error
}
