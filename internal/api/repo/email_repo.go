package repo

import (
	"jobhunter"
	"jobhunter/internal/api/models"

	"gorm.io/gorm"
)

type EmailRepository struct {
	Db *gorm.DB
}

func NewEmailRepository() *EmailRepository {
	return &EmailRepository{Db: jobhunter.DB}
}

func (slf *EmailRepository) FindAllByUser(userID string) ([]models.Email, error) {
	var emails []models.Email
	err := slf.Db.Preload("Job").Where("user_id = ?", userID).Order("created_at DESC").Find(&emails).Error
	return emails, err
}

func (slf *EmailRepository) FindByIDForUser(userID, id string) (models.Email, error) {
	var email models.Email
	err := slf.Db.Preload("Job").Where("id = ? AND user_id = ?", id, userID).First(&email).Error
	return email, err
}

func (slf *EmailRepository) Create(email *models.Email) error {
	return slf.Db.Create(email).Error
}

func (slf *EmailRepository) Update(email *models.Email, patch map[string]any) error {
	return slf.Db.Model(email).Updates(patch).Error
}

func (slf *EmailRepository) DeleteForUser(userID, id string) (int64, error) {
	res := slf.Db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Email{})
	return res.RowsAffected, res.Error
}
