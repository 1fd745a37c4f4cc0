package repo

import (
	"jobhunter"
	"jobhunter/internal/api/models"

	"gorm.io/gorm"
)

type ApplicationRepository struct {
	Db *gorm.DB
}

func NewApplicationRepository() *ApplicationRepository {
	return &ApplicationRepository{Db: jobhunter.DB}
}

// WithTx returns a repository bound to tx.
func (slf *ApplicationRepository) WithTx(tx *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{Db: tx}
}

func (slf *ApplicationRepository) FindAllByUser(userID string) ([]models.Application, error) {
	var apps []models.Application
	err := slf.Db.Preload("Job").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&apps).Error
	return apps, err
}

// FindAllByUserOldestFirst is the ordering the analytics report relies on.
func (slf *ApplicationRepository) FindAllByUserOldestFirst(userID string) ([]models.Application, error) {
	var apps []models.Application
	err := slf.Db.Preload("Job").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&apps).Error
	return apps, err
}

func (slf *ApplicationRepository) FindByIDForUser(userID, id string) (models.Application, error) {
	var app models.Application
	err := slf.Db.
		Preload("Job").
		Preload("Interviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("scheduled_at ASC")
		}).
		Where("id = ? AND user_id = ?", id, userID).
		First(&app).Error
	return app, err
}

func (slf *ApplicationRepository) ExistsForJob(userID, jobID string) (bool, error) {
	var count int64
	err := slf.Db.Model(&models.Application{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&count).Error
	return count > 0, err
}

func (slf *ApplicationRepository) Create(app *models.Application) error {
	return slf.Db.Create(app).Error
}

func (slf *ApplicationRepository) Update(app *models.Application, patch map[string]any) error {
	return slf.Db.Model(app).Updates(patch).Error
}

func (slf *ApplicationRepository) DeleteForUser(userID, id string) (int64, error) {
	var deleted int64
	err := slf.Db.Transaction(func(tx *gorm.DB) error {
		owned := tx.Model(&models.Application{}).Select("id").Where("id = ? AND user_id = ?", id, userID)
		if err := tx.Where("application_id IN (?)", owned).Delete(&models.Interview{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Application{})
		deleted = res.RowsAffected
		return res.Error
	})
	return deleted, err
}
