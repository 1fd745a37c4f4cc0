package repo

import (
	"time"

	"jobhunter"
	"jobhunter/internal/api/models"

	"gorm.io/gorm"
)

type SavedJobRepository struct {
	Db *gorm.DB
}

func NewSavedJobRepository() *SavedJobRepository {
	return &SavedJobRepository{Db: jobhunter.DB}
}

// FindAllByUser returns the user's jobs, newest first, with their application.
func (slf *SavedJobRepository) FindAllByUser(userID string) ([]models.SavedJob, error) {
	var jobs []models.SavedJob
	err := slf.Db.Preload("Application").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (slf *SavedJobRepository) FindByIDForUser(userID, id string) (models.SavedJob, error) {
	var job models.SavedJob
	err := slf.Db.Where("id = ? AND user_id = ?", id, userID).First(&job).Error
	return job, err
}

// FindDetailForUser loads a job with its application, tailored resumes and
// outreach emails.
func (slf *SavedJobRepository) FindDetailForUser(userID, id string) (models.SavedJob, error) {
	var job models.SavedJob
	err := slf.Db.
		Preload("Application").
		Preload("Application.Interviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("scheduled_at ASC")
		}).
		Preload("TailoredResumes").
		Preload("Emails", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("id = ? AND user_id = ?", id, userID).
		First(&job).Error
	return job, err
}

func (slf *SavedJobRepository) Create(job *models.SavedJob) error {
	return slf.Db.Create(job).Error
}

func (slf *SavedJobRepository) Update(job *models.SavedJob, patch map[string]any) error {
	return slf.Db.Model(job).Updates(patch).Error
}

// DeleteForUser removes the job and everything hanging off it. Outreach
// emails are kept and detached. Returns the number of jobs deleted.
func (slf *SavedJobRepository) DeleteForUser(userID, id string) (int64, error) {
	var deleted int64
	err := slf.Db.Transaction(func(tx *gorm.DB) error {
		var job models.SavedJob
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&job).Error; err != nil {
			return err
		}

		apps := tx.Model(&models.Application{}).Select("id").Where("job_id = ?", job.ID)
		if err := tx.Where("application_id IN (?)", apps).Delete(&models.Interview{}).Error; err != nil {
			return err
		}
		if err := tx.Where("job_id = ?", job.ID).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("job_id = ?", job.ID).Delete(&models.TailoredResume{}).Error; err != nil {
			return err
		}
		if err := tx.Where("job_id = ?", job.ID).Delete(&models.CoverLetter{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Email{}).Where("job_id = ?", job.ID).Update("job_id", nil).Error; err != nil {
			return err
		}

		res := tx.Delete(&job)
		deleted = res.RowsAffected
		return res.Error
	})
	return deleted, err
}

// CreationTimesByUser returns the creation time of every job of the user.
func (slf *SavedJobRepository) CreationTimesByUser(userID string) ([]time.Time, error) {
	var times []time.Time
	err := slf.Db.Model(&models.SavedJob{}).
		Where("user_id = ?", userID).
		Pluck("created_at", &times).Error
	return times, err
}
