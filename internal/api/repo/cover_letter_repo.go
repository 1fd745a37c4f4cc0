package repo

import (
	"jobhunter"
	"jobhunter/internal/api/models"

	"gorm.io/gorm"
)

type CoverLetterRepository struct {
	Db *gorm.DB
}

func NewCoverLetterRepository() *CoverLetterRepository {
	return &CoverLetterRepository{Db: jobhunter.DB}
}

// FindAllByUser lists letters newest version first, optionally for one job.
func (slf *CoverLetterRepository) FindAllByUser(userID, jobID string) ([]models.CoverLetter, error) {
	query := slf.Db.Preload("Job").Where("user_id = ?", userID)
	if jobID != "" {
		query = query.Where("job_id = ?", jobID)
	}

	var letters []models.CoverLetter
	err := query.Order("created_at DESC").Order("version DESC").Find(&letters).Error
	return letters, err
}

func (slf *CoverLetterRepository) FindByIDForUser(userID, id string) (models.CoverLetter, error) {
	var letter models.CoverLetter
	err := slf.Db.Preload("Job").Where("id = ? AND user_id = ?", id, userID).First(&letter).Error
	return letter, err
}

// CreateNextVersion stores letter as version max(version)+1 of its
// (UserID, JobID) pair. The unique index on the triple rejects a concurrent
// writer that computed the same version.
func (slf *CoverLetterRepository) CreateNextVersion(letter *models.CoverLetter) error {
	return slf.Db.Transaction(func(tx *gorm.DB) error {
		var current int
		err := tx.Model(&models.CoverLetter{}).
			Where("user_id = ? AND job_id = ?", letter.UserID, letter.JobID).
			Select("COALESCE(MAX(version), 0)").
			Scan(&current).Error
		if err != nil {
			return err
		}
		letter.Version = current + 1
		return tx.Create(letter).Error
	})
}

func (slf *CoverLetterRepository) Update(letter *models.CoverLetter, patch map[string]any) error {
	return slf.Db.Model(letter).Updates(patch).Error
}

func (slf *CoverLetterRepository) DeleteForUser(userID, id string) (int64, error) {
	res := slf.Db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.CoverLetter{})
	return res.RowsAffected, res.Error
}
