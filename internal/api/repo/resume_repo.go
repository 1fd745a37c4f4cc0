package repo

import (
	"jobhunter"
	"jobhunter/internal/api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ResumeRepository struct {
	Db *gorm.DB
}

func NewResumeRepository() *ResumeRepository {
	return &ResumeRepository{Db: jobhunter.DB}
}

func (slf *ResumeRepository) FindAllByUser(userID string) ([]models.Resume, error) {
	var resumes []models.Resume
	err := slf.Db.Where("user_id = ?", userID).Order("created_at DESC").Find(&resumes).Error
	return resumes, err
}

func (slf *ResumeRepository) FindByIDForUser(userID, id string) (models.Resume, error) {
	var resume models.Resume
	err := slf.Db.Preload("TailoredResumes").
		Where("id = ? AND user_id = ?", id, userID).
		First(&resume).Error
	return resume, err
}

func (slf *ResumeRepository) FindLatestForUser(userID string) (models.Resume, error) {
	var resume models.Resume
	err := slf.Db.Where("user_id = ?", userID).Order("created_at DESC").First(&resume).Error
	return resume, err
}

func (slf *ResumeRepository) Create(resume *models.Resume) error {
	return slf.Db.Create(resume).Error
}

func (slf *ResumeRepository) Update(resume *models.Resume, patch map[string]any) error {
	return slf.Db.Model(resume).Updates(patch).Error
}

func (slf *ResumeRepository) DeleteForUser(userID, id string) (int64, error) {
	var deleted int64
	err := slf.Db.Transaction(func(tx *gorm.DB) error {
		owned := tx.Model(&models.Resume{}).Select("id").Where("id = ? AND user_id = ?", id, userID)
		if err := tx.Where("resume_id IN (?)", owned).Delete(&models.TailoredResume{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Resume{})
		deleted = res.RowsAffected
		return res.Error
	})
	return deleted, err
}

// UpsertTailored inserts or replaces the tailored resume for (ResumeID,
// JobID) in a single statement and returns the stored row.
func (slf *ResumeRepository) UpsertTailored(tailored *models.TailoredResume) (models.TailoredResume, error) {
	err := slf.Db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "resume_id"}, {Name: "job_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"tailored_text", "tailored_parsed", "match_score", "suggestions", "updated_at"}),
	}).Create(tailored).Error
	if err != nil {
		return models.TailoredResume{}, err
	}

	var stored models.TailoredResume
	err = slf.Db.Where("resume_id = ? AND job_id = ?", tailored.ResumeID, tailored.JobID).First(&stored).Error
	return stored, err
}
