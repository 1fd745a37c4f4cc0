package repo

import (
	"time"

	"jobhunter"
	"jobhunter/internal/api/models"

	"gorm.io/gorm"
)

type InterviewRepository struct {
	Db *gorm.DB
}

type InterviewFilter struct {
	Status   string
	Upcoming bool
	Now      time.Time
}

func NewInterviewRepository() *InterviewRepository {
	return &InterviewRepository{Db: jobhunter.DB}
}

func (slf *InterviewRepository) WithTx(tx *gorm.DB) *InterviewRepository {
	return &InterviewRepository{Db: tx}
}

// ownedBy restricts interviews to those whose application belongs to userID.
func (slf *InterviewRepository) ownedBy(userID string) *gorm.DB {
	owned := slf.Db.Model(&models.Application{}).Select("id").Where("user_id = ?", userID)
	return slf.Db.Where("application_id IN (?)", owned)
}

func (slf *InterviewRepository) FindAllByUser(userID string, filter InterviewFilter) ([]models.Interview, error) {
	query := slf.ownedBy(userID).Preload("Application.Job")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Upcoming {
		query = query.Where("scheduled_at >= ? AND status = ?", filter.Now, models.InterviewScheduled)
	}

	var interviews []models.Interview
	err := query.Order("scheduled_at ASC").Find(&interviews).Error
	return interviews, err
}

func (slf *InterviewRepository) FindByIDForUser(userID, id string) (models.Interview, error) {
	var interview models.Interview
	err := slf.ownedBy(userID).
		Preload("Application.Job").
		Where("id = ?", id).
		First(&interview).Error
	return interview, err
}

func (slf *InterviewRepository) Create(interview *models.Interview) error {
	return slf.Db.Create(interview).Error
}

func (slf *InterviewRepository) Update(interview *models.Interview, patch map[string]any) error {
	return slf.Db.Model(interview).Updates(patch).Error
}

func (slf *InterviewRepository) DeleteForUser(userID, id string) (int64, error) {
	res := slf.ownedBy(userID).Where("id = ?", id).Delete(&models.Interview{})
	return res.RowsAffected, res.Error
}
