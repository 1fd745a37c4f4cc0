package repo

import (
	"strings"

	"jobhunter"
	"jobhunter/internal/api/models"

	"gorm.io/gorm"
)

type ContactRepository struct {
	Db *gorm.DB
}

type ContactFilter struct {
	RelationshipType string
	Search           string
}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{Db: jobhunter.DB}
}

func latestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("date DESC")
}

// FindAllByUser returns matching contacts ordered by last update, with
// their interactions newest first.
func (slf *ContactRepository) FindAllByUser(userID string, filter ContactFilter) ([]models.Contact, error) {
	query := slf.Db.Preload("Interactions", latestFirst).Where("user_id = ?", userID)
	if filter.RelationshipType != "" {
		query = query.Where("relationship_type = ?", filter.RelationshipType)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(company) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern, pattern)
	}

	var contacts []models.Contact
	err := query.Order("updated_at DESC").Find(&contacts).Error
	return contacts, err
}

func (slf *ContactRepository) FindByIDForUser(userID, id string) (models.Contact, error) {
	var contact models.Contact
	err := slf.Db.Preload("Interactions", latestFirst).
		Where("id = ? AND user_id = ?", id, userID).
		First(&contact).Error
	return contact, err
}

func (slf *ContactRepository) Create(contact *models.Contact) error {
	return slf.Db.Create(contact).Error
}

func (slf *ContactRepository) Update(contact *models.Contact, patch map[string]any) error {
	return slf.Db.Model(contact).Updates(patch).Error
}

func (slf *ContactRepository) DeleteForUser(userID, id string) (int64, error) {
	var deleted int64
	err := slf.Db.Transaction(func(tx *gorm.DB) error {
		owned := tx.Model(&models.Contact{}).Select("id").Where("id = ? AND user_id = ?", id, userID)
		if err := tx.Where("contact_id IN (?)", owned).Delete(&models.ContactInteraction{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Contact{})
		deleted = res.RowsAffected
		return res.Error
	})
	return deleted, err
}

func (slf *ContactRepository) FindInteractions(contactID string) ([]models.ContactInteraction, error) {
	var interactions []models.ContactInteraction
	err := slf.Db.Where("contact_id = ?", contactID).Order("date DESC").Find(&interactions).Error
	return interactions, err
}

// AddInteraction stores the interaction and bumps the contact's updated_at
// so recently contacted people sort first.
func (slf *ContactRepository) AddInteraction(contact *models.Contact, interaction *models.ContactInteraction) error {
	return slf.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(interaction).Error; err != nil {
			return err
		}
		return tx.Model(contact).Update("updated_at", tx.NowFunc()).Error
	})
}
