package mapper

import (
	"jobhunter/internal/api/handler/request"
	"jobhunter/internal/api/models"
	"jobhunter/pkg"

	"gorm.io/datatypes"
)

type ContactMapper interface {
	CreateContact(userID string, req request.CreateContact) models.Contact
	CreateInteraction(contactID string, req request.CreateInteraction) models.ContactInteraction

	// patch
	PatchContact(req request.UpdateContact) map[string]any
}

type ContactMapperImpl struct{}

func (m ContactMapperImpl) CreateContact(userID string, req request.CreateContact) models.Contact {
	contact := models.Contact{
		UserID:           userID,
		Name:             req.Name,
		Company:          nilIfBlankPtr(req.Company),
		Role:             nilIfBlankPtr(req.Role),
		Email:            nilIfBlankPtr(req.Email),
		Phone:            nilIfBlankPtr(req.Phone),
		LinkedInURL:      nilIfBlankPtr(req.LinkedInURL),
		RelationshipType: req.RelationshipType,
		Notes:            nilIfBlankPtr(req.Notes),
	}
	if contact.RelationshipType == "" {
		contact.RelationshipType = models.DefaultRelationshipType
	}
	if len(req.Tags) > 0 {
		contact.Tags = datatypes.JSONSlice[string](req.Tags)
	}
	return contact
}

func (m ContactMapperImpl) CreateInteraction(contactID string, req request.CreateInteraction) models.ContactInteraction {
	return models.ContactInteraction{
		ContactID:  contactID,
		Type:       req.Type,
		Date:       req.Date.UTC(),
		Notes:      nilIfBlankPtr(req.Notes),
		NextAction: nilIfBlankPtr(req.NextAction),
	}
}

func (m ContactMapperImpl) PatchContact(req request.UpdateContact) map[string]any {
	patch := map[string]any{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.Company != nil {
		patch["company"] = pkg.NilIfBlank(*req.Company)
	}
	if req.Role != nil {
		patch["role"] = pkg.NilIfBlank(*req.Role)
	}
	if req.Email != nil {
		patch["email"] = pkg.NilIfBlank(*req.Email)
	}
	if req.Phone != nil {
		patch["phone"] = pkg.NilIfBlank(*req.Phone)
	}
	if req.LinkedInURL != nil {
		patch["linkedin_url"] = pkg.NilIfBlank(*req.LinkedInURL)
	}
	if req.RelationshipType != nil {
		patch["relationship_type"] = *req.RelationshipType
	}
	if req.Notes != nil {
		patch["notes"] = pkg.NilIfBlank(*req.Notes)
	}
	if req.Tags != nil {
		patch["tags"] = datatypes.JSONSlice[string](*req.Tags)
	}
	return patch
}

func NewContactMapper() ContactMapper {
	return &ContactMapperImpl{}
}
