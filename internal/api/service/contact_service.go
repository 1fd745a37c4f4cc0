package service

import (
	"strings"

	"jobhunter"
	"jobhunter/internal/api/handler/mapper"
	"jobhunter/internal/api/handler/request"
	"jobhunter/internal/api/models"
	"jobhunter/internal/api/repo"

	"github.com/rs/zerolog"
)

type ContactService struct {
	contactRepo   *repo.ContactRepository
	contactMapper mapper.ContactMapper
	logger        zerolog.Logger
}

func NewContactService() *ContactService {
	return &ContactService{
		contactRepo:   repo.NewContactRepository(),
		contactMapper: mapper.NewContactMapper(),
		logger:        jobhunter.Logger,
	}
}

// List filters by relationship type ("all" or "" for any) and by a case
// insensitive search over name, company and email. Each contact carries only
// its latest interaction.
func (slf *ContactService) List(userID, relationshipType, search string) ([]models.Contact, error) {
	filter := repo.ContactFilter{Search: strings.TrimSpace(search)}
	if relationshipType != "all" {
		filter.RelationshipType = relationshipType
	}

	contacts, err := slf.contactRepo.FindAllByUser(userID, filter)
	if err != nil {
		slf.logger.Error().Err(err).Str("userId", userID).Msg("Error listing contacts")
		return nil, err
	}
	for i := range contacts {
		if len(contacts[i].Interactions) > 1 {
			contacts[i].Interactions = contacts[i].Interactions[:1]
		}
	}
	return contacts, nil
}

func (slf *ContactService) Get(userID, id string) (models.Contact, error) {
	contact, err := slf.contactRepo.FindByIDForUser(userID, id)
	if err != nil {
		return models.Contact{}, notFound(err, "contact")
	}
	return contact, nil
}

func (slf *ContactService) Create(userID string, req request.CreateContact) (models.Contact, error) {
	contact := slf.contactMapper.CreateContact(userID, req)
	if err := slf.contactRepo.Create(&contact); err != nil {
		slf.logger.Error().Err(err).Str("userId", userID).Msg("Error creating contact")
		return models.Contact{}, err
	}
	return contact, nil
}

func (slf *ContactService) Update(userID, id string, req request.UpdateContact) (models.Contact, error) {
	contact, err := slf.contactRepo.FindByIDForUser(userID, id)
	if err != nil {
		return models.Contact{}, notFound(err, "contact")
	}

	if patch := slf.contactMapper.PatchContact(req); len(patch) > 0 {
		if err := slf.contactRepo.Update(&models.Contact{Model: contact.Model}, patch); err != nil {
			slf.logger.Error().Err(err).Str("contactId", id).Msg("Error updating contact")
			return models.Contact{}, err
		}
	}
	return slf.Get(userID, id)
}

func (slf *ContactService) Delete(userID, id string) error {
	rows, err := slf.contactRepo.DeleteForUser(userID, id)
	return requireDeleted(rows, err, "contact")
}

func (slf *ContactService) ListInteractions(userID, contactID string) ([]models.ContactInteraction, error) {
	if _, err := slf.contactRepo.FindByIDForUser(userID, contactID); err != nil {
		return nil, notFound(err, "contact")
	}
	return slf.contactRepo.FindInteractions(contactID)
}

func (slf *ContactService) AddInteraction(userID, contactID string, req request.CreateInteraction) (models.ContactInteraction, error) {
	contact, err := slf.contactRepo.FindByIDForUser(userID, contactID)
	if err != nil {
		return models.ContactInteraction{}, notFound(err, "contact")
	}

	interaction := slf.contactMapper.CreateInteraction(contactID, req)
	if err := slf.contactRepo.AddInteraction(&models.Contact{Model: contact.Model}, &interaction); err != nil {
		slf.logger.Error().Err(err).Str("contactId", contactID).Msg("Error adding interaction")
		return models.ContactInteraction{}, err
	}
	return interaction, nil
}
