package mapper

import (
	"jobhunter/internal/api/handler/request"
	"jobhunter/internal/api/handler/response"
	"jobhunter/internal/api/models"
	"jobhunter/pkg"
)

type OutreachMapper interface {
	CreateEmail(userID string, req request.CreateEmail) models.Email

	// patch
	PatchEmail(req request.UpdateEmail) map[string]any

	ToSmtpSettings(cfg models.SmtpConfig) response.SmtpSettings
}

type OutreachMapperImpl struct{}

func (m OutreachMapperImpl) CreateEmail(userID string, req request.CreateEmail) models.Email {
	return models.Email{
		UserID:         userID,
		JobID:          nilIfBlankPtr(req.JobID),
		RecipientEmail: req.RecipientEmail,
		RecipientName:  nilIfBlankPtr(req.RecipientName),
		Subject:        req.Subject,
		Body:           req.Body,
		Status:         models.EmailDraft,
	}
}

func (m OutreachMapperImpl) PatchEmail(req request.UpdateEmail) map[string]any {
	patch := map[string]any{}
	if req.Subject != nil {
		patch["subject"] = *req.Subject
	}
	if req.Body != nil {
		patch["body"] = *req.Body
	}
	if req.RecipientEmail != nil {
		patch["recipient_email"] = *req.RecipientEmail
	}
	if req.RecipientName != nil {
		patch["recipient_name"] = pkg.NilIfBlank(*req.RecipientName)
	}
	return patch
}

// ToSmtpSettings never exposes the stored password.
func (m OutreachMapperImpl) ToSmtpSettings(cfg models.SmtpConfig) response.SmtpSettings {
	return response.SmtpSettings{
		ID:        cfg.ID,
		Host:      cfg.Host,
		Port:      cfg.Port,
		Secure:    cfg.Secure,
		Username:  cfg.Username,
		Password:  response.MaskedPassword,
		FromName:  cfg.FromName,
		CreatedAt: cfg.CreatedAt,
		UpdatedAt: cfg.UpdatedAt,
	}
}

func NewOutreachMapper() OutreachMapper {
	return &OutreachMapperImpl{}
}
