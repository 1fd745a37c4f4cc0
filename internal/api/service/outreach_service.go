package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobhunter"
	"jobhunter/internal/api/handler/mapper"
	"jobhunter/internal/api/handler/request"
	"jobhunter/internal/api/handler/response"
	"jobhunter/internal/api/models"
	"jobhunter/internal/api/repo"
	"jobhunter/internal/apperr"
	"jobhunter/pkg"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const smtpNotConfigured = "SMTP not configured. Go to Settings to set up email."

type OutreachService struct {
	emailRepo      *repo.EmailRepository
	jobRepo        *repo.SavedJobRepository
	resumeRepo     *repo.ResumeRepository
	smtpRepo       *repo.SmtpConfigRepository
	outreachMapper mapper.OutreachMapper
	llm            pkg.Completer
	mailer         pkg.Mailer
	logger         zerolog.Logger
	now            func() time.Time
}

func NewOutreachService() *OutreachService {
	return &OutreachService{
		emailRepo:      repo.NewEmailRepository(),
		jobRepo:        repo.NewSavedJobRepository(),
		resumeRepo:     repo.NewResumeRepository(),
		smtpRepo:       repo.NewSmtpConfigRepository(),
		outreachMapper: mapper.NewOutreachMapper(),
		llm:            pkg.DefaultCompleter(),
		mailer:         pkg.NewSMTPMailer(),
		logger:         jobhunter.Logger,
		now:            time.Now,
	}
}

type outreachReply struct {
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	PlainText string `json:"plainText"`
}

func (slf *OutreachService) List(userID string) ([]models.Email, error) {
	emails, err := slf.emailRepo.FindAllByUser(userID)
	if err != nil {
		slf.logger.Error().Err(err).Str("userId", userID).Msg("Error listing emails")
		return nil, err
	}
	return emails, nil
}

func (slf *OutreachService) Get(userID, id string) (models.Email, error) {
	email, err := slf.emailRepo.FindByIDForUser(userID, id)
	if err != nil {
		return models.Email{}, notFound(err, "email")
	}
	return email, nil
}

func (slf *OutreachService) Create(userID string, req request.CreateEmail) (models.Email, error) {
	if req.JobID != nil && *req.JobID != "" {
		if _, err := slf.jobRepo.FindByIDForUser(userID, *req.JobID); err != nil {
			return models.Email{}, notFound(err, "job")
		}
	}

	email := slf.outreachMapper.CreateEmail(userID, req)
	if err := slf.emailRepo.Create(&email); err != nil {
		slf.logger.Error().Err(err).Str("userId", userID).Msg("Error creating email")
		return models.Email{}, err
	}
	return email, nil
}

// Update edits a draft or failed email. Sent emails are immutable.
func (slf *OutreachService) Update(userID, id string, req request.UpdateEmail) (models.Email, error) {
	email, err := slf.emailRepo.FindByIDForUser(userID, id)
	if err != nil {
		return models.Email{}, notFound(err, "email")
	}
	if email.Status == models.EmailSent {
		return models.Email{}, apperr.Conflict("email has already been sent and can no longer be edited")
	}

	if patch := slf.outreachMapper.PatchEmail(req); len(patch) > 0 {
		if err := slf.emailRepo.Update(&models.Email{Model: email.Model}, patch); err != nil {
			slf.logger.Error().Err(err).Str("emailId", id).Msg("Error updating email")
			return models.Email{}, err
		}
	}
	return slf.Get(userID, id)
}

func (slf *OutreachService) Delete(userID, id string) error {
	rows, err := slf.emailRepo.DeleteForUser(userID, id)
	return requireDeleted(rows, err, "email")
}

// Generate drafts an outreach email with the model and stores it as a draft.
func (slf *OutreachService) Generate(ctx context.Context, userID string, req request.GenerateEmail) (response.GeneratedEmail, error) {
	job, err := slf.jobRepo.FindByIDForUser(userID, req.JobID)
	if err != nil {
		return response.GeneratedEmail{}, notFound(err, "job")
	}

	summary := fmt.Sprintf("Candidate interested in %s at %s", job.Title, job.Company)
	if req.ResumeID != "" {
		resume, err := slf.resumeRepo.FindByIDForUser(userID, req.ResumeID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return response.GeneratedEmail{}, err
		}
		if err == nil {
			summary = candidateSummary(resume)
		}
	}

	tone := req.Tone
	if tone == "" {
		tone = defaultTone
	}

	prompt, err := pkg.OutreachEmailPrompt(pkg.OutreachEmailInput{
		CandidateSummary: summary,
		JobTitle:         job.Title,
		Company:          job.Company,
		RecipientName:    req.RecipientName,
		Tone:             tone,
	})
	if err != nil {
		return response.GeneratedEmail{}, err
	}

	completion, err := slf.llm.Complete(ctx, prompt.System, prompt.User, pkg.CompletionOptions{})
	if err != nil {
		slf.logger.Error().Err(err).Str("jobId", job.ID).Msg("Outreach generation failed")
		return response.GeneratedEmail{}, err
	}
	reply, err := pkg.DecodeCompletion[outreachReply](completion.Text)
	if err != nil {
		return response.GeneratedEmail{}, err
	}

	email := models.Email{
		UserID:         userID,
		JobID:          pkg.ToPtr(job.ID),
		RecipientEmail: req.RecipientEmail,
		RecipientName:  pkg.NilIfBlank(req.RecipientName),
		Subject:        reply.Subject,
		Body:           reply.Body,
		Status:         models.EmailDraft,
	}
	if err := slf.emailRepo.Create(&email); err != nil {
		slf.logger.Error().Err(err).Str("userId", userID).Msg("Error storing generated email")
		return response.GeneratedEmail{}, err
	}

	return response.GeneratedEmail{
		ID:        email.ID,
		Subject:   reply.Subject,
		Body:      reply.Body,
		PlainText: reply.PlainText,
	}, nil
}

// Send delivers a draft or previously failed email through the user's SMTP
// server. The outcome is recorded on the email either way.
func (slf *OutreachService) Send(ctx context.Context, userID, emailID string) (response.SendResult, error) {
	email, err := slf.emailRepo.FindByIDForUser(userID, emailID)
	if err != nil {
		return response.SendResult{}, notFound(err, "email")
	}
	if email.Status == models.EmailSent {
		return response.SendResult{}, apperr.Conflict("email has already been sent")
	}

	cfg, err := slf.smtpRepo.FindByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.SendResult{}, slf.markFailed(userID, email, apperr.External(nil, smtpNotConfigured))
	}
	if err != nil {
		return response.SendResult{}, err
	}

	messageID, err := slf.mailer.Send(ctx, smtpSettings(cfg), pkg.MailMessage{
		To:      email.RecipientEmail,
		Subject: email.Subject,
		HTML:    email.Body,
	})
	if err != nil {
		return response.SendResult{}, slf.markFailed(userID, email, apperr.External(err, "failed to send email"))
	}

	if err := slf.emailRepo.Update(&models.Email{Model: email.Model}, map[string]any{
		"status":        models.EmailSent,
		"sent_at":       slf.now().UTC(),
		"message_id":    pkg.NilIfBlank(messageID),
		"error_message": nil,
	}); err != nil {
		slf.logger.Error().Err(err).Str("emailId", emailID).Msg("Error recording sent email")
		return response.SendResult{}, err
	}

	slf.logger.Info().Str("userId", userID).Str("emailId", emailID).Str("messageId", messageID).Msg("Email sent")
	pkg.PublishActivity(userID, pkg.ActivityEmailSent, map[string]any{"emailId": emailID, "messageId": messageID})
	return response.SendResult{Success: true, MessageID: messageID}, nil
}

// markFailed records sendErr on the email and returns it.
func (slf *OutreachService) markFailed(userID string, email models.Email, sendErr error) error {
	slf.logger.Warn().Err(sendErr).Str("emailId", email.ID).Msg("Email send failed")

	if err := slf.emailRepo.Update(&models.Email{Model: email.Model}, map[string]any{
		"status":        models.EmailFailed,
		"error_message": sendErr.Error(),
	}); err != nil {
		slf.logger.Error().Err(err).Str("emailId", email.ID).Msg("Error recording failed email")
		return err
	}

	pkg.PublishActivity(userID, pkg.ActivityEmailFailed, map[string]any{"emailId": email.ID, "error": sendErr.Error()})
	return sendErr
}

func smtpSettings(cfg models.SmtpConfig) pkg.SmtpSettings {
	return pkg.SmtpSettings{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Secure:   cfg.Secure,
		Username: cfg.Username,
		Password: cfg.Password,
		FromName: pkg.FromPtr(cfg.FromName),
	}
}
