package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobhunter/internal/api/handler/request"
	"jobhunter/internal/api/models"
	"jobhunter/internal/apperr"
	"jobhunter/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saveTestSmtp(t *testing.T, userID string) {
	t.Helper()
	_, err := NewSmtpService().Save(userID, request.SmtpSettings{
		Host:     "smtp.example.test",
		Username: "me@example.test",
		Password: "app-password",
		FromName: pkg.ToPtr("Jane Doe"),
	})
	require.NoError(t, err)
}

func createTestEmail(t *testing.T, userID string) models.Email {
	t.Helper()
	email, err := NewOutreachService().Create(userID, request.CreateEmail{
		RecipientEmail: "hr@acme.test",
		Subject:        "Hello",
		Body:           "<p>Hi there</p>",
	})
	require.NoError(t, err)
	return email
}

func TestOutreach_CreateIsDraft(t *testing.T) {
	setupTestDB(t)
	userID := createTestUser(t)

	email := createTestEmail(t, userID)
	assert.Equal(t, models.EmailDraft, email.Status)
	assert.Nil(t, email.JobID)
	assert.Nil(t, email.SentAt)
}

func TestOutreach_CreateForForeignJob(t *testing.T) {
	setupTestDB(t)
	job := createTestJob(t, createTestUser(t))

	_, err := NewOutreachService().Create(createTestUser(t), request.CreateEmail{
		JobID:          pkg.ToPtr(job.ID),
		RecipientEmail: "hr@acme.test",
		Subject:        "Hi",
		Body:           "Body",
	})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestOutreach_Generate(t *testing.T) {
	setupTestDB(t)
	userID := createTestUser(t)
	job := createTestJob(t, userID)

	service := NewOutreachService()
	llm := &fakeCompleter{reply: `{"subject":"Backend role at Acme","body":"<p>Hello Sam</p>","plainText":"Hello Sam"}`}
	service.llm = llm

	generated, err := service.Generate(context.Background(), userID, request.GenerateEmail{
		JobID:          job.ID,
		RecipientName:  "Sam",
		RecipientEmail: "sam@acme.test",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, generated.ID)
	assert.Equal(t, "Backend role at Acme", generated.Subject)
	assert.Equal(t, "Hello Sam", generated.PlainText)
	assert.Contains(t, llm.user, "Candidate interested in Backend Engineer at Acme")
	assert.Contains(t, llm.user, "Recipient: Sam")
	assert.Contains(t, llm.system, "professional")

	stored, err := service.Get(userID, generated.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EmailDraft, stored.Status)
	assert.Equal(t, "sam@acme.test", stored.RecipientEmail)
	require.NotNil(t, stored.JobID)
	assert.Equal(t, job.ID, *stored.JobID)
}

func TestOutreach_GenerateUsesResumeSummary(t *testing.T) {
	setupTestDB(t)
	userID := createTestUser(t)
	job := createTestJob(t, userID)
	resume := createTestResume(t, userID, "Ten years building payment systems in Go")

	service := NewOutreachService()
	llm := &fakeCompleter{reply: `{"subject":"s","body":"b","plainText":"p"}`}
	service.llm = llm

	_, err := service.Generate(context.Background(), userID, request.GenerateEmail{
		JobID:          job.ID,
		ResumeID:       resume.ID,
		RecipientEmail: "x@acme.test",
		Tone:           "casual",
	})
	require.NoError(t, err)
	assert.Contains(t, llm.user, "Ten years building payment systems in Go")
	assert.Contains(t, llm.user, "Recipient: Hiring Manager")
	assert.Contains(t, llm.user, "casual")
}

func TestOutreach_SendWithoutSmtp(t *testing.T) {
	setupTestDB(t)
	userID := createTestUser(t)
	email := createTestEmail(t, userID)

	service := NewOutreachService()
	mailer := &fakeMailer{messageID: "unused"}
	service.mailer = mailer

	_, err := service.Send(context.Background(), userID, email.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindExternalService, apperr.KindOf(err))
	assert.Empty(t, mailer.sent)

	stored, err := service.Get(userID, email.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EmailFailed, stored.Status)
	require.NotNil(t, stored.ErrorMessage)
	assert.Equal(t, "SMTP not configured. Go to Settings to set up email.", *stored.ErrorMessage)
}

func TestOutreach_SendSuccessThenConflict(t *testing.T) {
	setupTestDB(t)
	userID := createTestUser(t)
	saveTestSmtp(t, userID)
	email := createTestEmail(t, userID)

	service := NewOutreachService()
	sentAt := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return sentAt }
	mailer := &fakeMailer{messageID: "abc@smtp.example.test"}
	service.mailer = mailer

	result, err := service.Send(context.Background(), userID, email.ID)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "abc@smtp.example.test", result.MessageID)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "hr@acme.test", mailer.sent[0].To)
	assert.Equal(t, "<p>Hi there</p>", mailer.sent[0].HTML)
	assert.Equal(t, "app-password", mailer.settings.Password)
	assert.Equal(t, 587, mailer.settings.Port)
	assert.Equal(t, "Jane Doe", mailer.settings.FromName)

	stored, err := service.Get(userID, email.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EmailSent, stored.Status)
	require.NotNil(t, stored.SentAt)
	assert.True(t, sentAt.Equal(*stored.SentAt))
	require.NotNil(t, stored.MessageID)
	assert.Equal(t, "abc@smtp.example.test", *stored.MessageID)

	_, err = service.Send(context.Background(), userID, email.ID)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Len(t, mailer.sent, 1, "a sent email is never sent twice")

	_, err = service.Update(userID, email.ID, request.UpdateEmail{Subject: pkg.ToPtr("Edited")})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestOutreach_FailedSendCanBeRetried(t *testing.T) {
	setupTestDB(t)
	userID := createTestUser(t)
	saveTestSmtp(t, userID)
	email := createTestEmail(t, userID)

	service := NewOutreachService()
	mailer := &fakeMailer{err: errors.New("535 authentication failed")}
	service.mailer = mailer

	_, err := service.Send(context.Background(), userID, email.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindExternalService, apperr.KindOf(err))

	stored, err := service.Get(userID, email.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EmailFailed, stored.Status)
	require.NotNil(t, stored.ErrorMessage)
	assert.Contains(t, *stored.ErrorMessage, "535 authentication failed")

	// failed emails stay editable
	_, err = service.Update(userID, email.ID, request.UpdateEmail{Subject: pkg.ToPtr("Second try")})
	require.NoError(t, err)

	mailer.err = nil
	mailer.messageID = "retry@smtp.example.test"
	result, err := service.Send(context.Background(), userID, email.ID)
	require.NoError(t, err)
	assert.True(t, result.Success)

	stored, err = service.Get(userID, email.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EmailSent, stored.Status)
	assert.Nil(t, stored.ErrorMessage)
	assert.Equal(t, "Second try", mailer.sent[0].Subject)
}

func TestOutreach_ForeignEmail(t *testing.T) {
	setupTestDB(t)
	email := createTestEmail(t, createTestUser(t))
	other := createTestUser(t)

	service := NewOutreachService()
	service.mailer = &fakeMailer{}

	_, err := service.Send(context.Background(), other, email.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(service.Delete(other, email.ID)))
}
