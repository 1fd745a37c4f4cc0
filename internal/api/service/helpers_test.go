package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"jobhunter"
	"jobhunter/internal/api/models"
	"jobhunter/pkg"

	"github.com/stretchr/testify/require"
)

var initOnce sync.Once

func setupTestDB(t *testing.T) {
	t.Helper()
	initOnce.Do(func() {
		jobhunter.InitConfig("../../../.env.test")
	})

	err := jobhunter.DB.AutoMigrate(models.All()...)
	require.NoError(t, err, "Failed to migrate tables")
}

func uniqueEmail() string {
	return fmt.Sprintf("test-%d@example.com", time.Now().UnixNano())
}

func createTestUser(t *testing.T) string {
	t.Helper()
	user := models.User{Email: uniqueEmail(), Password: "x", Name: "Test User", Actif: true}
	require.NoError(t, jobhunter.DB.Create(&user).Error)
	return user.ID
}

func createTestJob(t *testing.T, userID string) models.SavedJob {
	t.Helper()
	job, err := NewJobService().Create(userID, pkg.RawPosting{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Description: "Build services in Go.",
		JobType:     "FULLTIME",
	})
	require.NoError(t, err)
	return job
}

func createTestResume(t *testing.T, userID, text string) models.Resume {
	t.Helper()
	resume := models.Resume{UserID: userID, Name: "Main", RawText: text}
	require.NoError(t, jobhunter.DB.Create(&resume).Error)
	return resume
}

// fakeCompleter returns a canned reply and records the last prompt.
type fakeCompleter struct {
	reply  string
	err    error
	calls  int
	system string
	user   string
	opts   pkg.CompletionOptions
}

func (f *fakeCompleter) Complete(_ context.Context, system, user string, opts pkg.CompletionOptions) (pkg.Completion, error) {
	f.calls++
	f.system, f.user, f.opts = system, user, opts
	if f.err != nil {
		return pkg.Completion{}, f.err
	}
	return pkg.Completion{Text: f.reply, Usage: pkg.Usage{InputTokens: 10, OutputTokens: 20}}, nil
}

type fakeMailer struct {
	messageID string
	err       error
	sent      []pkg.MailMessage
	settings  pkg.SmtpSettings
}

func (f *fakeMailer) Send(_ context.Context, settings pkg.SmtpSettings, msg pkg.MailMessage) (string, error) {
	f.settings = settings
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, msg)
	return f.messageID, nil
}

func (f *fakeMailer) Verify(_ context.Context, settings pkg.SmtpSettings) error {
	f.settings = settings
	return f.err
}

type fakeSearcher struct {
	result pkg.SearchResult
	err    error
	params pkg.SearchParams
}

func (f *fakeSearcher) Search(_ context.Context, params pkg.SearchParams) (pkg.SearchResult, error) {
	f.params = params
	return f.result, f.err
}
