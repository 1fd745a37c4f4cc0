package service

import (
	"context"
	"errors"

	"jobhunter"
	"jobhunter/internal/api/handler/mapper"
	"jobhunter/internal/api/handler/request"
	"jobhunter/internal/api/handler/response"
	"jobhunter/internal/api/models"
	"jobhunter/internal/api/repo"
	"jobhunter/pkg"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type SmtpService struct {
	smtpRepo       *repo.SmtpConfigRepository
	outreachMapper mapper.OutreachMapper
	mailer         pkg.Mailer
	logger         zerolog.Logger
}

func NewSmtpService() *SmtpService {
	return &SmtpService{
		smtpRepo:       repo.NewSmtpConfigRepository(),
		outreachMapper: mapper.NewOutreachMapper(),
		mailer:         pkg.NewSMTPMailer(),
		logger:         jobhunter.Logger,
	}
}

// Get returns the masked settings, or nil when none are stored.
func (slf *SmtpService) Get(userID string) (*response.SmtpSettings, error) {
	cfg, err := slf.smtpRepo.FindByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	settings := slf.outreachMapper.ToSmtpSettings(cfg)
	return &settings, nil
}

// Save creates or replaces the user's settings. Sending the masked
// placeholder as password keeps the stored one.
func (slf *SmtpService) Save(userID string, req request.SmtpSettings) (response.SmtpSettings, error) {
	cfg, err := slf.smtpRepo.FindByUser(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return response.SmtpSettings{}, err
	}

	password := req.Password
	if password == response.MaskedPassword {
		password = cfg.Password
	}

	cfg.UserID = userID
	cfg.Host = req.Host
	cfg.Port = req.Port
	if cfg.Port == 0 {
		cfg.Port = models.DefaultSmtpPort
	}
	cfg.Secure = req.Secure
	cfg.Username = req.Username
	cfg.Password = password
	cfg.FromName = nilIfBlankPtr(req.FromName)

	if err := slf.smtpRepo.Save(&cfg); err != nil {
		slf.logger.Error().Err(err).Str("userId", userID).Msg("Error saving SMTP settings")
		return response.SmtpSettings{}, err
	}
	return slf.outreachMapper.ToSmtpSettings(cfg), nil
}

// Test opens an authenticated connection with the given settings. A failure
// is reported in the result, not as an error.
func (slf *SmtpService) Test(ctx context.Context, userID string, req request.SmtpSettings) (response.SmtpTestResult, error) {
	password := req.Password
	if password == response.MaskedPassword {
		cfg, err := slf.smtpRepo.FindByUser(userID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return response.SmtpTestResult{}, err
		}
		password = cfg.Password
	}

	port := req.Port
	if port == 0 {
		port = models.DefaultSmtpPort
	}

	err := slf.mailer.Verify(ctx, pkg.SmtpSettings{
		Host:     req.Host,
		Port:     port,
		Secure:   req.Secure,
		Username: req.Username,
		Password: password,
		FromName: pkg.FromPtr(req.FromName),
	})
	if err != nil {
		slf.logger.Warn().Err(err).Str("userId", userID).Str("host", req.Host).Msg("SMTP test failed")
		return response.SmtpTestResult{Success: false, Error: err.Error()}, nil
	}
	return response.SmtpTestResult{Success: true}, nil
}
