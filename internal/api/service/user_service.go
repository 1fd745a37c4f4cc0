package service

import (
	"errors"

	"jobhunter"
	"jobhunter/internal/api/handler/mapper"
	"jobhunter/internal/api/handler/request"
	"jobhunter/internal/api/handler/response"
	"jobhunter/internal/api/models"
	"jobhunter/internal/api/repo"
	"jobhunter/internal/apperr"
	"jobhunter/pkg"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	userRepo   *repo.UserRepository
	config     jobhunter.AppConfig
	logger     zerolog.Logger
	userMapper mapper.UserMapper
}

func NewUserService() *UserService {
	return &UserService{
		userRepo:   repo.NewUserRepository(),
		config:     jobhunter.GetConfig(),
		logger:     jobhunter.Logger,
		userMapper: mapper.NewUserMapper(),
	}
}

func (slf *UserService) Register(registerDTO request.RegisterDTO) (*response.AuthResponseDTO, error) {
	exists, err := slf.userRepo.ExistsByEmail(registerDTO.Email)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error checking if user exists")
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(registerDTO.Password), bcrypt.DefaultCost)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error hashing password")
		return nil, err
	}

	user := models.User{
		Email:    registerDTO.Email,
		Password: string(hashedPassword),
		Name:     registerDTO.Name,
		Actif:    true,
	}

	if err = slf.userRepo.Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("user with this email already exists")
		}
		slf.logger.Error().Err(err).Msg("Error creating user")
		return nil, err
	}

	auth, err := slf.issueTokens(&user)
	if err != nil {
		return nil, err
	}

	slf.logger.Info().Str("userId", user.ID).Msg("User registered successfully")
	return auth, nil
}

func (slf *UserService) Login(loginDTO request.LoginDTO) (*response.AuthResponseDTO, error) {
	user, err := slf.userRepo.FindByEmail(loginDTO.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("invalid email or password")
		}
		slf.logger.Error().Err(err).Msg("Error finding user by email")
		return nil, err
	}

	if !user.Actif {
		return nil, apperr.Unauthorized("account is inactive")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(loginDTO.Password)); err != nil {
		return nil, apperr.Unauthorized("invalid email or password")
	}

	auth, err := slf.issueTokens(&user)
	if err != nil {
		return nil, err
	}

	slf.logger.Info().Str("userId", user.ID).Msg("User logged in successfully")
	return auth, nil
}

func (slf *UserService) GetByID(id string) (response.UserResponseDTO, error) {
	user, err := slf.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.UserResponseDTO{}, apperr.NotFound("user not found")
		}
		slf.logger.Error().Err(err).Str("userId", id).Msg("Error finding user by ID")
		return response.UserResponseDTO{}, err
	}

	return slf.userMapper.EntityToUserResponse(user), nil
}

// RefreshToken rotates the refresh token. Only the most recently issued
// refresh token of a user is accepted.
func (slf *UserService) RefreshToken(refreshToken string) (*response.AuthResponseDTO, error) {
	claims, err := pkg.ValidateRefreshToken(refreshToken, slf.config.JWTConfig.Secret)
	if err != nil {
		slf.logger.Warn().Err(err).Msg("Invalid refresh token")
		return nil, apperr.Unauthorized("invalid or expired refresh token")
	}

	user, err := slf.userRepo.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("invalid or expired refresh token")
		}
		slf.logger.Error().Err(err).Str("userId", claims.UserID).Msg("Error finding user by ID")
		return nil, err
	}

	if !user.Actif {
		return nil, apperr.Unauthorized("account is inactive")
	}

	if user.RefreshToken != refreshToken {
		slf.logger.Warn().Str("userId", user.ID).Msg("Refresh token mismatch")
		return nil, apperr.Unauthorized("invalid refresh token")
	}

	auth, err := slf.issueTokens(&user)
	if err != nil {
		return nil, err
	}

	slf.logger.Info().Str("userId", user.ID).Msg("Token refreshed successfully")
	return auth, nil
}

func (slf *UserService) issueTokens(user *models.User) (*response.AuthResponseDTO, error) {
	token, err := pkg.GenerateToken(user.ID, user.Email, slf.config.JWTConfig.Secret, slf.config.JWTConfig.Expiration)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error generating token")
		return nil, err
	}

	refreshToken, err := pkg.GenerateRefreshToken(user.ID, slf.config.JWTConfig.Secret, slf.config.JWTConfig.RefreshExpiration)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error generating refresh token")
		return nil, err
	}

	user.RefreshToken = refreshToken
	if err = slf.userRepo.Update(user); err != nil {
		slf.logger.Error().Err(err).Msg("Error updating user with refresh token")
		return nil, err
	}

	return &response.AuthResponseDTO{
		Token:        token,
		RefreshToken: refreshToken,
		User:         slf.userMapper.EntityToUserResponse(*user),
	}, nil
}
