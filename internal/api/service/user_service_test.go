package service

import (
	"testing"

	"jobhunter"
	"jobhunter/internal/api/handler/request"
	"jobhunter/internal/api/models"
	"jobhunter/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cleanupUser(t *testing.T, id string) {
	if id != "" {
		jobhunter.DB.Unscoped().Delete(&models.User{}, "id = ?", id)
	}
}

func TestUser_Register(t *testing.T) {
	setupTestDB(t)

	service := NewUserService()
	email := uniqueEmail()

	result, err := service.Register(request.RegisterDTO{
		Email:    email,
		Password: "testpassword123",
		Name:     "Jane Doe",
	})
	require.NoError(t, err, "Failed to register user")
	require.NotNil(t, result)
	defer cleanupUser(t, result.User.ID)

	assert.NotEmpty(t, result.Token)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, email, result.User.Email)
	assert.Equal(t, "Jane Doe", result.User.Name)
	assert.True(t, result.User.Actif)
}

func TestUser_Register_DuplicateEmail(t *testing.T) {
	setupTestDB(t)

	service := NewUserService()
	dto := request.RegisterDTO{
		Email:    uniqueEmail(),
		Password: "testpassword123",
		Name:     "Jane Doe",
	}

	result, err := service.Register(dto)
	require.NoError(t, err)
	defer cleanupUser(t, result.User.ID)

	// Try to register again with the same email
	_, err = service.Register(dto)
	require.Error(t, err, "Should fail on duplicate email")
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "already exists")
}

func TestUser_Login(t *testing.T) {
	setupTestDB(t)

	service := NewUserService()
	email := uniqueEmail()

	regResult, err := service.Register(request.RegisterDTO{Email: email, Password: "loginpassword", Name: "Marie"})
	require.NoError(t, err)
	defer cleanupUser(t, regResult.User.ID)

	loginResult, err := service.Login(request.LoginDTO{Email: email, Password: "loginpassword"})
	require.NoError(t, err, "Failed to login")
	require.NotNil(t, loginResult)

	assert.NotEmpty(t, loginResult.Token)
	assert.NotEmpty(t, loginResult.RefreshToken)
	assert.Equal(t, email, loginResult.User.Email)
}

func TestUser_Login_WrongPassword(t *testing.T) {
	setupTestDB(t)

	service := NewUserService()
	email := uniqueEmail()

	regResult, err := service.Register(request.RegisterDTO{Email: email, Password: "correctpassword", Name: "Paul"})
	require.NoError(t, err)
	defer cleanupUser(t, regResult.User.ID)

	_, err = service.Login(request.LoginDTO{Email: email, Password: "wrongpassword"})
	require.Error(t, err, "Should fail with wrong password")
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestUser_Login_UnknownEmail(t *testing.T) {
	setupTestDB(t)

	_, err := NewUserService().Login(request.LoginDTO{Email: uniqueEmail(), Password: "whatever"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestUser_Login_Inactive(t *testing.T) {
	setupTestDB(t)

	service := NewUserService()
	email := uniqueEmail()

	regResult, err := service.Register(request.RegisterDTO{Email: email, Password: "password", Name: "Ines"})
	require.NoError(t, err)
	defer cleanupUser(t, regResult.User.ID)

	require.NoError(t, jobhunter.DB.Model(&models.User{}).Where("id = ?", regResult.User.ID).Update("actif", false).Error)

	_, err = service.Login(request.LoginDTO{Email: email, Password: "password"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inactive")
}

func TestUser_GetByID(t *testing.T) {
	setupTestDB(t)

	service := NewUserService()
	regResult, err := service.Register(request.RegisterDTO{Email: uniqueEmail(), Password: "password", Name: "Sophie"})
	require.NoError(t, err)
	defer cleanupUser(t, regResult.User.ID)

	user, err := service.GetByID(regResult.User.ID)
	require.NoError(t, err)
	assert.Equal(t, regResult.User.Email, user.Email)

	_, err = service.GetByID("missing")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUser_RefreshToken_Rotates(t *testing.T) {
	setupTestDB(t)

	service := NewUserService()
	regResult, err := service.Register(request.RegisterDTO{Email: uniqueEmail(), Password: "refreshpassword", Name: "Luc"})
	require.NoError(t, err)
	defer cleanupUser(t, regResult.User.ID)

	refreshResult, err := service.RefreshToken(regResult.RefreshToken)
	require.NoError(t, err, "Failed to refresh token")
	assert.NotEmpty(t, refreshResult.Token)
	assert.NotEqual(t, regResult.RefreshToken, refreshResult.RefreshToken)

	// the previous refresh token was replaced
	_, err = service.RefreshToken(regResult.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestUser_RefreshToken_Invalid(t *testing.T) {
	setupTestDB(t)

	_, err := NewUserService().RefreshToken("invalid-token")
	require.Error(t, err, "Should fail with invalid refresh token")
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestUser_RefreshToken_RejectsAccessToken(t *testing.T) {
	setupTestDB(t)

	service := NewUserService()
	regResult, err := service.Register(request.RegisterDTO{Email: uniqueEmail(), Password: "password", Name: "Nora"})
	require.NoError(t, err)
	defer cleanupUser(t, regResult.User.ID)

	_, err = service.RefreshToken(regResult.Token)
	require.Error(t, err)
}
