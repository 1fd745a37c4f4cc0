package mapper

import (
	"jobhunter/internal/api/handler/response"
	"jobhunter/internal/api/models"
)

type UserMapper interface {
	EntityToUserResponse(user models.User) response.UserResponseDTO
}

type UserMapperImpl struct{}

func (m UserMapperImpl) EntityToUserResponse(user models.User) response.UserResponseDTO {
	return response.UserResponseDTO{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Actif:     user.Actif,
		CreatedAt: user.CreatedAt,
	}
}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}
