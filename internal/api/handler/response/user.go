package response

import "time"

type UserResponseDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Actif     bool      `json:"actif"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResponseDTO struct {
	Token        string          `json:"token"`
	RefreshToken string          `json:"refreshToken"`
	User         UserResponseDTO `json:"user"`
}
