package dto

type LoginRequestDTO struct {
	Password string `json:"password" example:"secret"`
	UserID   int    `json:"user_id" validate:"oneof=1 2" example:"1"`
}

type LoginResponseDTO struct {
	Success   bool   `json:"success" example:"true"`
	UserID    int    `json:"user_id" example:"1"`
	UserName  string `json:"user_name" example:"Alex"`
	ExpiresAt string `json:"expires_at" example:"2025-06-10T12:00:00Z"`
}

type LogoutResponseDTO struct {
	Success bool `json:"success" example:"true"`
}
