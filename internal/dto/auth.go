package dto

type RegisterRequestDTO struct {
	Name     string `json:"name" example:"Ana Souza"`
	Email    string `json:"email" example:"ana@example.com"`
	Password string `json:"password" example:"secret123"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" example:"ana@example.com"`
	Password string `json:"password" example:"secret123"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
