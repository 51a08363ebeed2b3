package payload

type RegisterRequest struct {
	UID   string `json:"uid"   validate:"required"`
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required"`
}

type RegisterResponse struct {
	UID   string `json:"uid"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type EditProfileRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required"`
}
