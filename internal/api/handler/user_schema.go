package handler

type updateProfileRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type profileResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
