package request_models

type AccountCreateRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=50"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Type        string `json:"type" binding:"omitempty,oneof=user admin"`
	Phone       string `json:"phone" binding:"omitempty"`
	Description string `json:"description" binding:"omitempty,max=1000"`
}

// AccountUpdateRequest merges only the fields the client sent; nil means
// "leave untouched".
type AccountUpdateRequest struct {
	Username    *string `json:"username" binding:"omitempty,min=3,max=50"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Password    *string `json:"password" binding:"omitempty,min=6"`
	Phone       *string `json:"phone"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

// LoginRequest binds both form-encoded and JSON bodies; the password flow of
// browser clients posts a form.
type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type ValidateResetTokenRequest struct {
	Token string `json:"token" binding:"required"`
}
