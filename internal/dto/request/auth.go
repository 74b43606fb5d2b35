package request

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterUserRequest struct {
	Username  string  `json:"username" validate:"required,min=3,max=50"`
	Password  string  `json:"password" validate:"required,min=6"`
	Email     string  `json:"email" validate:"required,email"`
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  string  `json:"last_name" validate:"required,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,max=30"`
	Role      string  `json:"role" validate:"required,oneof=ADMIN MANAGER RECEPTIONIST"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

type SetSecurityQuestionRequest struct {
	Question string `json:"question" validate:"required,max=200"`
	Answer   string `json:"answer" validate:"required,max=200"`
}

type RequestRecoveryTokenRequest struct {
	Username       string `json:"username" validate:"required"`
	SecurityAnswer string `json:"security_answer" validate:"required"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}
