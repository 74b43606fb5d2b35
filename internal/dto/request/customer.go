package request

type CreateCustomerRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  string  `json:"last_name" validate:"required,max=100"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone" validate:"omitempty,max=30"`
	IDNumber  *string `json:"id_number" validate:"omitempty,max=50"`
	Address   *string `json:"address" validate:"omitempty,max=300"`
}

type UpdateCustomerRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  string  `json:"last_name" validate:"required,max=100"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone" validate:"omitempty,max=30"`
	IDNumber  *string `json:"id_number" validate:"omitempty,max=50"`
	Address   *string `json:"address" validate:"omitempty,max=300"`
}
