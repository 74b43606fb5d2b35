package response

import (
	"hotel-manager/internal/data/entity"
)

type CustomerResponse struct {
	ID        string  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	IDNumber  *string `json:"id_number,omitempty"`
	Address   *string `json:"address,omitempty"`
}

func CustomerToResponse(customer *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        customer.ID.String(),
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Email:     customer.Email,
		Phone:     customer.Phone,
		IDNumber:  customer.IDNumber,
		Address:   customer.Address,
	}
}
