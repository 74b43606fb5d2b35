package entity

type Customer struct {
	Base
	FirstName string  `db:"first_name"`
	LastName  string  `db:"last_name"`
	Email     *string `db:"email"`
	Phone     *string `db:"phone"`
	IDNumber  *string `db:"id_number"`
	Address   *string `db:"address"`
}
