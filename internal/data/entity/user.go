package entity

import "time"

type UserRole string

const (
	RoleAdmin        UserRole = "ADMIN"
	RoleManager      UserRole = "MANAGER"
	RoleReceptionist UserRole = "RECEPTIONIST"
)

func ParseUserRole(s string) (UserRole, bool) {
	switch UserRole(s) {
	case RoleAdmin, RoleManager, RoleReceptionist:
		return UserRole(s), true
	}
	return "", false
}

type User struct {
	Base
	Username     string   `db:"username"`
	PasswordHash string   `db:"password_hash"`
	Email        string   `db:"email"`
	FirstName    string   `db:"first_name"`
	LastName     string   `db:"last_name"`
	Phone        *string  `db:"phone"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`
	LastLogin    *time.Time `db:"last_login"`

	// Password recovery. The answer is stored as a bcrypt hash of the
	// normalized answer, the token is single-use with a fixed validity window.
	SecurityQuestion     *string    `db:"security_question"`
	SecurityAnswerHash   *string    `db:"security_answer_hash"`
	RecoveryToken        *string    `db:"recovery_token"`
	RecoveryTokenExpires *time.Time `db:"recovery_token_expires"`
}
