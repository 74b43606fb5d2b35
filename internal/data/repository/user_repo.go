package repository

import (
	"context"
	"fmt"
	"time"

	"hotel-manager/internal/data/entity"
	"hotel-manager/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByRole(ctx context.Context, role entity.UserRole) (int64, error)

	// Credential operations
	ChangePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
	UpdateSecurityQuestion(ctx context.Context, id uuid.UUID, question, answerHash string) error

	// Recovery token lifecycle. The token is stored on the user row and is
	// valid until its expiry; a successful reset clears it.
	SetRecoveryToken(ctx context.Context, id uuid.UUID, token string, expires time.Time) error
	FindByValidRecoveryToken(ctx context.Context, token string) (*entity.User, error)
	ClearRecoveryToken(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

const userColumns = `id, username, password_hash, email, first_name, last_name, phone, role,
	       is_active, last_login, security_question, security_answer_hash,
	       recovery_token, recovery_token_expires, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.Phone,
		&user.Role,
		&user.IsActive,
		&user.LastLogin,
		&user.SecurityQuestion,
		&user.SecurityAnswerHash,
		&user.RecoveryToken,
		&user.RecoveryTokenExpires,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, username, password_hash, email, first_name, last_name, phone, role,
		                   is_active, security_question, security_answer_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.Username,
		user.PasswordHash,
		user.Email,
		user.FirstName,
		user.LastName,
		user.Phone,
		user.Role,
		user.IsActive,
		user.SecurityQuestion,
		user.SecurityAnswerHash,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("username", user.Username),
		)
		return fmt.Errorf("create user %s: %w", user.Username, err)
	}

	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find user by username %s: %w", username, err)
	}

	return user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by email", zap.Error(err))
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	return user, nil
}

func (r *userRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY username
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, user)
	}

	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET username = $2, email = $3, first_name = $4, last_name = $5, phone = $6,
		    role = $7, is_active = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.FirstName,
		user.LastName,
		user.Phone,
		user.Role,
		user.IsActive,
		user.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return fmt.Errorf("update user %s: %w", user.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", user.ID.String())
	}

	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("delete user %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id.String())
	}

	r.log.Info("User deleted", zap.String("user_id", id.String()))
	return nil
}

func (r *userRepository) CountByRole(ctx context.Context, role entity.UserRole) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, role).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count users by role",
			zap.Error(err),
			zap.String("role", string(role)),
		)
		return 0, fmt.Errorf("count users by role %s: %w", string(role), err)
	}
	return count, nil
}

func (r *userRepository) ChangePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, passwordHash)
	if err != nil {
		r.log.Error("Failed to change password",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("change password for user %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id.String())
	}

	return nil
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET last_login = NOW() WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to stamp last login",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("update last login for user %s: %w", id.String(), err)
	}

	return nil
}

func (r *userRepository) UpdateSecurityQuestion(ctx context.Context, id uuid.UUID, question, answerHash string) error {
	query := `UPDATE users SET security_question = $2, security_answer_hash = $3, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, question, answerHash)
	if err != nil {
		r.log.Error("Failed to update security question",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("update security question for user %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id.String())
	}

	return nil
}

func (r *userRepository) SetRecoveryToken(ctx context.Context, id uuid.UUID, token string, expires time.Time) error {
	query := `UPDATE users SET recovery_token = $2, recovery_token_expires = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, token, expires)
	if err != nil {
		r.log.Error("Failed to set recovery token",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("set recovery token for user %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id.String())
	}

	r.log.Info("Recovery token issued", zap.String("user_id", id.String()))
	return nil
}

func (r *userRepository) FindByValidRecoveryToken(ctx context.Context, token string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE recovery_token = $1 AND recovery_token_expires > NOW()`

	user, err := scanUser(r.db.QueryRow(ctx, query, token))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to look up recovery token", zap.Error(err))
		return nil, fmt.Errorf("find user by recovery token: %w", err)
	}

	return user, nil
}

func (r *userRepository) ClearRecoveryToken(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET recovery_token = NULL, recovery_token_expires = NULL WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to clear recovery token",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("clear recovery token for user %s: %w", id.String(), err)
	}

	return nil
}
