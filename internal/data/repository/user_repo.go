package repository

import (
	"context"
	"fmt"
	"time"

	"swiftcard/internal/data/entity"
	"swiftcard/pkg/apperr"
	"swiftcard/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	UpdateProfile(ctx context.Context, user *entity.User) error
	SetBusiness(ctx context.Context, id uuid.UUID, isBusiness bool) error
	UpdateLoginState(ctx context.Context, id uuid.UUID, attempts int, lockUntil *time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log,
	}
}

const userColumns = `id, first_name, middle_name, last_name, phone, email, password,
	       address_state, address_country, address_city, address_street,
	       address_house_number, address_zip, image_url, image_alt,
	       is_business, is_admin, login_attempts, lock_until, created_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Name.First,
		&user.Name.Middle,
		&user.Name.Last,
		&user.Phone,
		&user.Email,
		&user.PasswordHash,
		&user.Address.State,
		&user.Address.Country,
		&user.Address.City,
		&user.Address.Street,
		&user.Address.HouseNumber,
		&user.Address.Zip,
		&user.Image.URL,
		&user.Image.Alt,
		&user.IsBusiness,
		&user.IsAdmin,
		&user.LoginAttempts,
		&user.LockUntil,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user record into the database
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, first_name, middle_name, last_name, phone, email, password,
		                   address_state, address_country, address_city, address_street,
		                   address_house_number, address_zip, image_url, image_alt,
		                   is_business, is_admin, login_attempts, lock_until, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		        $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Name.First,
		user.Name.Middle,
		user.Name.Last,
		user.Phone,
		user.Email,
		user.PasswordHash,
		user.Address.State,
		user.Address.Country,
		user.Address.City,
		user.Address.Street,
		user.Address.HouseNumber,
		user.Address.Zip,
		user.Image.URL,
		user.Image.Alt,
		user.IsBusiness,
		user.IsAdmin,
		user.LoginAttempts,
		user.LockUntil,
		user.CreatedAt,
	)

	if err != nil {
		if constraint, ok := database.UniqueConstraint(err); ok && constraint == "users_email_key" {
			return apperr.Duplicate("email", user.Email)
		}
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(ur.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return user, nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(ur.db.QueryRow(ctx, query, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return user, nil
}

func (ur *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := ur.db.Query(ctx, query)
	if err != nil {
		ur.log.Error("Failed to get all users", zap.Error(err))
		return nil, fmt.Errorf("find all users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			ur.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		ur.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate users rows: %w", err)
	}

	return users, nil
}

// UpdateProfile writes the user-editable fields only; password, role flags
// and lockout state are never touched here
func (ur *userRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET first_name = $2, middle_name = $3, last_name = $4, phone = $5, email = $6,
		    address_state = $7, address_country = $8, address_city = $9,
		    address_street = $10, address_house_number = $11, address_zip = $12,
		    image_url = $13, image_alt = $14
		WHERE id = $1
	`

	result, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Name.First,
		user.Name.Middle,
		user.Name.Last,
		user.Phone,
		user.Email,
		user.Address.State,
		user.Address.Country,
		user.Address.City,
		user.Address.Street,
		user.Address.HouseNumber,
		user.Address.Zip,
		user.Image.URL,
		user.Image.Alt,
	)

	if err != nil {
		if constraint, ok := database.UniqueConstraint(err); ok && constraint == "users_email_key" {
			return apperr.Duplicate("email", user.Email)
		}
		ur.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return fmt.Errorf("update user %s: %w", user.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("User not found.")
	}

	return nil
}

func (ur *userRepository) SetBusiness(ctx context.Context, id uuid.UUID, isBusiness bool) error {
	query := `UPDATE users SET is_business = $2 WHERE id = $1`

	result, err := ur.db.Exec(ctx, query, id, isBusiness)
	if err != nil {
		ur.log.Error("Failed to set business flag",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("set business flag %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("User not found.")
	}

	return nil
}

// UpdateLoginState persists the lockout counters; last-write-wins under
// concurrent logins is acceptable for this flow
func (ur *userRepository) UpdateLoginState(ctx context.Context, id uuid.UUID, attempts int, lockUntil *time.Time) error {
	query := `UPDATE users SET login_attempts = $2, lock_until = $3 WHERE id = $1`

	_, err := ur.db.Exec(ctx, query, id, attempts, lockUntil)
	if err != nil {
		ur.log.Error("Failed to update login state",
			zap.Error(err),
			zap.String("user_id", id.String()),
			zap.Int("attempts", attempts),
		)
		return fmt.Errorf("update login state %s: %w", id.String(), err)
	}

	return nil
}

func (ur *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM users WHERE id = $1`

	result, err := ur.db.Exec(ctx, query, id)
	if err != nil {
		ur.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete user %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("User not found.")
	}

	ur.log.Info("User deleted", zap.String("id", id.String()))
	return nil
}

// DeleteAll wipes the users table; used by the seeder only
func (ur *userRepository) DeleteAll(ctx context.Context) error {
	if _, err := ur.db.Exec(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("delete all users: %w", err)
	}
	return nil
}
