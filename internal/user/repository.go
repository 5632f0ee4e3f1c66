// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/carterperez-dev/bizcard-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, user *User) error
	SetBusinessStatus(ctx context.Context, id string, isBusiness bool) (*User, error)
	Delete(ctx context.Context, id string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

const userColumns = `
	id, first_name, last_name, email, password_hash, phone,
	image_url, image_alt, state, country, city, street, house_number, zip,
	is_business, is_admin, created_at, updated_at`

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (
			id, first_name, last_name, email, password_hash, phone,
			image_url, image_alt, state, country, city, street,
			house_number, zip, is_business, is_admin
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16
		)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, user, query,
		user.ID,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.Phone,
		user.ImageURL,
		user.ImageAlt,
		user.State,
		user.Country,
		user.City,
		user.Street,
		user.HouseNumber,
		user.Zip,
		user.IsBusiness,
		user.IsAdmin,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM users WHERE id = $1`,
		userColumns,
	)

	var user User
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM users WHERE email = $1`,
		userColumns,
	)

	var user User
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &user, nil
}

func (r *repository) List(ctx context.Context) ([]User, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM users ORDER BY created_at DESC`,
		userColumns,
	)

	var users []User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (r *repository) Update(ctx context.Context, user *User) error {
	query := `
		UPDATE users
		SET first_name = $2, last_name = $3, phone = $4,
		    image_url = $5, image_alt = $6, state = $7, country = $8,
		    city = $9, street = $10, house_number = $11, zip = $12,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &user.UpdatedAt, query,
		user.ID,
		user.FirstName,
		user.LastName,
		user.Phone,
		user.ImageURL,
		user.ImageAlt,
		user.State,
		user.Country,
		user.City,
		user.Street,
		user.HouseNumber,
		user.Zip,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update user: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	return nil
}

func (r *repository) SetBusinessStatus(
	ctx context.Context,
	id string,
	isBusiness bool,
) (*User, error) {
	query := fmt.Sprintf(`
		UPDATE users
		SET is_business = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING %s`, userColumns)

	var user User
	err := r.db.GetContext(ctx, &user, query, id, isBusiness)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("set business status: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("set business status: %w", err)
	}

	return &user, nil
}

func (r *repository) Delete(ctx context.Context, id string) (*User, error) {
	query := fmt.Sprintf(
		`DELETE FROM users WHERE id = $1 RETURNING %s`,
		userColumns,
	)

	var user User
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("delete user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}

	return &user, nil
}

func (r *repository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}

	return exists, nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
