// AngelaMos | 2026
// repository.go

package card

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/carterperez-dev/bizcard-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, c *Card) error
	GetByID(ctx context.Context, id string) (*Card, error)
	List(ctx context.Context) ([]Card, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Card, error)
	Update(ctx context.Context, c *Card) error
	UpdateLikes(ctx context.Context, id string, likes Likes) error
	Delete(ctx context.Context, id string) error
}

const cardColumns = `
	id, title, subtitle, description, phone, email, web,
	image_url, image_alt, state, country, city, street, house_number, zip,
	biz_number, likes, user_id, created_at, updated_at`

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Card) error {
	query := `
		INSERT INTO cards (
			id, title, subtitle, description, phone, email, web,
			image_url, image_alt, state, country, city, street,
			house_number, zip, biz_number, likes, user_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18
		)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, c, query,
		c.ID,
		c.Title,
		c.Subtitle,
		c.Description,
		c.Phone,
		c.Email,
		c.Web,
		c.ImageURL,
		c.ImageAlt,
		c.State,
		c.Country,
		c.City,
		c.Street,
		c.HouseNumber,
		c.Zip,
		c.BizNumber,
		c.Likes,
		c.UserID,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create card: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create card: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Card, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM cards WHERE id = $1`,
		cardColumns,
	)

	var c Card
	err := r.db.GetContext(ctx, &c, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get card: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}

	return &c, nil
}

func (r *repository) List(ctx context.Context) ([]Card, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM cards ORDER BY created_at DESC`,
		cardColumns,
	)

	var cards []Card
	if err := r.db.SelectContext(ctx, &cards, query); err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	return cards, nil
}

func (r *repository) ListByOwner(
	ctx context.Context,
	ownerID string,
) ([]Card, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM cards WHERE user_id = $1 ORDER BY created_at DESC`,
		cardColumns,
	)

	var cards []Card
	if err := r.db.SelectContext(ctx, &cards, query, ownerID); err != nil {
		return nil, fmt.Errorf("list cards by owner: %w", err)
	}

	return cards, nil
}

// Update writes every mutable field; user_id is immutable after creation and
// is deliberately absent from the SET list.
func (r *repository) Update(ctx context.Context, c *Card) error {
	query := `
		UPDATE cards
		SET title = $2, subtitle = $3, description = $4, phone = $5,
		    email = $6, web = $7, image_url = $8, image_alt = $9,
		    state = $10, country = $11, city = $12, street = $13,
		    house_number = $14, zip = $15, biz_number = $16,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &c.UpdatedAt, query,
		c.ID,
		c.Title,
		c.Subtitle,
		c.Description,
		c.Phone,
		c.Email,
		c.Web,
		c.ImageURL,
		c.ImageAlt,
		c.State,
		c.Country,
		c.City,
		c.Street,
		c.HouseNumber,
		c.Zip,
		c.BizNumber,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update card: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update card: %w", err)
	}

	return nil
}

// UpdateLikes persists the full replacement likes set. There is no
// optimistic concurrency control; concurrent toggles on the same card can
// lose updates, matching the single-document write model.
func (r *repository) UpdateLikes(
	ctx context.Context,
	id string,
	likes Likes,
) error {
	query := `
		UPDATE cards
		SET likes = $2, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, likes)
	if err != nil {
		return fmt.Errorf("update likes: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update likes: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update likes: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM cards WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete card: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete card: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete card: %w", core.ErrNotFound)
	}

	return nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
