package repository

import (
	"context"
	"fmt"
	"strconv"

	"swiftcard/internal/data/entity"
	"swiftcard/pkg/apperr"
	"swiftcard/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CardRepository interface {
	Create(ctx context.Context, card *entity.Card) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Card, error)
	FindAll(ctx context.Context) ([]*entity.Card, error)
	FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Card, error)
	Update(ctx context.Context, card *entity.Card) error
	SetBizNumber(ctx context.Context, id uuid.UUID, bizNumber int64) error
	BizNumberExists(ctx context.Context, bizNumber int64) (bool, error)
	AddLike(ctx context.Context, cardID, userID uuid.UUID) error
	RemoveLike(ctx context.Context, cardID, userID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
}

type cardRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCardRepository(db database.PgxIface, log *zap.Logger) CardRepository {
	return &cardRepository{
		db:  db,
		log: log,
	}
}

// Cards are selected together with their likes set aggregated from the
// card_likes join table, so every read returns a complete record.
const cardSelect = `
	SELECT c.id, c.title, c.subtitle, c.description, c.phone, c.email, c.web,
	       c.image_url, c.image_alt,
	       c.address_state, c.address_country, c.address_city, c.address_street,
	       c.address_house_number, c.address_zip,
	       c.biz_number, c.user_id, c.created_at,
	       COALESCE(array_agg(cl.user_id) FILTER (WHERE cl.user_id IS NOT NULL), '{}') AS likes
	FROM cards c
	LEFT JOIN card_likes cl ON cl.card_id = c.id
`

func scanCard(row pgx.Row) (*entity.Card, error) {
	var card entity.Card
	err := row.Scan(
		&card.ID,
		&card.Title,
		&card.Subtitle,
		&card.Description,
		&card.Phone,
		&card.Email,
		&card.Web,
		&card.Image.URL,
		&card.Image.Alt,
		&card.Address.State,
		&card.Address.Country,
		&card.Address.City,
		&card.Address.Street,
		&card.Address.HouseNumber,
		&card.Address.Zip,
		&card.BizNumber,
		&card.UserID,
		&card.CreatedAt,
		&card.Likes,
	)
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// translateCardConflict maps unique-constraint violations on the cards table
// to structured duplicate errors
func translateCardConflict(err error, card *entity.Card) error {
	constraint, ok := database.UniqueConstraint(err)
	if !ok {
		return nil
	}
	switch constraint {
	case "cards_email_key":
		return apperr.Duplicate("email", card.Email)
	case "cards_biz_number_key":
		return apperr.Duplicate("bizNumber", strconv.FormatInt(card.BizNumber, 10))
	}
	return nil
}

func (cr *cardRepository) Create(ctx context.Context, card *entity.Card) error {
	query := `
		INSERT INTO cards (id, title, subtitle, description, phone, email, web,
		                   image_url, image_alt,
		                   address_state, address_country, address_city, address_street,
		                   address_house_number, address_zip,
		                   biz_number, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9,
		        $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err := cr.db.Exec(ctx, query,
		card.ID,
		card.Title,
		card.Subtitle,
		card.Description,
		card.Phone,
		card.Email,
		card.Web,
		card.Image.URL,
		card.Image.Alt,
		card.Address.State,
		card.Address.Country,
		card.Address.City,
		card.Address.Street,
		card.Address.HouseNumber,
		card.Address.Zip,
		card.BizNumber,
		card.UserID,
		card.CreatedAt,
	)

	if err != nil {
		if dup := translateCardConflict(err, card); dup != nil {
			return dup
		}
		cr.log.Error("Failed to create card",
			zap.Error(err),
			zap.String("title", card.Title),
			zap.String("user_id", card.UserID.String()),
		)
		return fmt.Errorf("create card %s: %w", card.Title, err)
	}

	return nil
}

func (cr *cardRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Card, error) {
	query := cardSelect + ` WHERE c.id = $1 GROUP BY c.id`

	card, err := scanCard(cr.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find card by ID",
			zap.Error(err),
			zap.String("card_id", id.String()),
		)
		return nil, fmt.Errorf("find card by ID %s: %w", id.String(), err)
	}

	return card, nil
}

func (cr *cardRepository) FindAll(ctx context.Context) ([]*entity.Card, error) {
	query := cardSelect + ` GROUP BY c.id ORDER BY c.created_at DESC`

	return cr.queryCards(ctx, query)
}

func (cr *cardRepository) FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Card, error) {
	query := cardSelect + ` WHERE c.user_id = $1 GROUP BY c.id ORDER BY c.created_at DESC`

	return cr.queryCards(ctx, query, userID)
}

func (cr *cardRepository) queryCards(ctx context.Context, query string, args ...any) ([]*entity.Card, error) {
	rows, err := cr.db.Query(ctx, query, args...)
	if err != nil {
		cr.log.Error("Failed to query cards", zap.Error(err))
		return nil, fmt.Errorf("query cards: %w", err)
	}
	defer rows.Close()

	var cards []*entity.Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			cr.log.Error("Failed to scan card row", zap.Error(err))
			return nil, fmt.Errorf("scan card row: %w", err)
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		cr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate cards rows: %w", err)
	}

	return cards, nil
}

// Update writes the owner-editable content fields; bizNumber, ownership and
// likes are excluded on purpose
func (cr *cardRepository) Update(ctx context.Context, card *entity.Card) error {
	query := `
		UPDATE cards
		SET title = $2, subtitle = $3, description = $4, phone = $5, email = $6, web = $7,
		    image_url = $8, image_alt = $9,
		    address_state = $10, address_country = $11, address_city = $12,
		    address_street = $13, address_house_number = $14, address_zip = $15
		WHERE id = $1
	`

	result, err := cr.db.Exec(ctx, query,
		card.ID,
		card.Title,
		card.Subtitle,
		card.Description,
		card.Phone,
		card.Email,
		card.Web,
		card.Image.URL,
		card.Image.Alt,
		card.Address.State,
		card.Address.Country,
		card.Address.City,
		card.Address.Street,
		card.Address.HouseNumber,
		card.Address.Zip,
	)

	if err != nil {
		if dup := translateCardConflict(err, card); dup != nil {
			return dup
		}
		cr.log.Error("Failed to update card",
			zap.Error(err),
			zap.String("card_id", card.ID.String()),
		)
		return fmt.Errorf("update card %s: %w", card.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("No card found.")
	}

	return nil
}

func (cr *cardRepository) SetBizNumber(ctx context.Context, id uuid.UUID, bizNumber int64) error {
	query := `UPDATE cards SET biz_number = $2 WHERE id = $1`

	result, err := cr.db.Exec(ctx, query, id, bizNumber)
	if err != nil {
		if constraint, ok := database.UniqueConstraint(err); ok && constraint == "cards_biz_number_key" {
			return apperr.Duplicate("bizNumber", strconv.FormatInt(bizNumber, 10))
		}
		cr.log.Error("Failed to set bizNumber",
			zap.Error(err),
			zap.String("card_id", id.String()),
			zap.Int64("biz_number", bizNumber),
		)
		return fmt.Errorf("set bizNumber on card %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("No card found.")
	}

	return nil
}

func (cr *cardRepository) BizNumberExists(ctx context.Context, bizNumber int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM cards WHERE biz_number = $1)`

	var exists bool
	if err := cr.db.QueryRow(ctx, query, bizNumber).Scan(&exists); err != nil {
		cr.log.Error("Failed to check bizNumber", zap.Error(err), zap.Int64("biz_number", bizNumber))
		return false, fmt.Errorf("check bizNumber %d: %w", bizNumber, err)
	}

	return exists, nil
}

// AddLike inserts the (card, user) pair; inserting an existing pair is a
// no-op so the set can never hold duplicates
func (cr *cardRepository) AddLike(ctx context.Context, cardID, userID uuid.UUID) error {
	query := `INSERT INTO card_likes (card_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`

	if _, err := cr.db.Exec(ctx, query, cardID, userID); err != nil {
		cr.log.Error("Failed to add like",
			zap.Error(err),
			zap.String("card_id", cardID.String()),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("add like on card %s: %w", cardID.String(), err)
	}

	return nil
}

func (cr *cardRepository) RemoveLike(ctx context.Context, cardID, userID uuid.UUID) error {
	query := `DELETE FROM card_likes WHERE card_id = $1 AND user_id = $2`

	if _, err := cr.db.Exec(ctx, query, cardID, userID); err != nil {
		cr.log.Error("Failed to remove like",
			zap.Error(err),
			zap.String("card_id", cardID.String()),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("remove like on card %s: %w", cardID.String(), err)
	}

	return nil
}

func (cr *cardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM cards WHERE id = $1`

	result, err := cr.db.Exec(ctx, query, id)
	if err != nil {
		cr.log.Error("Failed to delete card",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete card %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("No card found.")
	}

	cr.log.Info("Card deleted", zap.String("id", id.String()))
	return nil
}

// DeleteAll wipes the cards table; used by the seeder only
func (cr *cardRepository) DeleteAll(ctx context.Context) error {
	if _, err := cr.db.Exec(ctx, `DELETE FROM cards`); err != nil {
		return fmt.Errorf("delete all cards: %w", err)
	}
	return nil
}
