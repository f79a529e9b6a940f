package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultCardImageURL = "https://www.wearegecko.co.uk/media/50316/mountain-3.jpg"
	DefaultCardImageAlt = "Business image"
)

// BizNumber bounds; the generator draws uniformly from this range
const (
	BizNumberMin int64 = 100
	BizNumberMax int64 = 999_999_999
)

type Card struct {
	ID          uuid.UUID `db:"id"`
	Title       string    `db:"title"`
	Subtitle    string    `db:"subtitle"`
	Description string    `db:"description"`
	Phone       string    `db:"phone"`
	Email       string    `db:"email"`
	Web         string    `db:"web"`
	Image       Image
	Address     Address
	BizNumber   int64     `db:"biz_number"`
	UserID      uuid.UUID `db:"user_id"`

	// Likes is the set of user ids who liked the card; stored as a join
	// table so duplicates cannot accumulate
	Likes []uuid.UUID

	CreatedAt time.Time `db:"created_at"`
}

// LikedBy reports whether userID is in the likes set
func (c *Card) LikedBy(userID uuid.UUID) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
