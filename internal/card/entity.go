// AngelaMos | 2026
// entity.go

package card

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Likes is the set of user IDs that liked a card, stored as a JSONB array.
type Likes []string

func (l Likes) Value() (driver.Value, error) {
	if l == nil {
		l = Likes{}
	}
	return json.Marshal(l)
}

func (l *Likes) Scan(src any) error {
	if src == nil {
		*l = Likes{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("scan likes: unsupported type %T", src)
	}

	return json.Unmarshal(data, l)
}

func (l Likes) Contains(userID string) bool {
	for _, id := range l {
		if id == userID {
			return true
		}
	}
	return false
}

// Toggle returns a new set with userID removed when present, appended when
// absent. Two toggles with the same ID return the original set.
func (l Likes) Toggle(userID string) Likes {
	if l.Contains(userID) {
		next := make(Likes, 0, len(l)-1)
		for _, id := range l {
			if id != userID {
				next = append(next, id)
			}
		}
		return next
	}

	next := make(Likes, 0, len(l)+1)
	next = append(next, l...)
	return append(next, userID)
}

type Card struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Subtitle    string    `db:"subtitle"`
	Description string    `db:"description"`
	Phone       string    `db:"phone"`
	Email       string    `db:"email"`
	Web         string    `db:"web"`
	ImageURL    string    `db:"image_url"`
	ImageAlt    string    `db:"image_alt"`
	State       string    `db:"state"`
	Country     string    `db:"country"`
	City        string    `db:"city"`
	Street      string    `db:"street"`
	HouseNumber string    `db:"house_number"`
	Zip         string    `db:"zip"`
	BizNumber   string    `db:"biz_number"`
	Likes       Likes     `db:"likes"`
	UserID      string    `db:"user_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
