// AngelaMos | 2026
// dto.go

package card

import (
	"time"
)

type ImagePayload struct {
	URL string `json:"url" validate:"omitempty,url"`
	Alt string `json:"alt" validate:"omitempty,max=255"`
}

type AddressPayload struct {
	State       string `json:"state"       validate:"omitempty,max=100"`
	Country     string `json:"country"     validate:"required,max=100"`
	City        string `json:"city"        validate:"required,max=100"`
	Street      string `json:"street"      validate:"required,max=100"`
	HouseNumber string `json:"houseNumber" validate:"required,max=20"`
	Zip         string `json:"zip"         validate:"omitempty,max=20"`
}

type CreateCardRequest struct {
	Title       string         `json:"title"       validate:"required,min=2,max=255"`
	Subtitle    string         `json:"subtitle"    validate:"required,min=2,max=255"`
	Description string         `json:"description" validate:"required,min=2,max=1024"`
	Phone       string         `json:"phone"       validate:"required,min=9,max=20"`
	Email       string         `json:"email"       validate:"required,email,max=255"`
	Web         string         `json:"web"         validate:"omitempty,url"`
	Image       ImagePayload   `json:"image"`
	Address     AddressPayload `json:"address"     validate:"required"`
	BizNumber   string         `json:"bizNumber"   validate:"required,max=20"`
}

// UpdateCardRequest patches only the fields that are present.
type UpdateCardRequest struct {
	Title       *string         `json:"title,omitempty"       validate:"omitempty,min=2,max=255"`
	Subtitle    *string         `json:"subtitle,omitempty"    validate:"omitempty,min=2,max=255"`
	Description *string         `json:"description,omitempty" validate:"omitempty,min=2,max=1024"`
	Phone       *string         `json:"phone,omitempty"       validate:"omitempty,min=9,max=20"`
	Email       *string         `json:"email,omitempty"       validate:"omitempty,email,max=255"`
	Web         *string         `json:"web,omitempty"         validate:"omitempty,url"`
	Image       *ImagePayload   `json:"image,omitempty"`
	Address     *AddressPayload `json:"address,omitempty"`
}

type PatchBizNumberRequest struct {
	BizNumber string `json:"bizNumber" validate:"required,max=20"`
}

type CardResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Subtitle    string          `json:"subtitle"`
	Description string          `json:"description"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	Web         string          `json:"web"`
	Image       ImagePayload    `json:"image"`
	Address     AddressResponse `json:"address"`
	BizNumber   string          `json:"bizNumber"`
	Likes       []string        `json:"likes"`
	UserID      string          `json:"user_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type AddressResponse struct {
	State       string `json:"state"`
	Country     string `json:"country"`
	City        string `json:"city"`
	Street      string `json:"street"`
	HouseNumber string `json:"houseNumber"`
	Zip         string `json:"zip"`
}

type CardListResponse struct {
	Cards []CardResponse `json:"cards"`
}

func ToCardResponse(c *Card) CardResponse {
	likes := c.Likes
	if likes == nil {
		likes = Likes{}
	}

	return CardResponse{
		ID:          c.ID,
		Title:       c.Title,
		Subtitle:    c.Subtitle,
		Description: c.Description,
		Phone:       c.Phone,
		Email:       c.Email,
		Web:         c.Web,
		Image: ImagePayload{
			URL: c.ImageURL,
			Alt: c.ImageAlt,
		},
		Address: AddressResponse{
			State:       c.State,
			Country:     c.Country,
			City:        c.City,
			Street:      c.Street,
			HouseNumber: c.HouseNumber,
			Zip:         c.Zip,
		},
		BizNumber: c.BizNumber,
		Likes:     likes,
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func ToCardResponseList(cards []Card) []CardResponse {
	responses := make([]CardResponse, 0, len(cards))
	for _, c := range cards {
		responses = append(responses, ToCardResponse(&c))
	}
	return responses
}
