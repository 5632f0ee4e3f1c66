// AngelaMos | 2026
// dto.go

package user

import (
	"time"
)

type NamePayload struct {
	First string `json:"first" validate:"required,min=2,max=100"`
	Last  string `json:"last"  validate:"required,min=2,max=100"`
}

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

type RegisterRequest struct {
	Name       NamePayload    `json:"name"       validate:"required"`
	Email      string         `json:"email"      validate:"required,email,max=255"`
	Password   string         `json:"password"   validate:"required,min=8,max=128"`
	Phone      string         `json:"phone"      validate:"required,min=9,max=20"`
	Image      ImagePayload   `json:"image"`
	Address    AddressPayload `json:"address"    validate:"required"`
	IsBusiness bool           `json:"isBusiness"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// UpdateUserRequest is an arbitrary field patch; only non-nil fields are
// applied.
type UpdateUserRequest struct {
	Name    *NamePayload    `json:"name,omitempty"`
	Phone   *string         `json:"phone,omitempty"   validate:"omitempty,min=9,max=20"`
	Image   *ImagePayload   `json:"image,omitempty"`
	Address *AddressPayload `json:"address,omitempty"`
}

type SetBusinessRequest struct {
	IsBusiness *bool `json:"isBusiness" validate:"required"`
}

// UserResponse is the sanitized outward representation; the password hash
// never appears here.
type UserResponse struct {
	ID         string          `json:"id"`
	Name       NamePayload     `json:"name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Image      ImagePayload    `json:"image"`
	Address    AddressResponse `json:"address"`
	IsBusiness bool            `json:"isBusiness"`
	IsAdmin    bool            `json:"isAdmin"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type AddressResponse struct {
	State       string `json:"state"`
	Country     string `json:"country"`
	City        string `json:"city"`
	Street      string `json:"street"`
	HouseNumber string `json:"houseNumber"`
	Zip         string `json:"zip"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID: u.ID,
		Name: NamePayload{
			First: u.FirstName,
			Last:  u.LastName,
		},
		Email: u.Email,
		Phone: u.Phone,
		Image: ImagePayload{
			URL: u.ImageURL,
			Alt: u.ImageAlt,
		},
		Address: AddressResponse{
			State:       u.State,
			Country:     u.Country,
			City:        u.City,
			Street:      u.Street,
			HouseNumber: u.HouseNumber,
			Zip:         u.Zip,
		},
		IsBusiness: u.IsBusiness,
		IsAdmin:    u.IsAdmin,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func ToUserResponseList(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToUserResponse(&u))
	}
	return responses
}
