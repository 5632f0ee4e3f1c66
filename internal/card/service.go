// AngelaMos | 2026
// service.go

package card

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/carterperez-dev/bizcard-api/internal/authz"
)

var (
	ErrNotAllowed = errors.New(
		"you are not allowed to update this card, you must be the owner of the card",
	)
	ErrBizNumberNotNumeric = errors.New("bizNumber is not a number")
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create persists a new card owned by the calling actor.
func (s *Service) Create(
	ctx context.Context,
	actor authz.Actor,
	req CreateCardRequest,
) (*Card, error) {
	c := &Card{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		Phone:       req.Phone,
		Email:       req.Email,
		Web:         req.Web,
		ImageURL:    req.Image.URL,
		ImageAlt:    req.Image.Alt,
		State:       req.Address.State,
		Country:     req.Address.Country,
		City:        req.Address.City,
		Street:      req.Address.Street,
		HouseNumber: req.Address.HouseNumber,
		Zip:         req.Address.Zip,
		BizNumber:   req.BizNumber,
		Likes:       Likes{},
		UserID:      actor.ID,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) List(ctx context.Context) ([]Card, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Card, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListMine(
	ctx context.Context,
	ownerID string,
) ([]Card, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Update fetches the card, applies the ownership policy, then patches the
// provided fields. The not-found check always runs before authorization.
func (s *Service) Update(
	ctx context.Context,
	actor authz.Actor,
	id string,
	req UpdateCardRequest,
) (*Card, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !authz.CanMutate(actor, c.UserID) {
		s.logger.Warn("card mutation denied",
			"card_id", id,
			"actor_id", actor.ID,
			"owner_id", c.UserID,
		)
		return nil, ErrNotAllowed
	}

	if req.Title != nil {
		c.Title = *req.Title
	}
	if req.Subtitle != nil {
		c.Subtitle = *req.Subtitle
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Web != nil {
		c.Web = *req.Web
	}
	if req.Image != nil {
		c.ImageURL = req.Image.URL
		c.ImageAlt = req.Image.Alt
	}
	if req.Address != nil {
		c.State = req.Address.State
		c.Country = req.Address.Country
		c.City = req.Address.City
		c.Street = req.Address.Street
		c.HouseNumber = req.Address.HouseNumber
		c.Zip = req.Address.Zip
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// ToggleLike flips the actor's membership in the card's likes set. Any
// authenticated actor may toggle; the ownership policy does not apply.
func (s *Service) ToggleLike(
	ctx context.Context,
	actor authz.Actor,
	id string,
) (*Card, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Likes = c.Likes.Toggle(actor.ID)

	if err := s.repo.UpdateLikes(ctx, id, c.Likes); err != nil {
		return nil, err
	}

	return c, nil
}

// PatchBizNumber overwrites the card's business number with the incoming
// value. The numeric check runs against the currently stored value, not the
// incoming one, mirroring the upstream behavior; a non-numeric value can
// therefore be written and will block further patches on this card.
func (s *Service) PatchBizNumber(
	ctx context.Context,
	id string,
	bizNumber string,
) (*Card, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := strconv.ParseFloat(c.BizNumber, 64); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBizNumberNotNumeric, c.BizNumber)
	}

	c.BizNumber = bizNumber

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// Delete removes the card after the same ownership policy check as Update
// and returns the deleted record.
func (s *Service) Delete(
	ctx context.Context,
	actor authz.Actor,
	id string,
) (*Card, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !authz.CanMutate(actor, c.UserID) {
		s.logger.Warn("card deletion denied",
			"card_id", id,
			"actor_id", actor.ID,
			"owner_id", c.UserID,
		)
		return nil, ErrNotAllowed
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return c, nil
}
