// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/carterperez-dev/bizcard-api/internal/auth"
	"github.com/carterperez-dev/bizcard-api/internal/core"
	"github.com/carterperez-dev/bizcard-api/internal/notify"
)

var (
	// ErrInvalidCredentials is returned for both unknown email and wrong
	// password so callers cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("user already exists")
)

type TokenIssuer interface {
	CreateToken(claims auth.Claims) (string, error)
}

type Notifier interface {
	Enqueue(ctx context.Context, msg notify.Message) error
}

type Service struct {
	repo     Repository
	tokens   TokenIssuer
	notifier Notifier
	logger   *slog.Logger
}

func NewService(
	repo Repository,
	tokens TokenIssuer,
	notifier Notifier,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:     repo,
		tokens:   tokens,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*User, error) {
	email := strings.ToLower(req.Email)

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailExists
	}

	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		ID:           uuid.New().String(),
		FirstName:    req.Name.First,
		LastName:     req.Name.Last,
		Email:        email,
		PasswordHash: passwordHash,
		Phone:        req.Phone,
		ImageURL:     req.Image.URL,
		ImageAlt:     req.Image.Alt,
		State:        req.Address.State,
		Country:      req.Address.Country,
		City:         req.Address.City,
		Street:       req.Address.Street,
		HouseNumber:  req.Address.HouseNumber,
		Zip:          req.Address.Zip,
		IsBusiness:   req.IsBusiness,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	s.enqueueMail(ctx, notify.Message{
		To:      u.Email,
		Subject: "Registration successful",
		Body: fmt.Sprintf(
			"Your registration is successful, %s. Thank you for registering with us.",
			u.FullName(),
		),
	})

	return u, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (string, error) {
	u, err := s.repo.GetByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	valid, _, err := core.VerifyPasswordTimingSafe(
		req.Password,
		&u.PasswordHash,
	)
	if err != nil {
		return "", fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.CreateToken(auth.Claims{
		UserID:     u.ID,
		IsAdmin:    u.IsAdmin,
		IsBusiness: u.IsBusiness,
	})
	if err != nil {
		return "", fmt.Errorf("create token: %w", err)
	}

	s.enqueueMail(ctx, notify.Message{
		To:      u.Email,
		Subject: "Login successful",
		Body: fmt.Sprintf(
			"Welcome back to our website, %s. Your login is successful.",
			u.FullName(),
		),
	})

	return token, nil
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies an arbitrary field patch. No ownership or admin check
// happens here; the route class decides who may reach it.
func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateUserRequest,
) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		u.FirstName = req.Name.First
		u.LastName = req.Name.Last
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}
	if req.Image != nil {
		u.ImageURL = req.Image.URL
		u.ImageAlt = req.Image.Alt
	}
	if req.Address != nil {
		u.State = req.Address.State
		u.Country = req.Address.Country
		u.City = req.Address.City
		u.Street = req.Address.Street
		u.HouseNumber = req.Address.HouseNumber
		u.Zip = req.Address.Zip
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *Service) SetBusinessStatus(
	ctx context.Context,
	id string,
	isBusiness bool,
) (*User, error) {
	return s.repo.SetBusinessStatus(ctx, id, isBusiness)
}

func (s *Service) Delete(ctx context.Context, id string) (*User, error) {
	return s.repo.Delete(ctx, id)
}

// enqueueMail is fire-and-forget: a full queue or a dead redis never fails
// the request that triggered the mail.
func (s *Service) enqueueMail(ctx context.Context, msg notify.Message) {
	if s.notifier == nil {
		return
	}

	if err := s.notifier.Enqueue(ctx, msg); err != nil {
		s.logger.Error("enqueue mail",
			"to", msg.To,
			"subject", msg.Subject,
			"error", err,
		)
	}
}
