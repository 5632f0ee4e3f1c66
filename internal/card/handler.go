// AngelaMos | 2026
// handler.go

package card

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/bizcard-api/internal/authz"
	"github.com/carterperez-dev/bizcard-api/internal/core"
	"github.com/carterperez-dev/bizcard-api/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, optionalAuth func(http.Handler) http.Handler,
) {
	r.Route("/cards", func(r chi.Router) {
		r.With(optionalAuth).Get("/", h.ListCards)
		r.With(authenticator).Get("/my-cards", h.ListMyCards)
		r.With(optionalAuth).Get("/{cardID}", h.GetCard)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.Post("/", h.CreateCard)
			r.Put("/{cardID}", h.UpdateCard)
			r.Patch("/{cardID}/like", h.ToggleLike)
			r.Patch("/{cardID}/biz", h.PatchBizNumber)
			r.Delete("/{cardID}", h.DeleteCard)
		})
	})
}

func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req CreateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	c, err := h.service.Create(r.Context(), actor, req)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			core.Conflict(w, "bizNumber")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToCardResponse(c))
}

func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, CardListResponse{Cards: ToCardResponseList(cards)})
}

func (h *Handler) GetCard(w http.ResponseWriter, r *http.Request) {
	cardID := chi.URLParam(r, "cardID")

	c, err := h.service.Get(r.Context(), cardID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "card")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToCardResponse(c))
}

func (h *Handler) ListMyCards(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	cards, err := h.service.ListMine(r.Context(), actor.ID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, CardListResponse{Cards: ToCardResponseList(cards)})
}

func (h *Handler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	cardID := chi.URLParam(r, "cardID")

	var req UpdateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	c, err := h.service.Update(r.Context(), actor, cardID, req)
	if err != nil {
		h.writeMutationError(w, err)
		return
	}

	core.OK(w, ToCardResponse(c))
}

func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	cardID := chi.URLParam(r, "cardID")

	c, err := h.service.ToggleLike(r.Context(), actor, cardID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "card")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToCardResponse(c))
}

func (h *Handler) PatchBizNumber(w http.ResponseWriter, r *http.Request) {
	cardID := chi.URLParam(r, "cardID")

	var req PatchBizNumberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	c, err := h.service.PatchBizNumber(r.Context(), cardID, req.BizNumber)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "card")
			return
		}
		if errors.Is(err, ErrBizNumberNotNumeric) {
			core.BadRequest(w, ErrBizNumberNotNumeric.Error())
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToCardResponse(c))
}

func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	cardID := chi.URLParam(r, "cardID")

	c, err := h.service.Delete(r.Context(), actor, cardID)
	if err != nil {
		h.writeMutationError(w, err)
		return
	}

	core.OK(w, ToCardResponse(c))
}

func (h *Handler) writeMutationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "card")
	case errors.Is(err, ErrNotAllowed):
		core.Forbidden(w, ErrNotAllowed.Error())
	default:
		core.InternalServerError(w, err)
	}
}

func requireActor(
	w http.ResponseWriter,
	r *http.Request,
) (authz.Actor, bool) {
	identity := middleware.GetIdentity(r.Context())
	if identity == nil {
		core.Unauthorized(w, "")
		return authz.Actor{}, false
	}

	return authz.Actor{
		ID:         identity.ID,
		IsAdmin:    identity.IsAdmin,
		IsBusiness: identity.IsBusiness,
	}, true
}
