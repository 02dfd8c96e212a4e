// AngelaMos | 2026
// handler.go

package listing

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/locagram/locagram-api/internal/core"
	"github.com/locagram/locagram-api/internal/middleware"
	"github.com/locagram/locagram-api/internal/user"
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
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/listings", func(r chi.Router) {
		r.Get("/", h.Browse)
		r.Get("/featured", h.Featured)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.Get("/mine", h.Mine)
			r.Get("/permissions", h.Permissions)
			r.Post("/", h.Create)
			r.Put("/{listingID}", h.Update)
			r.Put("/{listingID}/status", h.UpdateStatus)
			r.Delete("/{listingID}", h.Delete)
		})

		r.Get("/{listingID}", h.Get)
		r.Post("/{listingID}/contact", h.Contact)
	})
}

func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin/listings", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Get("/", h.AdminList)
		r.Put("/{listingID}/featured", h.SetFeatured)
	})
}

// Browse lists published listings. All filters combine with AND;
// a malformed max_price is rejected rather than ignored.
func (h *Handler) Browse(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}
	filter.Status = r.URL.Query().Get("status")
	if filter.Status == "" {
		filter.Status = StatusActive
	}

	listings, err := h.service.Browse(r.Context(), filter)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, listings)
}

func (h *Handler) Featured(w http.ResponseWriter, r *http.Request) {
	listings, err := h.service.Featured(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, listings)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "listingID")

	listing, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "listing")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, listing)
}

// Contact records a contact request against a listing's counter.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "listingID")

	if err := h.service.ContactRequested(r.Context(), id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "listing")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) Mine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	listings, err := h.service.Mine(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	core.OK(w, listings)
}

// Permissions reports whether the caller may publish or upload right
// now, with a stable reason string when something is denied.
func (h *Handler) Permissions(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	decision, err := h.service.Permissions(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	core.OK(w, decision)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req CreateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	listing, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	core.Created(w, listing)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	isAdmin := middleware.GetUserRole(r.Context()) == user.RoleAdmin
	id := chi.URLParam(r, "listingID")

	var req UpdateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	listing, err := h.service.Update(r.Context(), userID, isAdmin, id, req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	core.OK(w, listing)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	isAdmin := middleware.GetUserRole(r.Context()) == user.RoleAdmin
	id := chi.URLParam(r, "listingID")

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	listing, err := h.service.UpdateStatus(
		r.Context(), userID, isAdmin, id, req.Status)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	core.OK(w, listing)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	isAdmin := middleware.GetUserRole(r.Context()) == user.RoleAdmin
	id := chi.URLParam(r, "listingID")

	if err := h.service.Delete(r.Context(), userID, isAdmin, id); err != nil {
		h.writeServiceError(w, err)
		return
	}

	core.NoContent(w)
}

// AdminList browses listings across every status for moderation.
func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}
	filter.Status = r.URL.Query().Get("status")

	listings, err := h.service.Browse(r.Context(), filter)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, listings)
}

func (h *Handler) SetFeatured(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "listingID")

	var req SetFeaturedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	err := h.service.SetFeatured(r.Context(), id, req.Featured)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "listing")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) parseFilter(
	w http.ResponseWriter,
	r *http.Request,
) (Filter, bool) {
	q := r.URL.Query()

	filter := Filter{
		Location:    q.Get("location"),
		Type:        q.Get("type"),
		NewestFirst: q.Get("sort") == "newest",
	}

	if raw := q.Get("max_price"); raw != "" {
		maxPrice, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || maxPrice < 0 {
			core.BadRequest(w, "max_price must be a non-negative integer")
			return Filter{}, false
		}
		filter.MaxPrice = &maxPrice
	}

	return filter, true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case core.IsAppError(err):
		core.JSONError(w, err)
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "listing")
	case errors.Is(err, core.ErrUnauthorized):
		core.Unauthorized(w, "authentication required")
	case errors.Is(err, core.ErrForbidden):
		core.Forbidden(w, "you do not have access to this listing")
	default:
		core.InternalServerError(w, err)
	}
}
