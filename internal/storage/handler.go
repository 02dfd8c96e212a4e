// AngelaMos | 2026
// handler.go

package storage

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/oklog/ulid/v2"

	"github.com/locagram/locagram-api/internal/core"
	"github.com/locagram/locagram-api/internal/middleware"
	"github.com/locagram/locagram-api/internal/quota"
)

// PermissionChecker reports whether an account may upload listing
// images right now. Satisfied by the listing service.
type PermissionChecker interface {
	Permissions(ctx context.Context, userID string) (quota.Decision, error)
}

type Handler struct {
	store       ObjectStorage
	validator   *ImageValidator
	permissions PermissionChecker
}

func NewHandler(
	store ObjectStorage,
	validator *ImageValidator,
	permissions PermissionChecker,
) *Handler {
	return &Handler{
		store:       store,
		validator:   validator,
		permissions: permissions,
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/uploads", func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/listings", h.UploadListingImage)
	})
}

type uploadResponse struct {
	URL string `json:"url"`
}

// UploadListingImage accepts one multipart image under the "image"
// field and stores it under a fresh key. Uploading stays open for
// accounts that merely hit their quota; only inactive accounts are
// shut out.
func (h *Handler) UploadListingImage(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	decision, err := h.permissions.Permissions(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}
	if !decision.CanUpload {
		core.Forbidden(w, decision.Reason)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.validator.MaxSize()+4096)
	if err := r.ParseMultipartForm(h.validator.MaxSize()); err != nil {
		core.BadRequest(w, "invalid multipart body")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		core.BadRequest(w, "missing image field")
		return
	}
	defer file.Close() //nolint:errcheck // read-only handle

	contentType, err := h.validator.Validate(header.Filename, header.Size)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	ext := strings.ToLower(path.Ext(header.Filename))
	key := fmt.Sprintf("listings/%s%s", ulid.Make().String(), ext)

	url, err := h.store.Put(r.Context(), key, contentType, file, header.Size)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, uploadResponse{URL: url})
}
