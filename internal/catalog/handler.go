package catalog

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/stride-commerce/stride/internal/auth"
	"github.com/stride-commerce/stride/internal/platform/httpx"
	"github.com/stride-commerce/stride/internal/uploads"
)

// maxUploadMemory bounds the multipart form buffer, not the file size.
const maxUploadMemory = 32 << 20

// Handler wires HTTP endpoints for the product catalog.
type Handler struct {
	logger  *slog.Logger
	service *Service
	uploads *uploads.Service
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, uploads *uploads.Service) *Handler {
	return &Handler{logger: logger, service: service, uploads: uploads}
}

// MountRoutes registers catalog routes. The upload-backed creation path is
// the only one behind authentication; the direct-insert path stays open for
// seeding, matching the public contract.
func (h *Handler) MountRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.With(requireAuth).Post("/upload", h.createWithUpload)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func isClientError(err error) bool {
	return errors.Is(err, httpx.ErrValidation) ||
		errors.Is(err, httpx.ErrNotFound) ||
		errors.Is(err, httpx.ErrDuplicate)
}

// productID treats unparsable identifiers as not found; ids are opaque to
// clients.
func productID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, httpx.ErrNotFound
	}
	return id, nil
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list products failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, products)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		httpx.Error(w, http.StatusNotFound, "product not found")
		return
	}
	product, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	product, err := h.service.Create(r.Context(), req)
	if err != nil {
		if !isClientError(err) {
			h.logger.Error("create product failed", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, product)
}

func (h *Handler) createWithUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "image is required")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil || r.FormValue("name") == "" {
		httpx.Error(w, http.StatusBadRequest, "name and price are required")
		return
	}

	imagePath, err := h.uploads.Store(file, header.Filename)
	if err != nil {
		h.logger.Error("store upload failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "upload failed")
		return
	}

	product, err := h.service.Create(r.Context(), CreateProductRequest{
		Name:        r.FormValue("name"),
		Price:       &price,
		Image:       imagePath,
		Description: r.FormValue("description"),
	})
	if err != nil {
		if !isClientError(err) {
			h.logger.Error("create product with upload failed", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}
	if identity, ok := auth.IdentityFromContext(r.Context()); ok {
		h.logger.Info("product uploaded", slog.String("email", identity.Email), slog.Int64("product_id", product.ID))
	}
	// The upload path has always answered 200, not 201.
	httpx.JSON(w, http.StatusOK, product)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		httpx.Error(w, http.StatusNotFound, "product not found")
		return
	}
	var req UpdateProductRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	product, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		if !isClientError(err) {
			h.logger.Error("update product failed", slog.Any("error", err), slog.Int64("id", id))
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		httpx.Error(w, http.StatusNotFound, "product not found")
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		if !isClientError(err) {
			h.logger.Error("delete product failed", slog.Any("error", err), slog.Int64("id", id))
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "product deleted successfully"})
}
