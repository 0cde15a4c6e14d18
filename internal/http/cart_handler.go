package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/fjod/go_cart/storefront/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

const maxRequestBodySize = 1 << 20 // 1MB

type CartHandler struct {
	service *service.CartService
	timeout time.Duration
	log     logrus.FieldLogger
}

func NewCartHandler(svc *service.CartService, timeout time.Duration, log logrus.FieldLogger) *CartHandler {
	return &CartHandler{
		service: svc,
		timeout: timeout,
		log:     log,
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	snapshot := h.service.GetCart(ctx, getVisitorIDFromContext(r.Context()))
	h.respondCart(w, http.StatusOK, snapshot)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req AddItemRequestDTO
	if err := decodeBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID == nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	snapshot, err := h.service.AddItem(ctx, getVisitorIDFromContext(r.Context()), *req.ProductID)
	if err != nil {
		h.internalError(w, err)
		return
	}
	h.respondCart(w, http.StatusCreated, snapshot)
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	var req UpdateQuantityRequestDTO
	if err := decodeBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity == nil {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity is required")
		return
	}

	snapshot, err := h.service.UpdateQuantity(ctx, getVisitorIDFromContext(r.Context()), productID, *req.Quantity)
	if err != nil {
		h.internalError(w, err)
		return
	}
	h.respondCart(w, http.StatusOK, snapshot)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	snapshot, err := h.service.RemoveItem(ctx, getVisitorIDFromContext(r.Context()), productID)
	if err != nil {
		h.internalError(w, err)
		return
	}
	h.respondCart(w, http.StatusOK, snapshot)
}

func (h *CartHandler) respondCart(w http.ResponseWriter, status int, snapshot domain.Snapshot) {
	respondJSON(w, status, convertCart(snapshot, h.service.Summary(snapshot)))
}

func (h *CartHandler) internalError(w http.ResponseWriter, err error) {
	h.log.WithError(err).Error("cart request failed")
	respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
}

func productIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be an integer")
		return 0, false
	}
	return productID, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	return json.NewDecoder(r.Body).Decode(dst)
}
