package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Rakhulsr/go-cart/app/helpers"
	"github.com/Rakhulsr/go-cart/app/models"
	"github.com/Rakhulsr/go-cart/app/services"
	"github.com/Rakhulsr/go-cart/app/utils/format"
	"github.com/Rakhulsr/go-cart/app/utils/logger"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

const maxQuoteBody = 1 << 20

type QuoteItemRequest struct {
	Name     string      `json:"name" validate:"required"`
	Price    interface{} `json:"price"`
	Quantity int         `json:"quantity"`
	Category string      `json:"category"`
}

type QuoteRequest struct {
	Items     []QuoteItemRequest `json:"items" validate:"dive"`
	IsMember  bool               `json:"is_member"`
	HasCoupon bool               `json:"has_coupon"`
}

type QuoteResponse struct {
	Quote          models.Quote `json:"quote"`
	FormattedTotal string       `json:"formatted_total"`
	Error          string       `json:"error,omitempty"`
}

type QuoteHandler struct {
	render    *render.Render
	validator *validator.Validate
	pricing   *services.PricingService
	log       *logger.Logger
}

func NewQuoteHandler(render *render.Render, validator *validator.Validate, pricing *services.PricingService, log *logger.Logger) *QuoteHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &QuoteHandler{
		render:    render,
		validator: validator,
		pricing:   pricing,
		log:       log,
	}
}

// Quote prices the posted cart. Every request gets its own cart.
func (h *QuoteHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxQuoteBody))
	if err := dec.Decode(&req); err != nil {
		h.log.Warn(r.Context(), "quote: invalid request body: "+err.Error())
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"error": "invalid request body",
		})
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"error": err.Error()})
			return
		}
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": helpers.FormatValidationErrors(verrs),
		})
		return
	}

	inputs := make([]services.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		inputs = append(inputs, services.ItemInput{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Category: item.Category,
		})
	}

	quote, err := h.pricing.Quote(r.Context(), "http", inputs, req.IsMember, req.HasCoupon)
	resp := QuoteResponse{
		Quote:          quote,
		FormattedTotal: format.Money(quote.Total, quote.Currency),
	}
	if err != nil {
		if errors.Is(err, services.ErrNegativeTotal) {
			resp.Error = err.Error()
			_ = h.render.JSON(w, http.StatusUnprocessableEntity, resp)
			return
		}
		h.log.Error(r.Context(), "quote failed", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": "internal error"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, resp)
}

func (h *QuoteHandler) Health(w http.ResponseWriter, r *http.Request) {
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
