package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/ordertracker/internal/domain"
	"github.com/GlebRadaev/ordertracker/internal/dto"
	"github.com/GlebRadaev/ordertracker/internal/handlers/apierr"
	"github.com/GlebRadaev/ordertracker/pkg/auth"
	"github.com/GlebRadaev/ordertracker/pkg/utils"
	"github.com/GlebRadaev/ordertracker/pkg/validate"
)

type Service interface {
	Create(ctx context.Context, actorID int, in domain.NewOrder) (*domain.Order, error)
	Update(ctx context.Context, actorID, id int, patch domain.OrderPatch) (*domain.Order, error)
	RegisterPayment(ctx context.Context, actorID, id int, payment domain.Payment) (*domain.Order, error)
	ListByBucket(ctx context.Context, month, year int) ([]domain.Order, error)
}

type OrderHandler struct {
	orderService Service
	now          func() time.Time
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		now:          time.Now,
	}
}

// ListOrders godoc
//
//	@Summary		List orders of a month
//	@Description	Orders of the given month bucket, newest first. Month and year default to the current ones.
//	@Tags			Orders
//	@Produce		json
//	@Param			month	query	int	false	"Month 1-12"
//	@Param			year	query	int	false	"Year"
//	@Success		200	{array}		dto.OrderDTO
//	@Failure		400	{object}	utils.Response	"Invalid month or year"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	month, year, ok := BucketFromQuery(r, h.now())
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid month or year")
		return
	}

	orders, err := h.orderService.ListByBucket(r.Context(), month, year)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderDTOs(orders))
}

// CreateOrder godoc
//
//	@Summary		Create an order
//	@Description	Stores a new order and records a CREATE activity for the caller.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateOrderRequestDTO	true	"New order"
//	@Success		201		{object}	dto.OrderDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequestDTO
	if !decode(w, r, &req) {
		return
	}

	order, err := h.orderService.Create(r.Context(), auth.UserID(r.Context()), req.ToDomain())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewOrderDTO(order))
}

// UpdateOrder godoc
//
//	@Summary		Update an order
//	@Description	Applies the supplied fields and records an UPDATE activity with the old and new price.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Order id"
//	@Param			request	body		dto.UpdateOrderRequestDTO	true	"Fields to change"
//	@Success		200		{object}	dto.OrderDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id} [put]
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}
	var req dto.UpdateOrderRequestDTO
	if !decode(w, r, &req) {
		return
	}

	order, err := h.orderService.Update(r.Context(), auth.UserID(r.Context()), id, req.ToDomain())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderDTO(order))
}

// RegisterPayment godoc
//
//	@Summary		Register a payment to Alex
//	@Description	Sets the cumulative amount paid to Alex and records a PAYMENT activity with the increment.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Order id"
//	@Param			request	body		dto.PaymentRequestDTO	true	"Payment"
//	@Success		200		{object}	dto.OrderDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id}/payment [put]
func (h *OrderHandler) RegisterPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}
	var req dto.PaymentRequestDTO
	if !decode(w, r, &req) {
		return
	}

	order, err := h.orderService.RegisterPayment(r.Context(), auth.UserID(r.Context()), id, req.ToDomain())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderDTO(order))
}

// BucketFromQuery reads month and year, defaulting to the month of now.
func BucketFromQuery(r *http.Request, now time.Time) (month, year int, ok bool) {
	month, ok = utils.QueryInt(r, "month", int(now.Month()))
	if !ok {
		return 0, 0, false
	}
	year, ok = utils.QueryInt(r, "year", now.Year())
	if !ok {
		return 0, 0, false
	}
	return month, year, true
}

func orderID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return 0, false
	}
	return id, true
}

func decode(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := validate.Struct(req); err != nil {
		apierr.Respond(w, fmt.Errorf("%w: %s", domain.ErrValidation, validate.Message(err)))
		return false
	}
	return true
}
