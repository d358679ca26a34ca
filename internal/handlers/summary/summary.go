package summary

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/ordertracker/internal/domain"
	"github.com/GlebRadaev/ordertracker/internal/dto"
	"github.com/GlebRadaev/ordertracker/internal/handlers/apierr"
	"github.com/GlebRadaev/ordertracker/internal/handlers/orders"
	"github.com/GlebRadaev/ordertracker/pkg/utils"
)

type Service interface {
	GetSummary(ctx context.Context, month, year int) (*domain.Summary, error)
}

type OrderService interface {
	ListByBucket(ctx context.Context, month, year int) ([]domain.Order, error)
}

type SummaryHandler struct {
	summaryService Service
	orderService   OrderService
	now            func() time.Time
}

func New(summaryService Service, orderService OrderService) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
		orderService:   orderService,
		now:            time.Now,
	}
}

// GetSummary godoc
//
//	@Summary		Commission summary
//	@Description	Totals for the reference month, all earlier months and everything, plus pending grouped by month.
//	@Tags			Summary
//	@Produce		json
//	@Param			month	query		int	false	"Reference month 1-12"
//	@Param			year	query		int	false	"Reference year"
//	@Success		200		{object}	dto.SummaryDTO
//	@Failure		400		{object}	utils.Response	"Invalid month or year"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/summary [get]
func (h *SummaryHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	month, year, ok := orders.BucketFromQuery(r, h.now())
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid month or year")
		return
	}

	summary, err := h.summaryService.GetSummary(r.Context(), month, year)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSummaryDTO(summary))
}

// GetDashboard godoc
//
//	@Summary		Dashboard
//	@Description	Orders of the month and the summary in one response.
//	@Tags			Summary
//	@Produce		json
//	@Param			month	query		int	false	"Month 1-12"
//	@Param			year	query		int	false	"Year"
//	@Success		200		{object}	dto.DashboardDTO
//	@Failure		400		{object}	utils.Response	"Invalid month or year"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/dashboard [get]
func (h *SummaryHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	month, year, ok := orders.BucketFromQuery(r, h.now())
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid month or year")
		return
	}

	var (
		list    []domain.Order
		summary *domain.Summary
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		list, err = h.orderService.ListByBucket(ctx, month, year)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = h.summaryService.GetSummary(ctx, month, year)
		return err
	})
	if err := g.Wait(); err != nil {
		apierr.Respond(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.DashboardDTO{
		Orders:  dto.NewOrderDTOs(list),
		Summary: dto.NewSummaryDTO(summary),
	})
}
