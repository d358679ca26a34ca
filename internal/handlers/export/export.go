package export

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/GlebRadaev/ordertracker/internal/domain"
	"github.com/GlebRadaev/ordertracker/internal/handlers/apierr"
	"github.com/GlebRadaev/ordertracker/pkg/utils"
)

type Service interface {
	Orders(ctx context.Context, scope domain.ExportScope) (*domain.CSVFile, error)
	Activities(ctx context.Context) (*domain.CSVFile, error)
}

type ExportHandler struct {
	exportService Service
}

func New(exportService Service) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// ExportOrders godoc
//
//	@Summary		Export orders as CSV
//	@Description	all=true exports every order, otherwise the given month. With neither only the header is written.
//	@Tags			Export
//	@Produce		text/csv
//	@Param			month	query		int		false	"Month 1-12"
//	@Param			year	query		int		false	"Year"
//	@Param			all		query		bool	false	"Export every order"
//	@Success		200		{file}		file
//	@Failure		400		{object}	utils.Response	"Invalid query"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/export/orders [get]
func (h *ExportHandler) ExportOrders(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeFromQuery(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid query")
		return
	}

	file, err := h.exportService.Orders(r.Context(), scope)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	writeCSV(w, file)
}

// ExportActivityLog godoc
//
//	@Summary		Export the activity log as CSV
//	@Tags			Export
//	@Produce		text/csv
//	@Success		200	{file}		file
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/export/activity-log [get]
func (h *ExportHandler) ExportActivityLog(w http.ResponseWriter, r *http.Request) {
	file, err := h.exportService.Activities(r.Context())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	writeCSV(w, file)
}

func scopeFromQuery(r *http.Request) (domain.ExportScope, bool) {
	var scope domain.ExportScope
	if raw := r.URL.Query().Get("all"); raw != "" {
		all, err := strconv.ParseBool(raw)
		if err != nil {
			return scope, false
		}
		scope.All = all
	}
	var monthOK, yearOK bool
	scope.Month, monthOK = utils.QueryInt(r, "month", 0)
	scope.Year, yearOK = utils.QueryInt(r, "year", 0)
	return scope, monthOK && yearOK
}

func writeCSV(w http.ResponseWriter, file *domain.CSVFile) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Data); err != nil {
		zap.L().Error("can't write csv", zap.String("filename", file.Filename), zap.Error(err))
	}
}
