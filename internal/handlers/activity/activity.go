package activity

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/ordertracker/internal/domain"
	"github.com/GlebRadaev/ordertracker/internal/dto"
	"github.com/GlebRadaev/ordertracker/internal/handlers/apierr"
	"github.com/GlebRadaev/ordertracker/pkg/utils"
)

type Service interface {
	List(ctx context.Context) ([]domain.Activity, error)
}

type ActivityHandler struct {
	activityService Service
}

func New(activityService Service) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// GetActivityLog godoc
//
//	@Summary		Activity log
//	@Description	The most recent activities, newest first, at most 50.
//	@Tags			Activity
//	@Produce		json
//	@Success		200	{array}		dto.ActivityDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/activity-log [get]
func (h *ActivityHandler) GetActivityLog(w http.ResponseWriter, r *http.Request) {
	activities, err := h.activityService.List(r.Context())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewActivityDTOs(activities))
}
