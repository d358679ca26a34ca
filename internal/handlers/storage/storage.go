package storage

import (
	"context"
	"net/http"
	"time"

	"github.com/GlebRadaev/ordertracker/internal/domain"
	"github.com/GlebRadaev/ordertracker/internal/dto"
	"github.com/GlebRadaev/ordertracker/internal/handlers/apierr"
	"github.com/GlebRadaev/ordertracker/pkg/utils"
)

type Service interface {
	Status(ctx context.Context) *domain.StorageStatus
}

type MigrateService interface {
	Run(ctx context.Context) (*domain.MigrationResult, error)
}

type StorageHandler struct {
	storageService Service
	migrateService MigrateService
}

func New(storageService Service, migrateService MigrateService) *StorageHandler {
	return &StorageHandler{
		storageService: storageService,
		migrateService: migrateService,
	}
}

// GetStatus godoc
//
//	@Summary		Storage backend status
//	@Description	Which backend serves the ledger and whether it answers.
//	@Tags			Storage
//	@Produce		json
//	@Success		200	{object}	dto.StorageStatusDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/storage [get]
func (h *StorageHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status := h.storageService.Status(r.Context())
	utils.RespondWithJSON(w, http.StatusOK, dto.StorageStatusDTO{
		Backend:   status.Backend,
		External:  status.External,
		Healthy:   status.Healthy,
		Error:     status.Error,
		CheckedAt: status.CheckedAt.UTC().Format(time.RFC3339),
	})
}

// Migrate godoc
//
//	@Summary		Copy the in-process ledger to the external store
//	@Description	Copies every order and activity held in memory into the configured external store.
//	@Tags			Storage
//	@Produce		json
//	@Success		200	{object}	dto.MigrationResponseDTO
//	@Failure		400	{object}	utils.Response	"No external storage configured"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Migration failed"
//	@Router			/api/migrate-to-kv [post]
func (h *StorageHandler) Migrate(w http.ResponseWriter, r *http.Request) {
	result, err := h.migrateService.Run(r.Context())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MigrationResponseDTO{
		Success:            true,
		MigratedOrders:     result.MigratedOrders,
		MigratedActivities: result.MigratedActivities,
		Message:            "Migración completada exitosamente",
	})
}
