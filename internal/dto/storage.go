package dto

type MigrationResponseDTO struct {
	Success            bool   `json:"success" example:"true"`
	MigratedOrders     int    `json:"migratedOrders" example:"3"`
	MigratedActivities int    `json:"migratedActivities" example:"5"`
	Message            string `json:"message" example:"Migración completada exitosamente"`
}

type StorageStatusDTO struct {
	Backend   string `json:"backend" example:"redis"`
	External  bool   `json:"external" example:"true"`
	Healthy   bool   `json:"healthy" example:"true"`
	Error     string `json:"error,omitempty" example:""`
	CheckedAt string `json:"checked_at" example:"2025-06-10T12:00:00Z"`
}
