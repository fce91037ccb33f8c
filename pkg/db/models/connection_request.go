package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/venturehub/venturehub-backend/pkg/enums"
)

// ConnectionRequest links a manufacturer to a startup. One row per pair;
// repeats are get-or-create no-ops.
type ConnectionRequest struct {
	ID             uuid.UUID              `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ManufacturerID uuid.UUID              `gorm:"column:manufacturer_id;type:uuid;not null;uniqueIndex:connection_requests_pair_key"`
	StartupID      uuid.UUID              `gorm:"column:startup_id;type:uuid;not null;uniqueIndex:connection_requests_pair_key;index:connection_requests_startup_id_idx"`
	Message        string                 `gorm:"column:message;not null;default:''"`
	Status         enums.ConnectionStatus `gorm:"column:status;type:connection_status;not null;default:'PENDING'"`
	CreatedAt      time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}
