package connections

import (
	"time"

	"github.com/google/uuid"

	"github.com/venturehub/venturehub-backend/pkg/db/models"
	"github.com/venturehub/venturehub-backend/pkg/enums"
)

// ConnectionDTO is the transport shape for a connection request.
type ConnectionDTO struct {
	ID             uuid.UUID              `json:"id"`
	ManufacturerID uuid.UUID              `json:"manufacturer_id"`
	StartupID      uuid.UUID              `json:"startup_id"`
	Message        string                 `json:"message"`
	Status         enums.ConnectionStatus `json:"status"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// ConnectionPageDTO carries one cursor page of connection requests.
type ConnectionPageDTO struct {
	Items      []ConnectionDTO `json:"items"`
	NextCursor *string         `json:"next_cursor,omitempty"`
}

// ConnectRequest is the manufacturer-side payload.
type ConnectRequest struct {
	StartupID uuid.UUID `json:"startup_id" validate:"required"`
	Message   string    `json:"message" validate:"max=2000"`
}

// ConnectResult reports the row and whether it predated this call.
type ConnectResult struct {
	Request          ConnectionDTO `json:"request"`
	AlreadyRequested bool          `json:"already_requested"`
}

func FromModel(c *models.ConnectionRequest) *ConnectionDTO {
	if c == nil {
		return nil
	}

	return &ConnectionDTO{
		ID:             c.ID,
		ManufacturerID: c.ManufacturerID,
		StartupID:      c.StartupID,
		Message:        c.Message,
		Status:         c.Status,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
