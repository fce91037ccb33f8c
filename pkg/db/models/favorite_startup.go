package models

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteStartup links an investor to a bookmarked startup.
type FavoriteStartup struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	InvestorID uuid.UUID `gorm:"column:investor_id;type:uuid;not null;index:favorite_startups_investor_id_idx;uniqueIndex:favorite_startups_pair_key"`
	StartupID  uuid.UUID `gorm:"column:startup_id;type:uuid;not null;index:favorite_startups_startup_id_idx;uniqueIndex:favorite_startups_pair_key"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}
