package adminops

import (
	"github.com/venturehub/venturehub-backend/internal/applications"
	"github.com/venturehub/venturehub-backend/internal/investors"
	"github.com/venturehub/venturehub-backend/internal/manufacturers"
	"github.com/venturehub/venturehub-backend/internal/startups"
	"github.com/venturehub/venturehub-backend/internal/users"
)

// UserCounts breaks the user base down by role. Admin accounts are counted
// but never listed.
type UserCounts struct {
	Startups      int64 `json:"startups"`
	Investors     int64 `json:"investors"`
	Manufacturers int64 `json:"manufacturers"`
	Admins        int64 `json:"admins"`
}

// StartupCounts splits startups by moderation state.
type StartupCounts struct {
	Approved int64 `json:"approved"`
	Pending  int64 `json:"pending"`
}

// RecentActivity holds the newest rows for the dashboard.
type RecentActivity struct {
	Users        []users.UserDTO               `json:"users"`
	Startups     []startups.StartupDTO         `json:"startups"`
	Applications []applications.ApplicationDTO `json:"applications"`
}

// DashboardStatsDTO is the admin landing-page summary.
type DashboardStatsDTO struct {
	Users               UserCounts     `json:"users"`
	Startups            StartupCounts  `json:"startups"`
	PendingApplications int64          `json:"pending_applications"`
	PendingConnections  int64          `json:"pending_connections"`
	Recent              RecentActivity `json:"recent"`
}

// RelatedCounts summarizes a user's footprint across the workflows. Only
// the fields relevant to the user's role are populated.
type RelatedCounts struct {
	Applications int64 `json:"applications"`
	Connections  int64 `json:"connections"`
	Favorites    int64 `json:"favorites"`
}

// UserDetailDTO is the admin view of a single user: the account, the role
// profile, and the user's activity footprint.
type UserDetailDTO struct {
	User                users.UserDTO                         `json:"user"`
	StartupProfile      *startups.StartupDTO                  `json:"startup_profile,omitempty"`
	InvestorProfile     *investors.InvestorProfileDTO         `json:"investor_profile,omitempty"`
	ManufacturerProfile *manufacturers.ManufacturerProfileDTO `json:"manufacturer_profile,omitempty"`
	Related             RelatedCounts                         `json:"related"`
}
