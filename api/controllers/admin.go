package controllers

import (
	"net/http"

	"github.com/venturehub/venturehub-backend/api/responses"
	"github.com/venturehub/venturehub-backend/internal/adminops"
	"github.com/venturehub/venturehub-backend/internal/applications"
	"github.com/venturehub/venturehub-backend/internal/connections"
	"github.com/venturehub/venturehub-backend/internal/startups"
	"github.com/venturehub/venturehub-backend/internal/users"
	"github.com/venturehub/venturehub-backend/pkg/enums"
	"github.com/venturehub/venturehub-backend/pkg/logger"
)

// AdminStats returns the dashboard aggregates.
func AdminStats(svc adminops.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, stats)
	}
}

// AdminUsers lists non-admin accounts with role and search filters.
func AdminUsers(svc adminops.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cursor, limit, err := pageParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filter := users.ListFilter{
			Role:   enums.Role(r.URL.Query().Get("role")),
			Search: r.URL.Query().Get("search"),
		}
		page, err := svc.ListUsers(r.Context(), filter, cursor, limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

// AdminUserDetail returns one account with its role profile and counts.
func AdminUserDetail(svc adminops.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "userId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		detail, err := svc.UserDetail(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, detail)
	}
}

// AdminUserDelete removes a non-admin account and its dependent rows.
func AdminUserDelete(svc adminops.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "userId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteUser(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// AdminStartups lists startups for moderation, pending and approved alike.
func AdminStartups(svc adminops.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cursor, limit, err := pageParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		approval := startups.ApprovalFilter(r.URL.Query().Get("approval"))
		page, err := svc.ModerateStartups(r.Context(), approval, r.URL.Query().Get("search"), cursor, limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

// AdminStartupApprove marks a startup approved, making it publicly visible.
func AdminStartupApprove(svc adminops.Service, logg *logger.Logger) http.HandlerFunc {
	return adminStartupApproval(svc, true, logg)
}

// AdminStartupReject revokes a startup's approval.
func AdminStartupReject(svc adminops.Service, logg *logger.Logger) http.HandlerFunc {
	return adminStartupApproval(svc, false, logg)
}

func adminStartupApproval(svc adminops.Service, approved bool, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "startupId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.SetStartupApproval(r.Context(), id, approved); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status := "approved"
		if !approved {
			status = "rejected"
		}
		responses.WriteSuccess(w, map[string]string{"status": status})
	}
}

// AdminApplications lists all applications across the platform.
func AdminApplications(svc adminops.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cursor, limit, err := pageParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filter := applications.AdminFilter{
			Status: enums.ApplicationStatus(r.URL.Query().Get("status")),
			Search: r.URL.Query().Get("search"),
		}
		page, err := svc.ListApplications(r.Context(), filter, cursor, limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

// AdminConnections lists all connection requests across the platform.
func AdminConnections(svc adminops.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cursor, limit, err := pageParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filter := connections.AdminFilter{
			Status: enums.ConnectionStatus(r.URL.Query().Get("status")),
			Search: r.URL.Query().Get("search"),
		}
		page, err := svc.ListConnections(r.Context(), filter, cursor, limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}
