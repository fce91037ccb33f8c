package controllers

import (
	"net/http"

	"github.com/venturehub/venturehub-backend/api/middleware"
	"github.com/venturehub/venturehub-backend/api/responses"
	"github.com/venturehub/venturehub-backend/api/validators"
	"github.com/venturehub/venturehub-backend/internal/startups"
	"github.com/venturehub/venturehub-backend/pkg/enums"
	"github.com/venturehub/venturehub-backend/pkg/logger"
)

// StartupBrowse lists approved startups for the directory.
func StartupBrowse(svc startups.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cursor, limit, err := pageParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filter := startups.BrowseFilter{
			Search: r.URL.Query().Get("search"),
			Niche:  r.URL.Query().Get("niche"),
			Stage:  r.URL.Query().Get("stage"),
		}
		page, err := svc.Browse(r.Context(), filter, cursor, limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

// StartupDetail returns one startup, honoring approval visibility.
func StartupDetail(svc startups.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "startupId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		userID, err := contextUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		viewer := startups.Viewer{
			UserID: userID,
			Role:   enums.Role(middleware.RoleFromContext(r.Context())),
		}
		detail, err := svc.Detail(r.Context(), viewer, id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, detail)
	}
}

// StartupMe returns the founder's own startup, approved or not.
func StartupMe(svc startups.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := contextUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		detail, err := svc.MyStartup(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, detail)
	}
}

// StartupUpdate edits the founder's startup profile fields.
func StartupUpdate(svc startups.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := contextUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body startups.UpdateStartupDTO
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.UpdateProfile(r.Context(), userID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}
