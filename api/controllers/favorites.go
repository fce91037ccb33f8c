package controllers

import (
	"net/http"

	"github.com/venturehub/venturehub-backend/api/responses"
	"github.com/venturehub/venturehub-backend/internal/favorites"
	"github.com/venturehub/venturehub-backend/pkg/logger"
)

// FavoriteToggle flips the investor's favorite on a startup and reports
// the resulting state.
func FavoriteToggle(svc favorites.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		startupID, err := pathUUID(r, "startupId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		investorID, err := contextProfileID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Toggle(r.Context(), investorID, startupID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// FavoriteList pages through the investor's favorited startups.
func FavoriteList(svc favorites.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		investorID, err := contextProfileID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		cursor, limit, err := pageParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := svc.List(r.Context(), investorID, cursor, limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}
