package controllers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/venturehub/venturehub-backend/api/responses"
	"github.com/venturehub/venturehub-backend/api/validators"
	"github.com/venturehub/venturehub-backend/internal/connections"
	"github.com/venturehub/venturehub-backend/pkg/logger"
)

// ManufacturerConnect requests a connection with an approved startup.
// Repeats on the same pair are no-ops reporting already_requested.
func ManufacturerConnect(svc connections.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		manufacturerID, err := contextProfileID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body connections.ConnectRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Connect(r.Context(), manufacturerID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status := http.StatusCreated
		if result.AlreadyRequested {
			status = http.StatusOK
		}
		responses.WriteSuccessStatus(w, status, result)
	}
}

// ManufacturerConnections lists the manufacturer's connection history.
func ManufacturerConnections(svc connections.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		manufacturerID, err := contextProfileID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		cursor, limit, err := pageParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := svc.ListForManufacturer(r.Context(), manufacturerID, cursor, limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

// StartupConnections lists the startup's incoming requests.
func StartupConnections(svc connections.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		startupID, err := contextProfileID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		cursor, limit, err := pageParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := svc.ListForStartup(r.Context(), startupID, cursor, limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

// ConnectionAccept transitions a pending request to ACCEPTED.
func ConnectionAccept(svc connections.Service, logg *logger.Logger) http.HandlerFunc {
	return connectionTransition(svc.Accept, logg)
}

// ConnectionReject transitions a pending request to REJECTED.
func ConnectionReject(svc connections.Service, logg *logger.Logger) http.HandlerFunc {
	return connectionTransition(svc.Reject, logg)
}

// ConnectionUnfriend severs an accepted connection.
func ConnectionUnfriend(svc connections.Service, logg *logger.Logger) http.HandlerFunc {
	return connectionTransition(svc.Unfriend, logg)
}

func connectionTransition(
	transition func(ctx context.Context, startupID, id uuid.UUID) (*connections.ConnectionDTO, error),
	logg *logger.Logger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "connectionId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		startupID, err := contextProfileID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := transition(r.Context(), startupID, id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}
