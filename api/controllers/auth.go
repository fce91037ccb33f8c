package controllers

import (
	"net/http"

	"github.com/venturehub/venturehub-backend/api/responses"
	"github.com/venturehub/venturehub-backend/api/validators"
	"github.com/venturehub/venturehub-backend/internal/auth"
	"github.com/venturehub/venturehub-backend/pkg/enums"
	pkgerrors "github.com/venturehub/venturehub-backend/pkg/errors"
	"github.com/venturehub/venturehub-backend/pkg/logger"
)

// AuthLogin wires a role-scoped login endpoint into the HTTP layer. Each
// role has its own login route; credentials valid for another role are
// rejected by the service.
func AuthLogin(svc auth.Service, role enums.Role, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), role, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
