package controllers

import (
	"net/http"

	"github.com/angelmondragon/zencrm-backend/api/responses"
	"github.com/angelmondragon/zencrm-backend/internal/dashboard"
	pkgerrors "github.com/angelmondragon/zencrm-backend/pkg/errors"
	"github.com/angelmondragon/zencrm-backend/pkg/logger"
)

// DashboardStats returns the aggregate snapshot for the caller's account.
func DashboardStats(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		ownerID, err := currentOwnerID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		stats, err := svc.Stats(r.Context(), ownerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, stats)
	}
}
