package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/angelmondragon/zencrm-backend/api/middleware"
	pkgerrors "github.com/angelmondragon/zencrm-backend/pkg/errors"
)

// currentOwnerID extracts the authenticated user's id from the request context.
func currentOwnerID(r *http.Request) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid user id")
	}
	return id, nil
}
