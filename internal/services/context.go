package services

import (
	"context"

	"github.com/contactdesk/contactdesk-backend/internal/apierr"
	"github.com/contactdesk/contactdesk-backend/internal/requestdata"
	"github.com/contactdesk/contactdesk-backend/internal/types"
)

// currentUser pulls the authenticated user off the request context. The auth
// middleware guarantees it for protected routes; anything else is a 401.
func currentUser(ctx context.Context) (*types.User, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.User == nil {
		return nil, apierr.Unauthorized("Unauthorized")
	}
	return rd.User, nil
}
