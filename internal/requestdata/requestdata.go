package requestdata

import (
	"context"

	"github.com/contactdesk/contactdesk-backend/internal/types"
)

type contextKey struct{}

var requestDataKey = contextKey{}

// RequestData is the authenticated identity for the current request. The
// auth middleware attaches it; services read it back through the context.
type RequestData struct {
	TokenString string
	User        *types.User
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	if rd, ok := ctx.Value(requestDataKey).(*RequestData); ok {
		return rd
	}
	return nil
}
