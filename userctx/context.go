package userctx

import "context"

// Context key type
type contextKey string

const adminUsernameKey contextKey = "admin_username"

// SetAdminUsername adds the authenticated admin username to request context
func SetAdminUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, adminUsernameKey, username)
}

// GetAdminUsername retrieves the admin username from request context
func GetAdminUsername(ctx context.Context) string {
	username, ok := ctx.Value(adminUsernameKey).(string)
	if !ok {
		return "anonymous"
	}
	return username
}
