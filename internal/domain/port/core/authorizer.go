package core

import "context"

// Authorizer answers whether a user may perform administrative operations:
// resolving deposit/withdraw requests, mutating the asset registry and reading
// exchange statistics. The trading engine never consults it.
type Authorizer interface {
	// IsPrivileged returns false for unknown users and on lookup failure
	IsPrivileged(ctx context.Context, userID uint64) bool
}
