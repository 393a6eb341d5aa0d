package auth

import (
	"context"
	"strconv"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/persistence"
	"github.com/patrickmn/go-cache"
)

// AdminAuthorizer grants privilege to configured user ids and to the user
// registered with the administrator email. Only the verdict is cached.
type AdminAuthorizer struct {
	users    persistence.UserRepository
	adminIDs map[uint64]struct{}
	email    string
	verdicts *cache.Cache
	logger   coreport.Logger
}

// NewAdminAuthorizer creates an authorizer whose verdicts expire after ttl
func NewAdminAuthorizer(
	users persistence.UserRepository,
	adminIDs []uint64,
	adminEmail string,
	ttl time.Duration,
	logger coreport.Logger,
) *AdminAuthorizer {
	ids := make(map[uint64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		ids[id] = struct{}{}
	}

	return &AdminAuthorizer{
		users:    users,
		adminIDs: ids,
		email:    strings.ToLower(strings.TrimSpace(adminEmail)),
		verdicts: cache.New(ttl, 2*ttl),
		logger:   logger.With(map[string]any{"component": "authorizer"}),
	}
}

var _ coreport.Authorizer = (*AdminAuthorizer)(nil)

// IsPrivileged reports whether userID may run administrative operations.
// Only verdicts on registered users are cached; unknown users and lookup
// failures deny without caching, so an admin who registers later is
// recognised at once.
func (a *AdminAuthorizer) IsPrivileged(ctx context.Context, userID uint64) bool {
	if userID == 0 {
		return false
	}
	if _, ok := a.adminIDs[userID]; ok {
		return true
	}
	if a.email == "" {
		return false
	}

	key := strconv.FormatUint(userID, 10)
	if verdict, found := a.verdicts.Get(key); found {
		return verdict.(bool)
	}

	user, err := a.users.GetByID(ctx, userID)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return false
		}
		a.logger.Error("Failed to look up user for authorization", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return false
	}

	verdict := strings.EqualFold(user.Email, a.email)
	a.verdicts.SetDefault(key, verdict)
	return verdict
}

