package broker

import "time"

// shouldReauthenticate reports whether a new SASL exchange is required
// before the next request. It is pure and idempotent: isConnected consults
// it on every call, so the first RPC after the threshold crosses
// transparently re-enters connect.
//
// The boundary uses >= rather than >: "reauth if within
// reauthenticationThreshold of expiry, or past it." The source this was
// distilled from is ambiguous here; we preserve the inclusive boundary.
func shouldReauthenticate(sessionLifetime time.Duration, authenticatedAt time.Time, reauthenticationThreshold time.Duration, now time.Time) bool {
	if sessionLifetime == 0 {
		return false
	}
	if authenticatedAt.IsZero() {
		return true
	}
	elapsed := now.Sub(authenticatedAt)
	return elapsed+reauthenticationThreshold >= sessionLifetime
}
