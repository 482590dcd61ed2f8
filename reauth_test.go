package broker

import (
	"testing"
	"time"
)

func TestShouldReauthenticateZeroLifetimeDisablesReauth(t *testing.T) {
	now := time.Now()
	authenticatedAt := now.Add(-time.Hour)
	if shouldReauthenticate(0, authenticatedAt, 10*time.Second, now) {
		t.Fatal("sessionLifetime == 0 must never require reauthentication")
	}
	if shouldReauthenticate(0, time.Time{}, 10*time.Second, now) {
		t.Fatal("sessionLifetime == 0 must never require reauthentication, even with no prior auth")
	}
}

func TestShouldReauthenticateNoPriorAuth(t *testing.T) {
	if !shouldReauthenticate(60*time.Second, time.Time{}, 10*time.Second, time.Now()) {
		t.Fatal("an unauthenticated session with sessionLifetime > 0 must require reauthentication")
	}
}

func TestShouldReauthenticateMonotone(t *testing.T) {
	const (
		lifetime  = 60 * time.Second
		threshold = 10 * time.Second
	)
	authenticatedAt := time.Now()

	if shouldReauthenticate(lifetime, authenticatedAt, threshold, authenticatedAt) {
		t.Fatal("elapsed=0 must not require reauthentication")
	}

	boundary := authenticatedAt.Add(lifetime - threshold)
	if !shouldReauthenticate(lifetime, authenticatedAt, threshold, boundary) {
		t.Fatal("elapsed == sessionLifetime-reauthenticationThreshold must require reauthentication (inclusive boundary)")
	}

	var flips int
	prev := false
	for elapsed := time.Duration(0); elapsed <= lifetime; elapsed += time.Second {
		cur := shouldReauthenticate(lifetime, authenticatedAt, threshold, authenticatedAt.Add(elapsed))
		if cur && !prev {
			flips++
		}
		prev = cur
	}
	if flips != 1 {
		t.Fatalf("expected exactly one false->true flip, got %d", flips)
	}
}
