// Package providererr classifies upstream fixture-provider failures so the
// fetch orchestrator can decide whether a provider is worth probing again.
package providererr

import (
	crerr "github.com/cockroachdb/errors"
)

var transientMarker = crerr.New("transient provider failure")

// MarkTransient tags err as a retryable provider failure (network hiccup,
// timeout, throttling, upstream 5xx).
func MarkTransient(err error) error {
	if err == nil {
		return nil
	}
	return crerr.Mark(err, transientMarker)
}

func IsTransient(err error) bool {
	return crerr.Is(err, transientMarker)
}

// Statusf builds an error for a non-2xx provider response; throttling and
// server-side statuses are marked transient.
func Statusf(provider string, status int, body string) error {
	err := crerr.Newf("%s responded with status=%d body=%s", provider, status, body)
	if status == 429 || status >= 500 {
		return MarkTransient(err)
	}
	return err
}
