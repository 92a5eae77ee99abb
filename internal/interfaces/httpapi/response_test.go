package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/matchpulse/betting-analysis/internal/usecase"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantCode   int
		wantStatus string
	}{
		{
			name:       "invalid input",
			err:        fmt.Errorf("%w: date must be formatted as YYYY-MM-DD", usecase.ErrInvalidInput),
			wantCode:   http.StatusBadRequest,
			wantStatus: "INVALID_ARGUMENT",
		},
		{
			name:       "not found",
			err:        fmt.Errorf("%w: league=serie-b", usecase.ErrNotFound),
			wantCode:   http.StatusNotFound,
			wantStatus: "NOT_FOUND",
		},
		{
			name:       "dependency unavailable",
			err:        fmt.Errorf("%w: catalog store down", usecase.ErrDependencyUnavailable),
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "UNAVAILABLE",
		},
		{
			name:       "unknown error",
			err:        fmt.Errorf("boom"),
			wantCode:   http.StatusInternalServerError,
			wantStatus: "INTERNAL",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mapped := mapError(context.Background(), tc.err)
			if mapped.HTTPStatus != tc.wantCode {
				t.Fatalf("unexpected status code: %d", mapped.HTTPStatus)
			}
			if mapped.Status != tc.wantStatus {
				t.Fatalf("unexpected status: %s", mapped.Status)
			}
		})
	}
}
