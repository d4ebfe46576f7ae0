package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/scroller-tech/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLimitCursor(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantCursor int
		wantErr    error
	}{
		{name: "absent", query: "", wantLimit: 0, wantCursor: 0},
		{name: "both set", query: "limit=12&cursor=24", wantLimit: 12, wantCursor: 24},
		{name: "zero cursor", query: "cursor=0", wantCursor: 0},
		{name: "non-numeric limit", query: "limit=abc", wantErr: e.ErrInvalidLimit},
		{name: "zero limit", query: "limit=0", wantErr: e.ErrInvalidLimit},
		{name: "negative cursor", query: "cursor=-1", wantErr: e.ErrInvalidCursor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/products?"+tt.query, nil)

			limit, cursor, err := parseLimitCursor(req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantCursor, cursor)
		})
	}
}

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
	}{
		{e.ErrInvalidLimit, http.StatusBadRequest},
		{e.ErrInvalidCursor, http.StatusBadRequest},
		{e.ErrAsinRequired, http.StatusBadRequest},
		{e.ErrUnknownAction, http.StatusBadRequest},
		{e.ErrNegativeTimeSpent, http.StatusBadRequest},
		{e.ErrDataUnavailable, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		code, _ := ToHTTPResponse(tt.err)
		assert.Equal(t, tt.wantCode, code, tt.err.Error())
	}
}

func TestToHTTPResponse_WrappedError(t *testing.T) {
	wrapped := e.Wrap("TrackUseCase.RecordInteraction", e.ErrUnknownAction)

	code, msg := ToHTTPResponse(wrapped)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, e.ErrUnknownAction.Error(), msg)
}
