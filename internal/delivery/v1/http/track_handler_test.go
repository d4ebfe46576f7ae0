package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/scroller-tech/go-backend/internal/usecase"
	"github.com/scroller-tech/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Infof(format string, args ...any) {}
func (nopLogger) Warnf(format string, args ...any) {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

type stubTrackUC struct {
	got *usecase.TrackReq
	err error
}

func (s *stubTrackUC) RecordInteraction(_ context.Context, req *usecase.TrackReq) error {
	s.got = req

	return s.err
}

func trackThroughMiddleware(uc *stubTrackUC, body string) *httptest.ResponseRecorder {
	handler := NewTrackHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/track", strings.NewReader(body))
	req.AddCookie(&http.Cookie{Name: userCookieName, Value: "u1"})

	rec := httptest.NewRecorder()
	EnsureUserID(http.HandlerFunc(handler.trackInteraction)).ServeHTTP(rec, req)

	return rec
}

func TestTrackInteraction(t *testing.T) {
	uc := &stubTrackUC{}

	rec := trackThroughMiddleware(uc, `{"action": "liked", "asin": "B00X", "time_spent": 0}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, "u1", uc.got.UserID)
	assert.Equal(t, "liked", string(uc.got.Action))
	assert.Equal(t, "B00X", uc.got.Asin)
}

func TestTrackInteraction_MalformedBody(t *testing.T) {
	uc := &stubTrackUC{}

	rec := trackThroughMiddleware(uc, `{"action":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}

func TestTrackInteraction_ValidationError(t *testing.T) {
	uc := &stubTrackUC{err: e.Wrap("TrackUseCase.RecordInteraction", e.ErrAsinRequired)}

	rec := trackThroughMiddleware(uc, `{"action": "liked", "asin": ""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), e.ErrAsinRequired.Error())
}
