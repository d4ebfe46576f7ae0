package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureUserID_MintsCookie(t *testing.T) {
	var gotID string
	handler := EnsureUserID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserIDFromCtx(r.Context())
		require.True(t, ok)
		gotID = id
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/recommendations", nil))

	require.NotEmpty(t, gotID)
	_, err := uuid.Parse(gotID)
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, userCookieName, cookies[0].Name)
	assert.Equal(t, gotID, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, "/", cookies[0].Path)
}

func TestEnsureUserID_KeepsExistingCookie(t *testing.T) {
	var gotID string
	handler := EnsureUserID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = UserIDFromCtx(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations", nil)
	req.AddCookie(&http.Cookie{Name: userCookieName, Value: "existing-id"})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "existing-id", gotID)
	// существующая cookie не перевыпускается
	assert.Empty(t, rec.Result().Cookies())
}
