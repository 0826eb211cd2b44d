//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"hub-booking/internal/handler/httperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccessResponse checks the status and decodes a 2xx body into target when given.
func AssertSuccessResponse(t testing.TB, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equalf(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if expectedStatus >= 200 && expectedStatus < 300 && target != nil {
		assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), target), "decode body: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and that the public message contains
// expectedMsg. The decoded envelope is returned for detail checks.
func AssertErrorResponse(t testing.TB, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) httperr.Response {
	t.Helper()

	assert.Equalf(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var resp httperr.Response
	assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &resp), "decode error body: %s", w.Body.String())
	if expectedMsg != "" {
		assert.Contains(t, resp.Error.Message, expectedMsg)
	}
	return resp
}

// AssertConflicts expects a 409 whose detail lists exactly the given bookings, in order.
func AssertConflicts(t testing.TB, w *httptest.ResponseRecorder, bookingIDs ...uuid.UUID) []httperr.ConflictRange {
	t.Helper()

	resp := AssertErrorResponse(t, w, 409, "already booked")
	require.NotNil(t, resp.Detail, "conflict response without detail")

	got := make([]string, 0, len(resp.Detail.Conflicts))
	for _, c := range resp.Detail.Conflicts {
		got = append(got, c.BookingID)
	}
	want := make([]string, 0, len(bookingIDs))
	for _, id := range bookingIDs {
		want = append(want, id.String())
	}
	assert.Equal(t, want, got)
	return resp.Detail.Conflicts
}
