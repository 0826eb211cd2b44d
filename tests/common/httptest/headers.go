//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertHeaders compares each expected header; an empty value asserts absence.
func AssertHeaders(t testing.TB, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		if v == "" {
			assert.Emptyf(t, w.Header().Values(k), "header %s should be absent", k)
			continue
		}
		assert.Equalf(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertLocation checks the Location header of a 201 response.
func AssertLocation(t testing.TB, w *httptest.ResponseRecorder, path string) {
	t.Helper()
	AssertHeaders(t, w, map[string]string{"Location": path})
}
