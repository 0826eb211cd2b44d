//go:build unit || e2e

package testutil

import (
	"testing"

	"hub-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertErrorIs matches through errs.Mark markers, which errors.Is does not see.
func AssertErrorIs(t testing.TB, err, target error) bool {
	t.Helper()
	return assert.Truef(t, errs.Is(err, target), "expected %v in the chain of %v", target, err)
}

func RequireErrorIs(t testing.TB, err, target error) {
	t.Helper()
	require.Truef(t, errs.Is(err, target), "expected %v in the chain of %v", target, err)
}
