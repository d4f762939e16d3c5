package utils

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetTestFlag sets a flag to a specific value for the duration of the test.
func SetTestFlag(t *testing.T, name, value string) {
	t.Helper()
	RestoreFlagOnCleanup(t, name)
	require.NoError(t, flag.Set(name, value))
}

// RestoreFlagOnCleanup reverts the flag to its current value when the test is done. Use it when the test
// changes the flag through another path, e.g. a config file.
func RestoreFlagOnCleanup(t *testing.T, name string) {
	t.Helper()
	flagHolder := flag.Lookup(name)
	require.NotNil(t, flagHolder, "Flag %s not found", name)
	prevValue := flagHolder.Value.String()
	t.Cleanup(func() { require.NoError(t, flag.Set(name, prevValue)) })
}
