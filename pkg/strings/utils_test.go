package strings_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgstrings "github.com/pharmanet/pharmacy-console/pkg/strings"
)

func TestParseTypedValue(t *testing.T) {
	boolValue, err := pkgstrings.ParseTypedValue[bool]("true")
	require.NoError(t, err)
	assert.True(t, boolValue)

	intValue, err := pkgstrings.ParseTypedValue[int]("42")
	require.NoError(t, err)
	assert.Equal(t, 42, intValue)

	int64Value, err := pkgstrings.ParseTypedValue[int64]("-7")
	require.NoError(t, err)
	assert.Equal(t, int64(-7), int64Value)

	durationValue, err := pkgstrings.ParseTypedValue[time.Duration]("90s")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, durationValue)

	timeValue, err := pkgstrings.ParseTypedValue[time.Time]("2026-08-31T12:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC), timeValue)

	unixValue, err := pkgstrings.ParseTypedValue[time.Time]("1000")
	require.NoError(t, err)
	assert.Equal(t, time.Unix(1000, 0), unixValue)

	uuidValue, err := pkgstrings.ParseTypedValue[uuid.UUID]("8f8e6f2e-5b58-4a1a-9f59-0a9a5f1f2b3c")
	require.NoError(t, err)
	assert.Equal(t, "8f8e6f2e-5b58-4a1a-9f59-0a9a5f1f2b3c", uuidValue.String())
}

func TestParseTypedValue_Fails(t *testing.T) {
	_, err := pkgstrings.ParseTypedValue[int]("not a number")
	assert.Error(t, err)

	_, err = pkgstrings.ParseTypedValue[time.Time]("-5")
	assert.Error(t, err)

	_, err = pkgstrings.ParseTypedValue[struct{}]("anything")
	assert.Error(t, err)
}
