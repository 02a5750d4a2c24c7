package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueTag_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for range 200 {
		tag := uniqueTag()
		require.False(t, seen[tag], "duplicate tag %q", tag)
		seen[tag] = true
	}
}

func TestNewTenantPayload_Unique(t *testing.T) {
	a := NewTenantPayload()
	b := NewTenantPayload()
	assert.NotEqual(t, a.Slug, b.Slug)
	assert.NotEqual(t, a.APIKey, b.APIKey)
	assert.NotEmpty(t, a.Name)
}

func TestNewVehiclePayload_VINWithinLimit(t *testing.T) {
	for range 20 {
		v := NewVehiclePayload(1)
		assert.LessOrEqual(t, len(v.VIN), 17)
		assert.Equal(t, int64(1), v.TenantID)
	}
}

func TestNewGpsPositionPayload_OptionalFieldsSet(t *testing.T) {
	p := NewGpsPositionPayload(7)
	assert.Equal(t, int64(7), p.VehicleID)
	require.NotNil(t, p.OdometerKm)
	require.NotNil(t, p.SpeedKph)
	require.NotNil(t, p.EngineOn)
	require.NotNil(t, p.FuelLevelLiters)
	assert.NotEmpty(t, p.TimestampUTC)
}
