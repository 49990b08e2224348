package shipping_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/shipping"

	"github.com/stretchr/testify/assert"
)

func TestAdviseForTemperature(t *testing.T) {
	tests := []struct {
		name        string
		high        int
		wantNote    string
		wantCeiling int
	}{
		{"hot_requires_ice_pack", 85, shipping.IcePackNote, 3},
		{"just_above_hot_threshold", 81, shipping.IcePackNote, 3},
		{"hot_threshold_is_exclusive", 80, "", 4},
		{"neutral", 70, "", 4},
		{"cold_threshold_is_exclusive", 40, "", 4},
		{"just_below_cold_threshold", 39, shipping.HeatPackNote, 3},
		{"cold_requires_heat_pack", 20, shipping.HeatPackNote, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advice := shipping.AdviseForTemperature(tt.high)

			assert.Equal(t, tt.high, advice.High)
			assert.Equal(t, tt.wantNote, advice.Note)
			assert.Equal(t, tt.wantCeiling, advice.DayCeiling)
		})
	}
}

func TestServiceCode(t *testing.T) {
	assert.True(t, shipping.ServiceNone.IsNone())
	assert.False(t, shipping.ServiceGround.IsNone())
	assert.Equal(t, "none", shipping.ServiceNone.String())
	assert.Equal(t, "ups_ground_saver", shipping.ServiceGroundSaver.String())
	assert.Equal(t, shipping.ServiceGroundSaver, shipping.DefaultService)
}

func TestTransitEstimate_Days(t *testing.T) {
	estimate := shipping.TransitEstimate{shipping.ServiceGround: 4}

	days, ok := estimate.Days(shipping.ServiceGround)
	assert.True(t, ok)
	assert.Equal(t, 4, days)

	_, ok = estimate.Days(shipping.Service3DaySelect)
	assert.False(t, ok)
}
