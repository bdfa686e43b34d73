package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ratecard"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoneClassifier_Classify(t *testing.T) {
	z := services.NewZoneClassifier()
	locate := func(pin, city, state string) services.Locality {
		p, err := kernel.NewPincode(pin)
		require.NoError(t, err)
		return z.Locate(p, city, state)
	}

	tests := []struct {
		name     string
		origin   services.Locality
		dest     services.Locality
		expected ratecard.Zone
	}{
		{
			name:     "same metro",
			origin:   locate("400072", "Mumbai", "Maharashtra"),
			dest:     locate("400001", "", ""),
			expected: ratecard.WithinCity,
		},
		{
			name:     "same city by name",
			origin:   locate("431001", "Aurangabad", "MH"),
			dest:     locate("431136", " aurangabad ", "Maharashtra"),
			expected: ratecard.WithinCity,
		},
		{
			name:     "same state different cities",
			origin:   locate("400072", "Mumbai", "Maharashtra"),
			dest:     locate("411001", "Pune", "Maharashtra"),
			expected: ratecard.WithinState,
		},
		{
			name:     "metro to metro",
			origin:   locate("110020", "New Delhi", "Delhi"),
			dest:     locate("560001", "Bengaluru", "Karnataka"),
			expected: ratecard.MetroToMetro,
		},
		{
			name:     "metro to metro wins over special",
			origin:   locate("700001", "Kolkata", "West Bengal"),
			dest:     locate("600001", "Chennai", "Tamil Nadu"),
			expected: ratecard.MetroToMetro,
		},
		{
			name:     "kerala is special",
			origin:   locate("110020", "New Delhi", "Delhi"),
			dest:     locate("682001", "Kochi", "Kerala"),
			expected: ratecard.Special,
		},
		{
			name:     "north east is special",
			origin:   locate("560001", "Bengaluru", "Karnataka"),
			dest:     locate("781001", "Guwahati", "Assam"),
			expected: ratecard.Special,
		},
		{
			name:     "andaman overrides the west bengal circle",
			origin:   locate("700001", "Kolkata", "West Bengal"),
			dest:     locate("744101", "Port Blair", ""),
			expected: ratecard.Special,
		},
		{
			name:     "jammu and kashmir is special",
			origin:   locate("141001", "Ludhiana", "Punjab"),
			dest:     locate("190001", "Srinagar", ""),
			expected: ratecard.Special,
		},
		{
			name:     "same region",
			origin:   locate("110020", "New Delhi", "Delhi"),
			dest:     locate("160017", "Chandigarh", ""),
			expected: ratecard.Regional,
		},
		{
			name:     "rest of india",
			origin:   locate("110020", "New Delhi", "Delhi"),
			dest:     locate("302001", "Jaipur", "Rajasthan"),
			expected: ratecard.RestOfIndia,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, z.Classify(tt.origin, tt.dest))
		})
	}
}

func TestZoneClassifier_Locate(t *testing.T) {
	z := services.NewZoneClassifier()
	p, err := kernel.NewPincode("403001")
	require.NoError(t, err)

	loc := z.Locate(p, "Panaji", "Maharashtra")

	assert.Equal(t, "goa", loc.State, "the directory overrides the state hint")
	assert.Equal(t, "panaji", loc.City)
	assert.Equal(t, services.West, loc.Region)
	assert.False(t, loc.Metro)
}
