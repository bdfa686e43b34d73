package ratecard

import (
	"fulfillment/internal/pkg/errs"
)

// Zone is the distance class between a pickup origin and a destination.
// The declaration order is the precedence order used by zone classification.
type Zone int

const (
	UnknownZone Zone = iota
	WithinCity
	WithinState
	MetroToMetro
	Special
	Regional
	RestOfIndia
)

var zoneNames = map[Zone]string{
	WithinCity:   "within-city",
	WithinState:  "within-state",
	MetroToMetro: "metro-to-metro",
	Special:      "special",
	Regional:     "regional",
	RestOfIndia:  "rest-of-india",
}

// ParseZone accepts the names returned by Zone.String.
func ParseZone(name string) (Zone, error) {
	for z, n := range zoneNames {
		if n == name {
			return z, nil
		}
	}
	return UnknownZone, errs.NewValueIsInvalidError("zone")
}

// Zones lists every valid zone in precedence order.
func Zones() []Zone {
	return []Zone{WithinCity, WithinState, MetroToMetro, Special, Regional, RestOfIndia}
}

func (z Zone) Validate() error {
	if _, ok := zoneNames[z]; !ok {
		return errs.NewValueIsInvalidError("zone")
	}
	return nil
}

func (z Zone) String() string {
	if n, ok := zoneNames[z]; ok {
		return n
	}
	return "unknown"
}
