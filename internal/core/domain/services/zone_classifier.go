package services

import (
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ratecard"
)

// Region groups postal circles for regional pricing.
type Region int

const (
	UnknownRegion Region = iota
	North
	South
	East
	West
	Central
	NorthEast
)

// Locality is everything zone classification needs to know about one end of a route.
type Locality struct {
	Pincode kernel.Pincode
	City    string
	State   string
	Region  Region
	Metro   bool
	Special bool
}

type circle struct {
	state   string
	region  Region
	special bool
}

// ZoneClassifier resolves pincodes against a postal directory and applies the zone
// rules in precedence order:
//
//  1. within-city: same city, or same 3-digit sorting district
//  2. within-state: same state
//  3. metro-to-metro: both ends in a metro
//  4. special: either end in the North-East, Jammu & Kashmir, Kerala, or Andaman & Nicobar
//  5. regional: same region
//  6. rest-of-india: everything else
//
// The directory is keyed by pincode prefix: 3-digit entries override the 2-digit
// postal circle they fall in.
type ZoneClassifier struct {
	circles   map[string]circle
	districts map[string]circle
	metros    map[string]string
}

// NewZoneClassifier returns a classifier backed by the built-in India postal directory.
func NewZoneClassifier() ZoneClassifier {
	return ZoneClassifier{
		circles:   defaultCircles(),
		districts: defaultDistricts(),
		metros:    defaultMetros(),
	}
}

// Locate resolves one end of a route. City and state hints (from a consignee or a
// warehouse record) are used when the directory has no better answer; the directory
// always wins for the state, since merchant-typed state names vary in spelling.
func (z ZoneClassifier) Locate(pincode kernel.Pincode, cityHint, stateHint string) Locality {
	loc := Locality{
		Pincode: pincode,
		City:    normalizePlace(cityHint),
		State:   normalizePlace(stateHint),
	}

	c, ok := z.districts[pincode.Prefix(3)]
	if !ok {
		c, ok = z.circles[pincode.Prefix(2)]
	}
	if ok {
		loc.State = normalizePlace(c.state)
		loc.Region = c.region
		loc.Special = c.special
	}
	if metro, isMetro := z.metros[pincode.Prefix(3)]; isMetro {
		loc.Metro = true
		loc.City = normalizePlace(metro)
	}
	return loc
}

// Classify applies the zone rules to an origin and a destination.
func (z ZoneClassifier) Classify(origin, destination Locality) ratecard.Zone {
	switch {
	case sameCity(origin, destination):
		return ratecard.WithinCity
	case origin.State != "" && origin.State == destination.State:
		return ratecard.WithinState
	case origin.Metro && destination.Metro:
		return ratecard.MetroToMetro
	case origin.Special || destination.Special:
		return ratecard.Special
	case origin.Region != UnknownRegion && origin.Region == destination.Region:
		return ratecard.Regional
	default:
		return ratecard.RestOfIndia
	}
}

func sameCity(a, b Locality) bool {
	if a.City != "" && a.City == b.City {
		return true
	}
	return a.Pincode.Validate() == nil && a.Pincode.Prefix(3) == b.Pincode.Prefix(3)
}

func normalizePlace(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func defaultCircles() map[string]circle {
	m := make(map[string]circle)
	add := func(state string, region Region, special bool, prefixes ...string) {
		for _, p := range prefixes {
			m[p] = circle{state: state, region: region, special: special}
		}
	}
	add("Delhi", North, false, "11")
	add("Haryana", North, false, "12", "13")
	add("Punjab", North, false, "14", "15", "16")
	add("Himachal Pradesh", North, false, "17")
	add("Jammu and Kashmir", North, true, "18", "19")
	add("Uttar Pradesh", North, false, "20", "21", "22", "23", "24", "25", "26", "27", "28")
	add("Rajasthan", West, false, "30", "31", "32", "33", "34")
	add("Gujarat", West, false, "36", "37", "38", "39")
	add("Maharashtra", West, false, "40", "41", "42", "43", "44")
	add("Madhya Pradesh", Central, false, "45", "46", "47", "48")
	add("Chhattisgarh", Central, false, "49")
	add("Telangana", South, false, "50")
	add("Andhra Pradesh", South, false, "51", "52", "53")
	add("Karnataka", South, false, "56", "57", "58", "59")
	add("Tamil Nadu", South, false, "60", "61", "62", "63", "64")
	add("Kerala", South, true, "67", "68", "69")
	add("West Bengal", East, false, "70", "71", "72", "73", "74")
	add("Odisha", East, false, "75", "76", "77")
	add("Assam", NorthEast, true, "78")
	add("North East", NorthEast, true, "79")
	add("Bihar", East, false, "80", "84", "85")
	add("Jharkhand", East, false, "81", "82", "83")
	return m
}

func defaultDistricts() map[string]circle {
	return map[string]circle{
		"160": {state: "Chandigarh", region: North},
		"403": {state: "Goa", region: West},
		"737": {state: "Sikkim", region: NorthEast, special: true},
		"744": {state: "Andaman and Nicobar Islands", region: East, special: true},
	}
}

func defaultMetros() map[string]string {
	return map[string]string{
		"110": "Delhi",
		"400": "Mumbai",
		"411": "Pune",
		"380": "Ahmedabad",
		"500": "Hyderabad",
		"560": "Bengaluru",
		"600": "Chennai",
		"700": "Kolkata",
	}
}
