// SPDX-License-Identifier: MIT
// Package geo holds node coordinates and the great-circle distance used to
// weight spanning-forest edges.
//
// Locations are optional per node: a missing entry is valid and callers must
// tolerate it (the spanning-forest builder simply excludes such edges).
package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/geosocial/core"
)

// EarthRadiusKm is the mean Earth radius used by Haversine.
const EarthRadiusKm = 6371.0

// ErrInvalidLocation indicates latitude outside [-90, 90], longitude outside
// [-180, 180], or a NaN/Inf coordinate.
var ErrInvalidLocation = errors.New("geo: invalid location")

// Location is a (latitude, longitude) pair in degrees.
type Location struct {
	Lat float64
	Lon float64
}

// Validate reports ErrInvalidLocation for out-of-range or non-finite coordinates.
func (l Location) Validate() error {
	switch {
	case math.IsNaN(l.Lat) || math.IsNaN(l.Lon) || math.IsInf(l.Lat, 0) || math.IsInf(l.Lon, 0):
		return fmt.Errorf("%w: non-finite coordinate (%g, %g)", ErrInvalidLocation, l.Lat, l.Lon)
	case l.Lat < -90 || l.Lat > 90:
		return fmt.Errorf("%w: latitude %g not in [-90, 90]", ErrInvalidLocation, l.Lat)
	case l.Lon < -180 || l.Lon > 180:
		return fmt.Errorf("%w: longitude %g not in [-180, 180]", ErrInvalidLocation, l.Lon)
	}

	return nil
}

// Locations maps nodes to coordinates. Absent nodes have no known location.
type Locations map[core.NodeID]Location

// Lookup returns the location of id and whether it is known. A nil map has no locations.
func (ls Locations) Lookup(id core.NodeID) (Location, bool) {
	l, ok := ls[id]

	return l, ok
}

// Haversine returns the great-circle distance in kilometres between a and b
// on a sphere of radius EarthRadiusKm:
//
//	a = sin²(Δlat/2) + cos(lat1)·cos(lat2)·sin²(Δlon/2)
//	d = 2·R·atan2(√a, √(1−a))
//
// Complexity: O(1).
func Haversine(a, b Location) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := lat2 - lat1
	dLon := radians(b.Lon) - radians(a.Lon)

	sLat := math.Sin(dLat / 2)
	sLon := math.Sin(dLon / 2)
	h := sLat*sLat + math.Cos(lat1)*math.Cos(lat2)*sLon*sLon
	// Rounding can push h just outside [0, 1] for near-antipodal points.
	h = min(max(h, 0), 1)

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
