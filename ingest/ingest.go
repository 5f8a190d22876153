// SPDX-License-Identifier: MIT
// Package ingest reads the raw location and connection files.
//
// Locations: one "lat,lon" row per user; the user id is the 1-based ordinal
// of the row. Connections: "owner,n1,n2,..." rows; empty fields are ignored.
// Malformed rows are skipped and logged with their line number. A read error
// from the underlying reader aborts the load.
package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/geosocial/core"
	"github.com/katalvlaran/geosocial/geo"
)

// maxLine bounds a single row; hub rows of crawled graphs run long.
const maxLine = 64 << 20

// ErrMalformedRow describes a row that was skipped.
var ErrMalformedRow = errors.New("ingest: malformed row")

// Stats summarises one load.
type Stats struct {
	Rows        int // non-blank rows read
	Loaded      int // rows kept
	Skipped     int // malformed rows
	Duplicates  int // connection rows replacing an earlier row of the same owner
	Connections int // neighbor entries over the kept rows
}

// AveragePerUser is Connections / Loaded, 0 when nothing was loaded.
func (s Stats) AveragePerUser() float64 {
	if s.Loaded == 0 {
		return 0
	}

	return float64(s.Connections) / float64(s.Loaded)
}

// LoadLocations reads "lat,lon" rows. Every non-blank row consumes an id,
// including malformed ones, so ids stay aligned with row ordinals.
func LoadLocations(r io.Reader, log *zap.Logger) (geo.Locations, Stats, error) {
	log = orNop(log)
	var (
		st   Stats
		locs = make(geo.Locations)
	)
	err := scan(r, func(line int, text string) {
		st.Rows++
		id := core.NodeID(st.Rows)
		loc, err := parseLocation(text)
		if err != nil {
			st.Skipped++
			log.Warn("skipping location row", zap.Int("line", line), zap.Error(err))
			return
		}
		locs[id] = loc
		st.Loaded++
	})
	if err != nil {
		return nil, st, err
	}

	return locs, st, nil
}

// LoadConnections reads "owner,n1,..." rows in file order. A repeated owner
// replaces the earlier neighbor list and keeps the earlier position.
func LoadConnections(r io.Reader, log *zap.Logger) ([]core.Connection, Stats, error) {
	log = orNop(log)
	var (
		st   Stats
		rows []core.Connection
		pos  = make(map[core.NodeID]int)
	)
	err := scan(r, func(line int, text string) {
		ids, err := parseIDs(text)
		if err != nil {
			st.Rows++
			st.Skipped++
			log.Warn("skipping connection row", zap.Int("line", line), zap.Error(err))
			return
		}
		if len(ids) == 0 {
			return // only separators
		}
		st.Rows++
		c := core.Connection{Node: ids[0], Neighbors: ids[1:]}
		if i, seen := pos[c.Node]; seen {
			st.Duplicates++
			st.Connections -= rows[i].Degree()
			rows[i] = c
		} else {
			pos[c.Node] = len(rows)
			rows = append(rows, c)
		}
		st.Connections += c.Degree()
	})
	if err != nil {
		return nil, st, err
	}
	st.Loaded = len(rows)

	return rows, st, nil
}

// LoadLocationsFile opens path with Open and calls LoadLocations.
func LoadLocationsFile(path string, log *zap.Logger) (geo.Locations, Stats, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, Stats{}, err
	}
	defer rc.Close()

	locs, st, err := LoadLocations(rc, log)
	if err != nil {
		return nil, st, fmt.Errorf("ingest: %s: %w", path, err)
	}

	return locs, st, nil
}

// LoadConnectionsFile opens path with Open and calls LoadConnections.
func LoadConnectionsFile(path string, log *zap.Logger) ([]core.Connection, Stats, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, Stats{}, err
	}
	defer rc.Close()

	rows, st, err := LoadConnections(rc, log)
	if err != nil {
		return nil, st, fmt.Errorf("ingest: %s: %w", path, err)
	}

	return rows, st, nil
}

// scan calls fn for every non-blank line with its 1-based line number.
func scan(r io.Reader, fn func(line int, text string)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLine)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fn(line, text)
	}

	return sc.Err()
}

func parseLocation(text string) (geo.Location, error) {
	latField, lonField, ok := strings.Cut(text, ",")
	if !ok || strings.Contains(lonField, ",") {
		return geo.Location{}, fmt.Errorf("%w: want 2 fields", ErrMalformedRow)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latField), 64)
	if err != nil {
		return geo.Location{}, fmt.Errorf("%w: latitude: %v", ErrMalformedRow, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonField), 64)
	if err != nil {
		return geo.Location{}, fmt.Errorf("%w: longitude: %v", ErrMalformedRow, err)
	}
	loc := geo.Location{Lat: lat, Lon: lon}
	if err := loc.Validate(); err != nil {
		return geo.Location{}, fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}

	return loc, nil
}

func parseIDs(text string) ([]core.NodeID, error) {
	fields := strings.Split(text, ",")
	ids := make([]core.NodeID, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: id %q: %v", ErrMalformedRow, f, err)
		}
		ids = append(ids, core.NodeID(v))
	}

	return ids, nil
}

func orNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}

	return log
}
