// SPDX-License-Identifier: MIT
package report_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geosocial/analysis"
	"github.com/katalvlaran/geosocial/core"
	"github.com/katalvlaran/geosocial/ingest"
	"github.com/katalvlaran/geosocial/labelprop"
	"github.com/katalvlaran/geosocial/pathsample"
	"github.com/katalvlaran/geosocial/report"
	"github.com/katalvlaran/geosocial/spanning"
)

func sampleReport() *analysis.Report {
	return &analysis.Report{
		RunID:           "00000000-0000-0000-0000-000000000001",
		Seed:            9,
		ConnectionStats: &ingest.Stats{Rows: 1200, Loaded: 1200, Connections: 30000},
		Graph:           analysis.GraphSummary{Nodes: 12345, Edges: 67890, Hubs: 4115, Drawn: 8230, Available: 1000000},
		Communities:     &labelprop.Result{Iterations: 7, Converged: true},
		CommunityStats: labelprop.Stats{
			Communities: 3,
			Nodes:       12345,
			Largest:     10000,
			Smallest:    1,
			Buckets:     []labelprop.SizeBucket{{Min: 1, Max: 5, Count: 2}, {Min: 501, Count: 1}},
			Top:         []int{10000, 2344},
		},
		Forest: &spanning.Forest{Candidates: 60000},
		ForestStats: spanning.Stats{
			Edges:       12000,
			TotalWeight: 123456.78,
			Hubs:        2,
			HubExamples: []core.NodeID{17, 42},
		},
		Paths: &pathsample.Estimate{
			Average:   3.5,
			Successes: 990,
			Failures:  10,
			MaxDepth:  2,
			Histogram: map[int]int{1: 40, 2: 950},
		},
		ExamplePath: []core.NodeID{3, 8, 5},
		Timings:     []analysis.Timing{{Stage: analysis.StageSample, Duration: 1500 * time.Millisecond}},
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, sampleReport()))
	out := buf.String()

	for _, want := range []string{
		"WORKING GRAPH",
		"12,345",
		"1,000,000",
		"per user:",
		"size 1-5:",
		"size 501+:",
		"10,000, 2,344",
		"123,456.8 km",
		"12,000 of 60,000 located",
		"17, 42",
		"3.50",
		"depth 2:",
		"950",
		"example path:",
		"3 -> 8 -> 5",
		"1.5s",
	} {
		assert.Contains(t, out, want)
	}
}

func TestWrite_RoundsDecimals(t *testing.T) {
	rep := sampleReport()
	rep.ForestStats.TotalWeight = 99.96
	rep.CommunityStats.Mean = 2.25

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, rep))
	assert.Contains(t, buf.String(), "100 km")
	assert.NotContains(t, buf.String(), "99.9 km")
	assert.Contains(t, buf.String(), "2.3 / ")
}

func TestWrite_MissingSections(t *testing.T) {
	rep := sampleReport()
	rep.Communities = nil
	rep.Forest = nil
	rep.Paths = nil

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, rep))
	assert.Contains(t, buf.String(), "not computed")
	assert.Contains(t, buf.String(), "skipped, fewer than two nodes")
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("pipe closed") }

func TestWrite_Error(t *testing.T) {
	err := report.Write(brokenWriter{}, sampleReport())
	assert.EqualError(t, err, "pipe closed")
}
