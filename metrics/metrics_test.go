// SPDX-License-Identifier: MIT
package metrics_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geosocial/metrics"
)

func TestRecorder_Gauges(t *testing.T) {
	r := metrics.New()
	r.SetGraph(12, 30)
	r.SetCommunities(3, 4)
	r.SetForest(9, 1234.5)
	r.SetPathAverage(2.5)

	assert.Equal(t, 12.0, testutil.ToFloat64(r.GraphNodes))
	assert.Equal(t, 30.0, testutil.ToFloat64(r.GraphEdges))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.Communities))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.PropagationRounds))
	assert.Equal(t, 9.0, testutil.ToFloat64(r.ForestEdges))
	assert.Equal(t, 1234.5, testutil.ToFloat64(r.ForestWeight))
	assert.Equal(t, 2.5, testutil.ToFloat64(r.PathAverage))
}

func TestRecorder_TrialsAndStages(t *testing.T) {
	r := metrics.New()
	for i := 0; i < 5; i++ {
		r.CountTrial(i%2 == 0)
	}
	r.ObserveStage("sample", 20*time.Millisecond)
	r.ObserveStage("communities", time.Second)

	assert.Equal(t, 3.0, testutil.ToFloat64(r.PathTrials.WithLabelValues(metrics.OutcomeFound)))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.PathTrials.WithLabelValues(metrics.OutcomeNotFound)))
	assert.Equal(t, 2, testutil.CollectAndCount(r.StageDuration))
}

func TestRecorder_Nil(t *testing.T) {
	var r *metrics.Recorder
	assert.NotPanics(t, func() {
		r.SetGraph(1, 1)
		r.SetCommunities(1, 1)
		r.SetForest(1, 1)
		r.SetPathAverage(1)
		r.CountTrial(true)
		r.ObserveStage("x", time.Second)
	})
	assert.Nil(t, r.Registry())
	assert.NoError(t, r.WriteTextfile("/nonexistent/dir/file.prom"))
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := metrics.New()
	r.SetGraph(7, 8)
	path := filepath.Join(t.TempDir(), "geosocial.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "geosocial_graph_nodes 7")
	assert.Contains(t, string(data), "# HELP geosocial_graph_edges")
}
