package metrics_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gfsrg/metrics"
)

func TestCollector_Counts(t *testing.T) {
	c := metrics.New()
	c.GraphBuilt(16)
	c.GraphBuilt(16)
	c.GraphChecked(metrics.ResultSRG)
	c.GraphChecked(metrics.ResultDisconnected)
	c.TaskFailed(metrics.StageCheck)
	c.ObserveTask(metrics.StageBuild, time.Now())

	n, err := testutil.GatherAndCount(c.Registry(), "gfsrg_graphs_built_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n, "one label series")

	n, err = testutil.GatherAndCount(c.Registry(), "gfsrg_graphs_checked_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = testutil.GatherAndCount(c.Registry(), "gfsrg_task_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCollector_WriteTextfile(t *testing.T) {
	c := metrics.New()
	c.GraphBuilt(64)
	c.TaskFailed(metrics.StageBuild)

	path := filepath.Join(t.TempDir(), "gfsrg.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `gfsrg_graphs_built_total{order="64"} 1`)
	assert.Contains(t, string(data), `gfsrg_task_failures_total{stage="build"} 1`)

	// blank path disables export
	assert.NoError(t, c.WriteTextfile(""))
}

func TestCollector_Nil(t *testing.T) {
	var c *metrics.Collector
	assert.NotPanics(t, func() {
		c.GraphBuilt(4)
		c.GraphChecked(metrics.ResultNotSRG)
		c.TaskFailed(metrics.StageBuild)
		c.ObserveTask(metrics.StageCheck, time.Now())
	})
	assert.Nil(t, c.Registry())
	assert.NoError(t, c.WriteTextfile("/nonexistent/x.prom"))
}
