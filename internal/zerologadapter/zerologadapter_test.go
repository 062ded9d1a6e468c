package zerologadapter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/require"
)

func events(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var evs []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		ev := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(line), &ev), "line %q", line)
		evs = append(evs, ev)
	}
	return evs
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	tr := NewWithWriter(&buf)
	require.Equal(t, tracing.LevelError, tr.GetTraceLevel())
	tr.Debugf("hidden")
	tr.Infof("hidden")
	tr.Errorf("shown %d", 1)
	tr.SetTraceLevel(tracing.LevelDebug)
	tr.Debugf("shown %d", 2)
	evs := events(t, &buf)
	require.Len(t, evs, 2)
	require.Equal(t, "error", evs[0]["level"])
	require.Equal(t, "shown 1", evs[0]["message"])
	require.Equal(t, "debug", evs[1]["level"])
	require.Equal(t, "shown 2", evs[1]["message"])
}

func TestFields(t *testing.T) {
	var buf bytes.Buffer
	tr := NewWithWriter(&buf)
	tr.SetTraceLevel(tracing.LevelInfo)
	tr.P("state", 17).P("rune", "x").Infof("stepping")
	tr.Infof("plain")
	evs := events(t, &buf)
	require.Len(t, evs, 2)
	require.Equal(t, float64(17), evs[0]["state"])
	require.Equal(t, "x", evs[0]["rune"])
	require.NotContains(t, evs[1], "state")
}

func TestSetOutput(t *testing.T) {
	var first, second bytes.Buffer
	tr := NewWithWriter(&first)
	tr.SetOutput(&second)
	tr.Errorf("moved")
	require.Zero(t, first.Len())
	require.Len(t, events(t, &second), 1)
}
