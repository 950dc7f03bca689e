// SPDX-License-Identifier: EPL-2.0

package foxaudio

import (
	"strings"
	"testing"

	"github.com/ik5/foxaudio/internal/nativetest"
	"github.com/ik5/foxaudio/native"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewPedanticRegistry()
	mt, err := NewMetrics(reg)
	require.NoError(t, err)

	counting, _, _ := nativetest.Engine()
	m := New(counting, WithMetrics(mt))
	require.NoError(t, m.Init(DefaultConfig()))
	t.Cleanup(func() { m.Unload() })

	tone := nativetest.Tone(t, 100)
	snd, err := m.LoadStreamedSoundFromBytes(tone)
	require.NoError(t, err)
	_, err = m.LoadSoundFromBytes(tone)
	require.NoError(t, err)

	require.NoError(t, m.Update())
	require.NoError(t, m.Update())

	assert.Equal(t, float64(len(tone)), testutil.ToFloat64(mt.pinnedBytes))
	assert.Equal(t, float64(2), testutil.ToFloat64(mt.updatesTotal))

	counting.Fail("SystemUpdate", native.ErrInternal)
	assert.ErrorIs(t, m.Update(), native.ErrInternal)
	assert.Equal(t, float64(1), testutil.ToFloat64(mt.errorsTotal.WithLabelValues("ERR_INTERNAL")))

	expected := `
# HELP foxaudio_live_handles Number of live wrapper handles per registry
# TYPE foxaudio_live_handles gauge
foxaudio_live_handles{kind="bank"} 0
foxaudio_live_handles{kind="channel_group"} 1
foxaudio_live_handles{kind="event_description"} 0
foxaudio_live_handles{kind="event_instance"} 0
foxaudio_live_handles{kind="sound"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "foxaudio_live_handles"))

	require.NoError(t, snd.Dispose())
	assert.Zero(t, testutil.ToFloat64(mt.pinnedBytes))
}

func TestMetricsDoubleRegister(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	assert.Error(t, err)
}

func TestNilMetrics(t *testing.T) {
	t.Parallel()

	var mt *Metrics
	mt.update()
	mt.pinned(10)
	mt.nativeError(native.ErrInternal)
	mt.watch(nil)
}
