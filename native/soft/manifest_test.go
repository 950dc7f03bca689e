// SPDX-License-Identifier: EPL-2.0

package soft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManifest(t *testing.T) {
	t.Parallel()

	m, err := ParseManifest([]byte(testBank))
	require.NoError(t, err)

	assert.Equal(t, "bank:/Master", m.Path)
	require.Len(t, m.Events, 3)
	assert.True(t, m.Events[1].Is3D)
	assert.Equal(t, "bus:/SFX/UI", m.Events[0].Bus)

	out, err := m.Marshal()
	require.NoError(t, err)

	again, err := ParseManifest(out)
	require.NoError(t, err)
	assert.Equal(t, m, again)
}

func TestParseManifest_Invalid(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"bank path":     "path: Master\n",
		"event path":    "path: bank:/A\nevents:\n  - path: UI/Cancel\n",
		"bus path":      "path: bank:/A\nbuses:\n  - path: SFX\n",
		"vca path":      "path: bank:/A\nvcas:\n  - path: bus:/SFX\n",
		"bad id":        "path: bank:/A\nid: nope\n",
		"length":        "path: bank:/A\nevents:\n  - path: event:/A\n    length_ms: -1\n",
		"event bus":     "path: bank:/A\nevents:\n  - path: event:/A\n    bus: SFX\n",
		"unnamed param": "path: bank:/A\nparameters:\n  - {min: 0, max: 1}\n",
		"param range":   "path: bank:/A\nparameters:\n  - {name: P, min: 1, max: 0}\n",
		"param default": "path: bank:/A\nparameters:\n  - {name: P, min: 0, max: 1, default: 2}\n",
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseManifest([]byte(data))
			assert.ErrorIs(t, err, errManifest)
		})
	}
}

func TestPathID_Stable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, PathID("event:/A"), PathID("event:/A"))
	assert.NotEqual(t, PathID("event:/A"), PathID("event:/B"))
}
