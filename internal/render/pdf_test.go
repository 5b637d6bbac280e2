package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patternsmith/pkg/pattern"
)

func testDocument(t *testing.T) *Document {
	t.Helper()
	m := pattern.Measurements{
		pattern.KeyChest:          102,
		pattern.KeyWaist:          86,
		pattern.KeyHip:            98,
		pattern.KeyNeck:           39,
		pattern.KeyShoulderLength: 45,
		pattern.KeyArmLength:      64,
		pattern.KeyBackLength:     75,
		pattern.KeyShirtLength:    76,
		pattern.KeyBicep:          34,
		pattern.KeyWrist:          17,
		pattern.KeyArmholeDepth:   22,
	}
	pieces, err := pattern.Generate(m, pattern.FitRegular)
	require.NoError(t, err)
	return &Document{
		CustomerName: "Test User",
		GarmentStyle: "Men's Dress Shirt",
		Fit:          pattern.FitRegular,
		Measurements: m,
		Pieces:       pieces,
		GeneratedAt:  time.Date(2026, 5, 2, 10, 30, 0, 0, time.UTC),
	}
}

func TestRenderProducesPDF(t *testing.T) {
	data, err := NewRenderer().Render(testDocument(t))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"), "output should be a PDF document")
	assert.Greater(t, len(data), 1000)
}

func TestRenderHandlesPartialMeasurements(t *testing.T) {
	// The renderer only displays what it is given; a sparse measurement
	// map must not break the two-column layout.
	doc := testDocument(t)
	doc.Measurements = pattern.Measurements{
		pattern.KeyChest: 102,
		pattern.KeyWrist: 17,
	}
	data, err := NewRenderer().Render(doc)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}
