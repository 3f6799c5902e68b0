package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseConcatParams_Defaults(t *testing.T) {
	p := ParseConcatParams("SMART_CONCAT")

	assert.Equal(t, Trim{0.5, 4.5}, p.Trim1)
	assert.Equal(t, Trim{0.5, 7.5}, p.Trim2)
	assert.Equal(t, 18, p.CRF)
	assert.Equal(t, "veryfast", p.Preset)
}

func TestParseConcatParams_AllOverrides(t *testing.T) {
	p := ParseConcatParams("SMART_CONCAT trim1=1:3 trim2=0:10.25 crf=23 preset=slow")

	assert.Equal(t, Trim{1, 3}, p.Trim1)
	assert.Equal(t, Trim{0, 10.25}, p.Trim2)
	assert.Equal(t, 23, p.CRF)
	assert.Equal(t, "slow", p.Preset)
}

// One malformed key never poisons the others.
func TestParseConcatParams_PerKeyFallback(t *testing.T) {
	cases := []struct {
		name    string
		command string
		check   func(t *testing.T, p ConcatParams)
	}{
		{
			"crf out of range",
			"SMART_CONCAT crf=99 preset=medium",
			func(t *testing.T, p ConcatParams) {
				assert.Equal(t, 18, p.CRF)
				assert.Equal(t, "medium", p.Preset)
			},
		},
		{
			"unknown preset",
			"SMART_CONCAT crf=20 preset=warp9",
			func(t *testing.T, p ConcatParams) {
				assert.Equal(t, 20, p.CRF)
				assert.Equal(t, "veryfast", p.Preset)
			},
		},
		{
			"trim end before start",
			"SMART_CONCAT trim1=5:2",
			func(t *testing.T, p ConcatParams) {
				assert.Equal(t, Trim{0.5, 4.5}, p.Trim1)
			},
		},
		{
			"trim garbage",
			"SMART_CONCAT trim2=abc:def",
			func(t *testing.T, p ConcatParams) {
				assert.Equal(t, Trim{0.5, 7.5}, p.Trim2)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, ParseConcatParams(tc.command))
		})
	}
}

// Scenario from the product contract: crf overridden, everything else
// defaulted.
func TestParseConcatParams_CRFOnly(t *testing.T) {
	p := ParseConcatParams("SMART_CONCAT crf=20")

	assert.Equal(t, 20, p.CRF)
	assert.Equal(t, "veryfast", p.Preset)
	assert.Equal(t, Trim{0.5, 4.5}, p.Trim1)
	assert.Equal(t, Trim{0.5, 7.5}, p.Trim2)
}
