package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name     string
		tmpl     string
		bindings Bindings
		want     string
	}{
		{
			"all bound",
			"ffmpeg -i {input1} -i {input2} {output}",
			Bindings{Input1: "a.mp4", Input2: "b.mp4", Output: "o.mp4"},
			"ffmpeg -i a.mp4 -i b.mp4 o.mp4",
		},
		{
			"unbound placeholder left literal",
			"{input1} {input2} {output}",
			Bindings{Input1: "a.mp4", Output: "o.mp4"},
			"a.mp4 {input2} o.mp4",
		},
		{
			"unknown token untouched",
			"{input1} {weird} {output}",
			Bindings{Input1: "a.mp4", Output: "o.mp4"},
			"a.mp4 {weird} o.mp4",
		},
		{
			"repeated placeholder",
			"{output} && mv {output} {output}.bak",
			Bindings{Output: "o.mp4"},
			"o.mp4 && mv o.mp4 o.mp4.bak",
		},
		{
			"no placeholders",
			"ffmpeg -version",
			Bindings{Input1: "a.mp4"},
			"ffmpeg -version",
		},
		{
			"third input",
			"{input1} {input2} {input3}",
			Bindings{Input1: "a", Input2: "b", Input3: "c"},
			"a b c",
		},
		{
			"empty bindings",
			"{input1} {output}",
			Bindings{},
			"{input1} {output}",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Resolve(tc.tmpl, tc.bindings))
		})
	}
}
