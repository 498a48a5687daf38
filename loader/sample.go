package loader

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/katalvlaran/cityroute/core"
)

//go:embed sample.yaml
var sampleYAML []byte

// Sample returns the built-in ten-location emergency-response city: two
// hospitals, three high-risk zones and the roads between them.
func Sample() (*Definition, *core.Graph) {
	d, err := DecodeYAML(bytes.NewReader(sampleYAML))
	if err != nil {
		panic(fmt.Sprintf("loader: embedded sample: %v", err))
	}
	g, err := d.Graph()
	if err != nil {
		panic(fmt.Sprintf("loader: embedded sample: %v", err))
	}

	return d, g
}
