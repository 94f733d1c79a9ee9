package testutil

import (
	"github.com/davecgh/go-spew/spew"
)

// dumper renders structures with stable, depth-limited output so failure
// messages stay readable for deeply linked nodes.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	MaxDepth:                6,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump renders a value for inclusion in a test failure message.
func Dump(v any) string {
	return dumper.Sdump(v)
}
