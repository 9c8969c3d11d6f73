//go:build midwaydebug

package midway

import "fmt"

// debugChecks enables invariant panics.
const debugChecks = true

func invariant(ok bool, format string, args ...any) {
	if !ok {
		panic(fmt.Sprintf("midway: invariant violated: "+format, args...))
	}
}
