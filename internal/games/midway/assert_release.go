//go:build !midwaydebug

package midway

const debugChecks = false

func invariant(bool, string, ...any) {}
