// Package version exposes build metadata stamped via -ldflags.
package version

//nolint:gochecknoglobals // set at link time
var (
	name    = "clkwise"
	version = "dev"
	commit  = "unknown"
)

func Name() string {
	return name
}

func Version() string {
	return version
}

func Commit() string {
	return commit
}
