package common

var (
	// PackageName is used as the metrics namespace and default service tag.
	PackageName = "keepbroker"

	// Version is set at build time with -ldflags "-X github.com/enarx/keepbroker/common.Version=..."
	Version = "dev"
)
