package config

// SizeUnit selects how scanned sizes are rendered.
type SizeUnit string

const (
	UnitAuto  SizeUnit = "auto"
	UnitBytes SizeUnit = "bytes"
	UnitKB    SizeUnit = "KB"
	UnitMB    SizeUnit = "MB"
	UnitGB    SizeUnit = "GB"
	UnitTB    SizeUnit = "TB"
)

// MaxDepthLimit is the deepest scan the caller-facing clamp allows.
const MaxDepthLimit = 20

// Options defines the parameters of a single scan. A value is constructed by
// the caller per invocation and never modified while the scan runs.
type Options struct {
	IncludeFiles bool
	MaxDepth     int // negative means unlimited
	ShowSize     bool
	SizeUnit     SizeUnit
}

// DefaultOptions returns scan options with sensible defaults: files included,
// unlimited depth, size annotations disabled.
func DefaultOptions() Options {
	return Options{
		IncludeFiles: true,
		MaxDepth:     -1,
		ShowSize:     false,
		SizeUnit:     UnitAuto,
	}
}

// ClampDepth bounds a requested max depth to [0, MaxDepthLimit]. Negative
// values mean unlimited and are normalized to -1.
func ClampDepth(depth int) int {
	if depth < 0 {
		return -1
	}
	if depth > MaxDepthLimit {
		return MaxDepthLimit
	}
	return depth
}

// ValidUnit reports whether unit is one of the supported size units.
func ValidUnit(unit SizeUnit) bool {
	switch unit {
	case UnitAuto, UnitBytes, UnitKB, UnitMB, UnitGB, UnitTB:
		return true
	}
	return false
}
