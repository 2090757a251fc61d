package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"

	"foldertree/internal/config"
)

// sizeNames lists the supported units in ascending scale order.
var sizeNames = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count in the requested unit. Bytes mode keeps the
// raw integer; auto mode scales through the unit sequence until the value
// drops below 1024; an explicit unit divides by 1024 a fixed number of times.
// Scaled values always carry two decimals.
func FormatSize(sizeBytes int64, unit config.SizeUnit) string {
	if unit == config.UnitBytes {
		return fmt.Sprintf("%d B", sizeBytes)
	}
	if sizeBytes == 0 {
		return "0 B"
	}

	value := float64(sizeBytes)
	if unit == config.UnitAuto || unit == "" {
		i := 0
		for value >= 1024 && i < len(sizeNames)-1 {
			value /= 1024
			i++
		}
		return fmt.Sprintf("%.2f %s", value, sizeNames[i])
	}

	for i := 0; i < unitIndex(string(unit)); i++ {
		value /= 1024
	}
	return fmt.Sprintf("%.2f %s", value, unit)
}

func unitIndex(name string) int {
	for i, candidate := range sizeNames {
		if candidate == name {
			return i
		}
	}
	return 0
}

// DirSize sums the byte lengths of all files under path using a parallel
// walk. Unreadable entries are skipped rather than failing the sum; the sum
// is order-independent, so parallelism does not affect determinism.
func DirSize(ctx context.Context, path string) (int64, error) {
	conf := &fastwalk.Config{
		Follow: false, // don't follow symlinks
	}

	var total int64
	err := fastwalk.Walk(conf, path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip entries we cannot read
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		atomic.AddInt64(&total, info.Size())
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}
