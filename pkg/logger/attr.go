package logger

import (
	"log/slog"
	"math/big"
	"time"
)

// Error records err under "error". A nil err yields an empty Attr, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the emitting component under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// RequestID records the request identifier under "request_id".
// An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Category records a dictionary category under "category".
func Category(name string) slog.Attr {
	return slog.String("category", name)
}

// Count records a number of items under "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Path records a file or object location under "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Combinations records the size of a phrase space as a decimal string; it
// does not fit in any integer kind slog supports.
func Combinations(n *big.Int) slog.Attr {
	if n == nil {
		return slog.String("combinations", "0")
	}
	return slog.String("combinations", n.String())
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
