package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyStage      = "stage"
	KeyCollection = "collection"
	KeySymbolID   = "symbol_id"
	KeySymbolKind = "symbol_kind"
	KeySymbol     = "symbol"
	KeyPath       = "path"
	KeyFile       = "file"
	KeyPages      = "pages"
	KeyFailed     = "failed"
	KeyWorkers    = "workers"
	KeyBytes      = "bytes"
	KeyDurationMS = "duration_ms"
	KeyRepo       = "repository"
	KeyBranch     = "branch"
	KeyURL        = "url"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr          { return slog.String(KeyRunID, id) }
func Stage(name string) slog.Attr        { return slog.String(KeyStage, name) }
func Collection(name string) slog.Attr   { return slog.String(KeyCollection, name) }
func SymbolID(id uint64) slog.Attr       { return slog.Uint64(KeySymbolID, id) }
func SymbolKind(kind string) slog.Attr   { return slog.String(KeySymbolKind, kind) }
func Symbol(name string) slog.Attr       { return slog.String(KeySymbol, name) }
func Path(p string) slog.Attr            { return slog.String(KeyPath, p) }
func File(f string) slog.Attr            { return slog.String(KeyFile, f) }
func Pages(n int) slog.Attr              { return slog.Int(KeyPages, n) }
func Failed(n int) slog.Attr             { return slog.Int(KeyFailed, n) }
func Workers(n int) slog.Attr            { return slog.Int(KeyWorkers, n) }
func Bytes(s string) slog.Attr           { return slog.String(KeyBytes, s) }
func DurationMS(ms float64) slog.Attr    { return slog.Float64(KeyDurationMS, ms) }
func Duration(d time.Duration) slog.Attr { return DurationMS(float64(d) / float64(time.Millisecond)) }
func Repository(r string) slog.Attr      { return slog.String(KeyRepo, r) }
func Branch(b string) slog.Attr          { return slog.String(KeyBranch, b) }
func URL(u string) slog.Attr             { return slog.String(KeyURL, u) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
