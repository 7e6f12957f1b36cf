package shell

import (
	"context"
	"log/slog"
)

// discardHandler mirrors slog.DiscardHandler (Go 1.24+) for older toolchains.
var discardHandler slog.Handler = discardH{}

type discardH struct{}

func (discardH) Enabled(context.Context, slog.Level) bool  { return false }
func (discardH) Handle(context.Context, slog.Record) error { return nil }
func (d discardH) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardH) WithGroup(string) slog.Handler           { return d }
