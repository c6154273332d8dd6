// Package instrument provides vdom hooks that report node creation to
// Prometheus, OpenTelemetry and slog.
//
// Each constructor returns a value that implements vdom.Hook. Hooks can be
// combined with vdom.Hooks and either installed process-wide or injected
// into a single builder:
//
//	reg := prometheus.NewRegistry()
//	hook := vdom.Hooks{
//	    instrument.Metrics(instrument.WithRegistry(reg)),
//	    instrument.Logging(logger, slog.LevelDebug),
//	}
//	restore := vdom.InstallHook(hook)
//	defer restore()
//
// Hooks run synchronously inside the builder, so they must be cheap and
// safe for concurrent use.
package instrument
