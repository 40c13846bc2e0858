// Package metrics provides the observability hooks of a render run.
//
// Components receive a Recorder through their options and default to
// NoopRecorder, so metrics collection never needs nil checks:
//
//	r := render.New(ix, opts) // opts.Recorder defaults to metrics.NoopRecorder{}
//
// When a metrics file is configured the CLI swaps in a PrometheusRecorder
// backed by its own registry and writes the registry to disk after the run
// with WriteTextfile, in the format read by the node exporter textfile
// collector.
package metrics
