// Package trace records property operations dispatched to daughterboards.
//
// The host's dboard manager reports every Get and Set it forwards to a
// driver as an Event. This is separate from operational logging (slog): a
// trace is a complete, machine-readable record of what the host asked each
// board and what the board answered.
//
// # Basic Usage
//
//	// For development: log to console via slog
//	m, _ := manager.New(reg, rxID, txID, manager.WithTrace(trace.NewSlogAdapter(slog.Default())))
//
//	// For capture: write to a CBOR file
//	fl, _ := trace.NewFileLogger("/var/log/sdr/slot-a.dtrace")
//
//	// Both
//	l := trace.NewMultiLogger(trace.NewSlogAdapter(slog.Default()), fl)
//
// # File Format
//
// Trace files are a stream of CBOR-encoded Events with integer keys. The
// dboard-trace CLI views and summarises them; Reader iterates them with an
// optional Filter.
package trace
