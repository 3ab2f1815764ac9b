// Command dboard-trace views and analyzes daughterboard property trace files.
//
// Trace files are written by dboard-shell when started with -trace, or by
// any program that attaches a trace.FileLogger to a manager.
//
// Usage:
//
//	dboard-trace <command> [flags] <file.dtrace>
//
// Commands:
//
//	view     View trace file in human-readable format
//	export   Export trace file to JSONL or CSV format
//	filter   Filter trace file and write to new file
//	stats    Show statistics about the trace file
//
// Examples:
//
//	# View all events
//	dboard-trace view shell.dtrace
//
//	# View only failed sets on the tx unit
//	dboard-trace view -unit tx -op set -failed shell.dtrace
//
//	# Export to CSV
//	dboard-trace export -format csv -o out.csv shell.dtrace
//
//	# Keep one slot's frequency traffic
//	dboard-trace filter -slot A -key frequency -o a.dtrace shell.dtrace
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sdrhost/dboard-go/cmd/dboard-trace/commands"
	"github.com/sdrhost/dboard-go/pkg/trace"
)

const usage = `dboard-trace - daughterboard property trace analyzer

Usage:
  dboard-trace <command> [flags] <file.dtrace>

Commands:
  view     View trace file in human-readable format
  export   Export trace file to JSONL or CSV format
  filter   Filter trace file and write to new file
  stats    Show statistics about the trace file

Use "dboard-trace <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func newFlagSet(name, summary, synopsis string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "dboard-trace %s - %s\n\nUsage:\n  dboard-trace %s\n\nFlags:\n", name, summary, synopsis)
		fs.PrintDefaults()
	}
	return fs
}

// addFilterFlags registers the shared event filter flags.
func addFilterFlags(fs *flag.FlagSet, opts *commands.FilterOptions) {
	fs.StringVar(&opts.SessionID, "session", "", "Filter by session ID")
	fs.StringVar(&opts.Slot, "slot", "", "Filter by slot name")
	fs.StringVar(&opts.Unit, "unit", "", "Filter by unit (rx, tx)")
	fs.StringVar(&opts.Operation, "op", "", "Filter by operation (get, set)")
	fs.StringVar(&opts.Key, "key", "", "Filter by property key (e.g. frequency, gain-range)")
	fs.BoolVar(&opts.FailedOnly, "failed", false, "Only show failed operations")
	fs.StringVar(&opts.TimeStart, "time-start", "", "Filter by start time (RFC3339)")
	fs.StringVar(&opts.TimeEnd, "time-end", "", "Filter by end time (RFC3339)")
}

// parse parses args, requires the trace file argument and builds the filter.
func parse(fs *flag.FlagSet, args []string, opts *commands.FilterOptions) (string, trace.Filter) {
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}

	filter, err := opts.Build()
	if err != nil {
		fatal(err)
	}
	return fs.Arg(0), filter
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func runView(args []string) {
	fs := newFlagSet("view", "View trace file in human-readable format", "view [flags] <file.dtrace>")
	var opts commands.FilterOptions
	addFilterFlags(fs, &opts)

	path, filter := parse(fs, args, &opts)
	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fatal(err)
	}
}

func runExport(args []string) {
	fs := newFlagSet("export", "Export trace file to JSONL or CSV format", "export [flags] <file.dtrace>")
	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")
	var opts commands.FilterOptions
	addFilterFlags(fs, &opts)

	path, filter := parse(fs, args, &opts)
	if err := commands.RunExport(path, *format, *output, filter); err != nil {
		fatal(err)
	}
}

func runFilter(args []string) {
	fs := newFlagSet("filter", "Filter trace file and write to new file", "filter [flags] -o <out.dtrace> <file.dtrace>")
	output := fs.String("o", "", "Output file (required)")
	var opts commands.FilterOptions
	addFilterFlags(fs, &opts)

	path, filter := parse(fs, args, &opts)
	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}
	if err := commands.RunFilter(path, *output, filter, os.Stdout); err != nil {
		fatal(err)
	}
}

func runStats(args []string) {
	fs := newFlagSet("stats", "Show statistics about the trace file", "stats [flags] <file.dtrace>")
	var opts commands.FilterOptions
	addFilterFlags(fs, &opts)

	path, filter := parse(fs, args, &opts)
	if err := commands.RunStats(path, filter, os.Stdout); err != nil {
		fatal(err)
	}
}
