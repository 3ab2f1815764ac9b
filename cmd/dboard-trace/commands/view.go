// Package commands implements the dboard-trace CLI commands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sdrhost/dboard-go/pkg/dboard"
	"github.com/sdrhost/dboard-go/pkg/prop"
	"github.com/sdrhost/dboard-go/pkg/trace"
	"github.com/sdrhost/dboard-go/pkg/wire"
)

// FilterOptions holds the textual filter flags shared by view, export and
// filter.
type FilterOptions struct {
	SessionID  string
	Slot       string
	Unit       string
	Operation  string
	Key        string
	FailedOnly bool
	TimeStart  string
	TimeEnd    string
}

// Build converts the options into a trace.Filter.
func (o FilterOptions) Build() (trace.Filter, error) {
	filter := trace.Filter{
		SessionID:  o.SessionID,
		Slot:       o.Slot,
		FailedOnly: o.FailedOnly,
	}

	if o.Unit != "" {
		u, err := dboard.ParseUnit(o.Unit)
		if err != nil {
			return trace.Filter{}, err
		}
		filter.Unit = &u
	}

	if o.Operation != "" {
		op, err := ParseOperationFlag(o.Operation)
		if err != nil {
			return trace.Filter{}, err
		}
		filter.Operation = &op
	}

	if o.Key != "" {
		k, err := prop.ParseKey(o.Key)
		if err != nil {
			return trace.Filter{}, err
		}
		filter.Key = &k
	}

	if o.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, o.TimeStart)
		if err != nil {
			return trace.Filter{}, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}

	if o.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, o.TimeEnd)
		if err != nil {
			return trace.Filter{}, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}

	return filter, nil
}

// ParseOperationFlag parses an operation string from command-line flag (case-insensitive).
func ParseOperationFlag(s string) (wire.Operation, error) {
	switch strings.ToLower(s) {
	case "get":
		return wire.OpGet, nil
	case "set":
		return wire.OpSet, nil
	default:
		return 0, fmt.Errorf("invalid operation: %s (must be get or set)", s)
	}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event trace.Event) {
	// Header line: timestamp [session] slot unit board OP key
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	slot := event.Slot
	if slot == "" {
		slot = "-"
	}

	fmt.Fprintf(w, "%s [%s] %s %s %s %s %s\n",
		ts, shortenSessionID(event.SessionID), slot, event.Unit,
		event.BoardID, strings.ToUpper(event.Operation.String()),
		prop.NamedKey{Key: event.Key, Name: event.Subdev})

	if event.Value != nil {
		fmt.Fprintf(w, "  Value: %s\n", event.Value)
	}
	fmt.Fprintf(w, "  Status: %s (%d)\n", event.Status, event.Status)
	if event.Error != "" {
		fmt.Fprintf(w, "  Error: %s\n", event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// forEach streams every matching event from path to fn.
func forEach(path string, filter trace.Filter, fn func(trace.Event) error) error {
	reader, err := trace.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := fn(event); err != nil {
			return err
		}
	}
}

// RunView executes the view command.
func RunView(path string, filter trace.Filter, output io.Writer) error {
	return forEach(path, filter, func(event trace.Event) error {
		formatEvent(output, event)
		return nil
	})
}
