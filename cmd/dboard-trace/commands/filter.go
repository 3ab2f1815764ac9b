package commands

import (
	"fmt"
	"io"

	"github.com/sdrhost/dboard-go/pkg/trace"
)

// RunFilter copies the events of path that match filter into a new trace
// file and reports how many were written to w.
func RunFilter(path, output string, filter trace.Filter, w io.Writer) error {
	if output == "" {
		return fmt.Errorf("output file required")
	}
	if output == path {
		return fmt.Errorf("output file must differ from input")
	}

	logger, err := trace.NewFileLogger(output)
	if err != nil {
		return fmt.Errorf("failed to create output trace: %w", err)
	}
	defer logger.Close()

	count := 0
	err = forEach(path, filter, func(event trace.Event) error {
		logger.Log(event)
		count++
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Filtered %d events to %s\n", count, output)
	return nil
}
