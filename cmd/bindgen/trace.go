package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhump/annobind/trace"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	Format       string
	FailuresOnly bool
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace <file>",
		Short: "Print a binding trace file",
		Long: `Decode a trace file written by trace.FileRecorder and print its events.

Examples:
  bindgen trace binds.cbor
  bindgen trace binds.cbor --failures
  bindgen trace binds.cbor --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(opts, cmd, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "text", "output format (text|json)")
	cmd.Flags().BoolVar(&opts.FailuresOnly, "failures", false, "only print events that carry an error")

	return cmd
}

func runTrace(opts *TraceOptions, cmd *cobra.Command, path string) error {
	if opts.Format != "text" && opts.Format != "json" {
		return fmt.Errorf("invalid format %q: must be one of [text json]", opts.Format)
	}
	rd, err := trace.OpenReader(path)
	if err != nil {
		return fmt.Errorf("opening trace: %w", err)
	}
	defer rd.Close()

	events, err := rd.ReadAll()
	if err != nil {
		return err
	}
	if opts.FailuresOnly {
		filtered := events[:0]
		for _, ev := range events {
			if ev.Error != "" {
				filtered = append(filtered, ev)
			}
		}
		events = filtered
	}

	if opts.Format == "json" {
		if events == nil {
			events = []trace.Event{}
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(events)
	}
	return writeEvents(cmd.OutOrStdout(), events)
}

func writeEvents(w io.Writer, events []trace.Event) error {
	for _, ev := range events {
		_, err := fmt.Fprintf(w, "%s %-5s %s %s %s.%s %d %s",
			ev.Timestamp.UTC().Format(time.RFC3339Nano), ev.Phase, ev.PassID, ev.Kind, ev.Owner, ev.Member, ev.ElementID, ev.Outcome)
		if err != nil {
			return err
		}
		if ev.Error != "" {
			if _, err := fmt.Fprintf(w, ": %s", ev.Error); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
