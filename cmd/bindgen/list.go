package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jhump/annobind"
	"github.com/jhump/annobind/processor"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*GenerateOptions
	Format string
}

// ListedElement is one annotated element in the output of the list command.
type ListedElement struct {
	Package string `json:"package"`
	Kind    string `json:"kind"`
	Owner   string `json:"owner"`
	Name    string `json:"name"`
	ID      int    `json:"id"`
	Pos     string `json:"pos"`
	Test    bool   `json:"test,omitempty"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{GenerateOptions: &GenerateOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "list [packages...]",
		Short: "List annotated elements without generating anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd, args)
		},
	}

	cmd.Flags().BoolVar(&opts.IncludeTests, "include-tests", false, "also process _test.go files")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "output format (text|json)")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command, args []string) error {
	if opts.Format != "text" && opts.Format != "json" {
		return fmt.Errorf("invalid format %q: must be one of [text json]", opts.Format)
	}
	cfg, err := opts.processorConfig(cmd, args)
	if err != nil {
		return err
	}
	ctxs, err := cfg.Load()
	if err != nil {
		return err
	}
	els := listElements(ctxs)
	if opts.Format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(els)
	}
	return writeElements(cmd.OutOrStdout(), els)
}

func listElements(ctxs []*processor.Context) []ListedElement {
	els := []ListedElement{}
	for _, ctx := range ctxs {
		for i := 0; i < ctx.NumElements(); i++ {
			ae := ctx.GetElement(i)
			els = append(els, ListedElement{
				Package: ctx.Package.PkgPath,
				Kind:    ae.Kind.String(),
				Owner:   ae.Owner.Name(),
				Name:    ae.Name(),
				ID:      ae.Bind.ID,
				Pos:     ae.Pos.String(),
				Test:    ae.Test,
			})
		}
	}
	return els
}

func writeElements(w io.Writer, els []ListedElement) error {
	for _, el := range els {
		name := el.Owner
		if el.Kind != annobind.Types.String() {
			name += "." + el.Name
		}
		if _, err := fmt.Fprintf(w, "%s\t%-6s %-24s %d\n", el.Pos, el.Kind, name, el.ID); err != nil {
			return err
		}
	}
	return nil
}
