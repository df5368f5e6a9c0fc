// Package main is a small CLI for inspecting the view route table: listing
// it, resolving paths against it and validating it.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	twc "github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todo-app/internal/domain/route"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var maxRedirects int

	root := &cobra.Command{
		Use:           "routes",
		Short:         "Inspect the view route table",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().IntVar(&maxRedirects, "max-redirects", route.DefaultMaxRedirects,
		"maximum redirects followed while resolving")

	root.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Print the route table in match order",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return listRoutes(cmd.OutOrStdout(), route.Default())
			},
		},
		&cobra.Command{
			Use:   "resolve <path>...",
			Short: "Resolve one or more paths and print the view each lands on",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				resolver, err := route.NewResolver(route.Default(), route.WithMaxRedirects(maxRedirects))
				if err != nil {
					return err
				}
				return resolvePaths(cmd.OutOrStdout(), resolver, args)
			},
		},
		&cobra.Command{
			Use:   "validate",
			Short: "Check the route table for malformed or unreachable routes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := route.Default().Validate(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "route table ok")
				return nil
			},
		},
	)

	return root
}

func listRoutes(w io.Writer, table route.Table) error {
	tw := tablewriter.NewTable(w,
		tablewriter.WithHeaderAutoWrap(twc.WrapNone),
		tablewriter.WithRowAutoWrap(twc.WrapNone),
	)
	tw.Header([]string{"#", "Path", "Name", "Destination"})

	for i, r := range table.Routes() {
		tw.Append([]string{fmt.Sprint(i + 1), r.Path, r.Name, r.Destination()})
	}
	tw.Render()
	return nil
}

// resolvePaths prints one row per path. A failing path is reported in its
// row and in the returned error, so every path is still shown.
func resolvePaths(w io.Writer, resolver *route.Resolver, paths []string) error {
	tw := tablewriter.NewTable(w,
		tablewriter.WithHeaderAutoWrap(twc.WrapNone),
		tablewriter.WithRowAutoWrap(twc.WrapNone),
	)
	tw.Header([]string{"Path", "View", "Route", "Params", "Via"})

	var errs []error
	for _, p := range paths {
		res, err := resolver.Resolve(p)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p, err))
			tw.Append([]string{p, "error", "", "", err.Error()})
			continue
		}
		tw.Append([]string{
			p,
			res.View.String(),
			res.RouteName,
			formatParams(res.Params),
			strings.Join(res.RedirectedFrom, " -> "),
		})
	}
	tw.Render()
	return errors.Join(errs...)
}

func formatParams(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(params))
	for k, v := range params {
		pairs = append(pairs, k+"="+v)
	}
	return strings.Join(pairs, ",")
}
