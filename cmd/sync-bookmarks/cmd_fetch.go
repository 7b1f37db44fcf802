package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFetchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Download and cache the article text of every canonical link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, opts, true)
			if err != nil {
				return err
			}
			defer a.Close()
			return runFetch(cmd, a)
		},
	}
}

func runFetch(cmd *cobra.Command, a *app) error {
	result, err := a.fetchPipeline().RunStore(cmd.Context(), a.deps.Links)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, result.Summary())
	return nil
}
