package main

import (
	"github.com/spf13/cobra"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import GoodLinks and Obsidian links, then fetch every page into the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, opts, true)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := runGoodLinksImport(a, ""); err != nil {
				return err
			}
			if err := runObsidianImport(a, ""); err != nil {
				return err
			}
			return runFetch(cmd, a)
		},
	}

	cmd.AddCommand(newImportGoodLinksCmd(opts), newImportObsidianCmd(opts))
	return cmd
}

func newImportGoodLinksCmd(opts *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "goodlinks",
		Short: "Import read links from a GoodLinks JSON export",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, opts, false)
			if err != nil {
				return err
			}
			defer a.Close()
			return runGoodLinksImport(a, file)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "GoodLinks export (default from config)")
	return cmd
}

func newImportObsidianCmd(opts *rootOptions) *cobra.Command {
	var vault string

	cmd := &cobra.Command{
		Use:   "obsidian",
		Short: "Import every link found in the notes of an Obsidian vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, opts, false)
			if err != nil {
				return err
			}
			defer a.Close()
			return runObsidianImport(a, vault)
		},
	}

	cmd.Flags().StringVar(&vault, "vault", "", "vault root directory (default from config)")
	return cmd
}

func runGoodLinksImport(a *app, file string) error {
	if file == "" {
		file = a.cfg.Paths.GoodLinks
	}
	result, err := a.goodLinksImporter().ImportFile(file)
	if err != nil {
		return err
	}
	a.printResult("GoodLinks", result)
	return nil
}

func runObsidianImport(a *app, vault string) error {
	if vault == "" {
		vault = a.cfg.Paths.Vault
	}
	result, err := a.obsidianImporter().ImportVault(vault)
	if err != nil {
		return err
	}
	a.printResult("Obsidian", result)
	return nil
}
