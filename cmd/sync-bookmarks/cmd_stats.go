package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"sync-bookmarks/core/domain"
	"sync-bookmarks/core/interfaces"
)

func newStatsCmd(opts *rootOptions) *cobra.Command {
	var markdown bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show how many links each source contributed to the link file and the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, opts, true)
			if err != nil {
				return err
			}
			defer a.Close()

			canonical, err := a.deps.Links.Load()
			if err != nil {
				return fmt.Errorf("failed to load link store: %w", err)
			}
			cached, err := a.deps.Cache.QueryAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to read cache: %w", err)
			}

			w := table.NewWriter()
			if reporter, ok := a.deps.Cache.(interfaces.CacheStats); ok {
				if stats, err := reporter.Stats(); err == nil {
					w.SetCaption(cacheCaption(stats))
				} else {
					a.deps.Logger.Warn("Failed to read cache statistics", map[string]interface{}{"error": err.Error()})
				}
			}
			w.SetStyle(table.StyleLight)
			w.AppendHeader(table.Row{"Source", "Links", "Cached", "Archived"})
			w.SetColumnConfigs([]table.ColumnConfig{
				{Number: 2, Align: text.AlignRight},
				{Number: 3, Align: text.AlignRight},
				{Number: 4, Align: text.AlignRight},
			})

			var totals sourceCounts
			for _, source := range domain.AllLinkSources {
				counts := countSource(source, canonical, cached)
				totals.links += counts.links
				totals.cached += counts.cached
				totals.archived += counts.archived
				w.AppendRow(table.Row{source.String(), counts.links, counts.cached, counts.archived})
			}
			w.AppendFooter(table.Row{"Total", totals.links, totals.cached, totals.archived})

			if markdown {
				fmt.Fprintln(a.out, w.RenderMarkdown())
			} else {
				fmt.Fprintln(a.out, w.Render())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&markdown, "markdown", false, "render the table as Markdown")
	return cmd
}

type sourceCounts struct {
	links    int
	cached   int
	archived int
}

func countSource(source domain.LinkSource, canonical []domain.SerializedLink, cached []domain.CachedLink) sourceCounts {
	var counts sourceCounts
	for _, link := range canonical {
		if link.Source == source {
			counts.links++
		}
	}
	for _, link := range cached {
		if link.Source != source {
			continue
		}
		counts.cached++
		if link.IsArchived() {
			counts.archived++
		}
	}
	return counts
}

// cacheCaption describes the cache backend below the table
func cacheCaption(stats map[string]interface{}) string {
	caption := fmt.Sprintf("Cache: %v", stats["backend"])
	if path, ok := stats["file_path"].(string); ok && path != "" {
		caption += " " + path
	}
	if name, ok := stats["table"].(string); ok && name != "" {
		caption += ", table " + name
	}
	if size, ok := stats["db_size_bytes"].(int); ok {
		caption += fmt.Sprintf(", %d bytes", size)
	}
	return caption
}
