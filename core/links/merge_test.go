package links

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"sync-bookmarks/core/domain"
)

func readLater(url, title string, tags ...string) domain.SerializedLink {
	if tags == nil {
		tags = []string{}
	}
	return domain.SerializedLink{URL: url, Title: title, Tags: tags, Source: domain.SourceReadLater}
}

func vault(url, title string) domain.SerializedLink {
	return domain.SerializedLink{URL: url, Title: title, Tags: []string{}, Source: domain.SourceVault}
}

func TestMergeSource(t *testing.T) {
	tests := []struct {
		name      string
		existing  []domain.SerializedLink
		fresh     []domain.SerializedLink
		source    domain.LinkSource
		want      []domain.SerializedLink
		wantStats MergeStats
	}{
		{
			name:      "empty store",
			existing:  nil,
			fresh:     []domain.SerializedLink{readLater("https://x.com", "X", "t")},
			source:    domain.SourceReadLater,
			want:      []domain.SerializedLink{readLater("https://x.com", "X", "t")},
			wantStats: MergeStats{Merged: 1},
		},
		{
			name:      "stale record of the same source is dropped",
			existing:  []domain.SerializedLink{readLater("https://old.com", "Old"), readLater("https://x.com", "X")},
			fresh:     []domain.SerializedLink{readLater("https://x.com", "X")},
			source:    domain.SourceReadLater,
			want:      []domain.SerializedLink{readLater("https://x.com", "X")},
			wantStats: MergeStats{AlreadyPresent: 1},
		},
		{
			name:      "other source is kept when missing upstream",
			existing:  []domain.SerializedLink{vault("https://x.com", "X from notes")},
			fresh:     nil,
			source:    domain.SourceReadLater,
			want:      []domain.SerializedLink{vault("https://x.com", "X from notes")},
			wantStats: MergeStats{},
		},
		{
			name:      "existing record wins over a fresh one for the same URL",
			existing:  []domain.SerializedLink{vault("https://x.com", "notes title")},
			fresh:     []domain.SerializedLink{readLater("https://x.com", "export title", "t")},
			source:    domain.SourceReadLater,
			want:      []domain.SerializedLink{vault("https://x.com", "notes title")},
			wantStats: MergeStats{AlreadyPresent: 1},
		},
		{
			name:     "fresh duplicates are merged once",
			existing: nil,
			fresh: []domain.SerializedLink{
				vault("https://a.com", "A"),
				vault("https://a.com", "https://a.com"),
				vault("https://b.com", "B"),
			},
			source:    domain.SourceVault,
			want:      []domain.SerializedLink{vault("https://a.com", "A"), vault("https://b.com", "B")},
			wantStats: MergeStats{Merged: 2, AlreadyPresent: 1},
		},
		{
			name:      "fresh records are tagged with the merging source",
			existing:  nil,
			fresh:     []domain.SerializedLink{{URL: "https://a.com", Title: "A"}},
			source:    domain.SourceVault,
			want:      []domain.SerializedLink{vault("https://a.com", "A")},
			wantStats: MergeStats{Merged: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, stats := MergeSource(tt.existing, tt.fresh, tt.source)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("MergeSource() mismatch (-want +got):\n%s", diff)
			}
			if stats != tt.wantStats {
				t.Errorf("MergeSource() stats = %+v, want %+v", stats, tt.wantStats)
			}
		})
	}
}

func TestMergeSource_DoesNotAliasInput(t *testing.T) {
	fresh := []domain.SerializedLink{readLater("https://x.com", "X", "t")}

	got, _ := MergeSource(nil, fresh, domain.SourceReadLater)
	got[0].Tags[0] = "changed"

	if fresh[0].Tags[0] != "t" {
		t.Error("MergeSource result shares tag storage with its input")
	}
}

func TestMergeSource_ReimportWithoutURLKeepsVaultRecord(t *testing.T) {
	existing, _ := MergeSource(nil, []domain.SerializedLink{vault("https://x.com", "X")}, domain.SourceVault)
	existing, _ = MergeSource(existing, []domain.SerializedLink{readLater("https://x.com", "X")}, domain.SourceReadLater)

	got, _ := MergeSource(existing, []domain.SerializedLink{readLater("https://y.com", "Y")}, domain.SourceReadLater)

	want := []domain.SerializedLink{vault("https://x.com", "X"), readLater("https://y.com", "Y")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MergeSource() mismatch (-want +got):\n%s", diff)
	}
}

func genLink() gopter.Gen {
	return gopter.CombineGens(
		gen.OneConstOf("https://a.com", "https://b.com", "https://c.com", "https://d.com", "https://e.com"),
		gen.AlphaString(),
		gen.OneConstOf(domain.SourceReadLater, domain.SourceVault),
	).Map(func(values []interface{}) domain.SerializedLink {
		return domain.SerializedLink{
			URL:    values[0].(string),
			Title:  values[1].(string),
			Tags:   []string{},
			Source: values[2].(domain.LinkSource),
		}
	})
}

func genSource() gopter.Gen {
	return gen.OneConstOf(domain.SourceReadLater, domain.SourceVault)
}

func withoutSource(links []domain.SerializedLink, source domain.LinkSource) []domain.SerializedLink {
	out := []domain.SerializedLink{}
	for _, link := range links {
		if link.Source != source {
			out = append(out, link)
		}
	}
	return out
}

func TestMergeSourceProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("merging the same export twice is a no-op", prop.ForAll(
		func(existing, fresh []domain.SerializedLink, source domain.LinkSource) bool {
			once, _ := MergeSource(existing, fresh, source)
			twice, stats := MergeSource(once, fresh, source)
			return cmp.Equal(once, twice) && stats.Merged == 0
		},
		gen.SliceOf(genLink()),
		gen.SliceOf(genLink()),
		genSource(),
	))

	properties.Property("records of other sources are never removed or altered", prop.ForAll(
		func(existing, fresh []domain.SerializedLink, source domain.LinkSource) bool {
			merged, _ := MergeSource(existing, fresh, source)
			return cmp.Equal(withoutSource(existing, source), withoutSource(merged, source))
		},
		gen.SliceOf(genLink()),
		gen.SliceOf(genLink()),
		genSource(),
	))

	properties.Property("every fresh URL ends up canonical exactly once", prop.ForAll(
		func(fresh []domain.SerializedLink, source domain.LinkSource) bool {
			merged, _ := MergeSource(nil, fresh, source)
			counts := map[string]int{}
			for _, link := range merged {
				counts[link.URL]++
			}
			for _, link := range fresh {
				if counts[link.URL] != 1 {
					return false
				}
			}
			return len(counts) == len(merged)
		},
		gen.SliceOf(genLink()),
		genSource(),
	))

	properties.TestingRun(t)
}
