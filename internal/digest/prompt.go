package digest

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abelbrown/marketdigest/internal/feeds"
)

// BuildPrompt assembles the instruction sent to the model: the editorial
// rules, the field directory derived from themeFields, and the serialized
// input items.
func BuildPrompt(asOf string, maxThemes int, items []feeds.Item) (string, error) {
	serialized, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to serialize items: %w", err)
	}

	var b strings.Builder
	b.WriteString("You are a global markets interview-prep assistant.\n")
	fmt.Fprintf(&b, "Given the news items below, produce up to %d major market THEMES for %s.\n\n", maxThemes, asOf)

	b.WriteString("Rules:\n")
	b.WriteString("- Base claims ONLY on the provided items. If unsure, set confidence to Low.\n")
	b.WriteString("- Keep each field concise (2-5 sentences).\n")
	b.WriteString("- best_source_url must be one of the provided links.\n\n")

	b.WriteString("Each theme provides:\n")
	for _, f := range themeFields {
		if len(f.enum) > 0 {
			values := make([]string, len(f.enum))
			for i, c := range f.enum {
				values[i] = string(c)
			}
			fmt.Fprintf(&b, "- %s: %s (one of: %s)\n", f.name, f.desc, strings.Join(values, ", "))
			continue
		}
		fmt.Fprintf(&b, "- %s: %s\n", f.name, f.desc)
	}

	b.WriteString("\nNews items:\n")
	b.Write(serialized)

	return b.String(), nil
}
