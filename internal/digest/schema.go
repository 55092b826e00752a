package digest

// SchemaName identifies the structured-output schema sent to the model.
const SchemaName = "market_digest"

// themeField describes one property of a theme. This table is the single
// source of truth for the theme shape: both the prompt's field directory
// and the JSON schema are derived from it, so the two cannot drift.
type themeField struct {
	name string
	desc string
	enum []Confidence
}

var themeFields = []themeField{
	{name: "theme", desc: "short name of the market theme"},
	{name: "what_happened", desc: "what happened, based on the provided items"},
	{name: "why_it_matters", desc: "why this matters for markets"},
	{name: "market_impact", desc: "impact across rates, equities, FX, credit, commodities as relevant"},
	{name: "watch_next", desc: "what to watch next"},
	{name: "confidence", desc: "how well the provided items support the theme",
		enum: []Confidence{ConfidenceHigh, ConfidenceMedium, ConfidenceLow}},
	{name: "best_source_url", desc: "the single best source link, taken from the provided items"},
}

// ResponseSchema builds the strict JSON schema for a digest with at most
// maxThemes themes. A response with extra properties, a missing field, or
// more than maxThemes themes violates the schema.
func ResponseSchema(maxThemes int) map[string]interface{} {
	properties := make(map[string]interface{}, len(themeFields))
	required := make([]string, 0, len(themeFields))
	for _, f := range themeFields {
		prop := map[string]interface{}{
			"type":        "string",
			"description": f.desc,
		}
		if len(f.enum) > 0 {
			values := make([]string, len(f.enum))
			for i, c := range f.enum {
				values[i] = string(c)
			}
			prop["enum"] = values
		}
		properties[f.name] = prop
		required = append(required, f.name)
	}

	return map[string]interface{}{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]interface{}{
			"as_of": map[string]interface{}{"type": "string"},
			"themes": map[string]interface{}{
				"type":     "array",
				"minItems": 1,
				"maxItems": maxThemes,
				"items": map[string]interface{}{
					"type":                 "object",
					"additionalProperties": false,
					"properties":           properties,
					"required":             required,
				},
			},
		},
		"required": []string{"as_of", "themes"},
	}
}
