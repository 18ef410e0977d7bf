package projects

// DefaultKey names the mandatory fallback entry of a style table.
const DefaultKey = "default"

// CodeLabel is shown when a repository reports no primary language.
const CodeLabel = "Code"

// GenericDescription is used when neither the repository nor the override
// table provides a description.
const GenericDescription = "A project by Bhushan Chilakapati."

// StyleTable maps a language name to a display attribute. It always holds a
// DefaultKey entry and is never mutated after package initialization.
type StyleTable struct {
	entries map[string]string
}

func newStyleTable(def string, entries map[string]string) StyleTable {
	m := make(map[string]string, len(entries)+1)
	for k, v := range entries {
		m[k] = v
	}
	m[DefaultKey] = def
	return StyleTable{entries: m}
}

// Lookup returns the entry for lang, or the default entry.
func (t StyleTable) Lookup(lang string) string {
	if v, ok := t.entries[lang]; ok {
		return v
	}
	return t.entries[DefaultKey]
}

// Default returns the default entry.
func (t StyleTable) Default() string { return t.entries[DefaultKey] }

var (
	// LanguageColors is the badge dot color per language.
	LanguageColors = newStyleTable("#8b5cf6", map[string]string{
		"JavaScript": "#f7df1e",
		"TypeScript": "#3178c6",
		"Python":     "#3776ab",
		"HTML":       "#e34c26",
		"CSS":        "#264de4",
		"Rust":       "#ce4a00",
		"Go":         "#00add8",
	})

	// LanguageEmojis is the card icon per language.
	LanguageEmojis = newStyleTable("💻", map[string]string{
		"JavaScript": "⚡",
		"TypeScript": "🔷",
		"Python":     "🐍",
		"HTML":       "🌐",
		"CSS":        "🎨",
		"Rust":       "⚙️",
		"Go":         "🐹",
	})
)

// descriptionOverrides supplies text for repositories that have none.
var descriptionOverrides = map[string]string{
	"Bhushan-Chilakapati.github.io": "My personal GitHub Pages website — the online home for my work and profile.",
}

// ResolveDescription picks the repository's own description, then the
// per-name override, then GenericDescription.
func ResolveDescription(name, own string) string {
	if own != "" {
		return own
	}
	if d, ok := descriptionOverrides[name]; ok {
		return d
	}
	return GenericDescription
}

// ResolveLanguage returns the label for a repository language.
func ResolveLanguage(lang string) string {
	if lang == "" {
		return CodeLabel
	}
	return lang
}
