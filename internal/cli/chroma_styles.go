package cli

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

func init() {
	// Register Catppuccin Mocha style
	// Based on https://github.com/catppuccin/chroma
	// Only the token classes that occur in YAML records are themed.
	styles.Register(chroma.MustNewStyle(highlightStyle, chroma.StyleEntries{
		chroma.Text:                "#cdd6f4",
		chroma.Error:               "#f38ba8",
		chroma.Comment:             "#6c7086 italic",
		chroma.Keyword:             "#cba6f7",
		chroma.KeywordConstant:     "#fab387",
		chroma.Punctuation:         "#9399b2",
		chroma.NameTag:             "#89b4fa",
		chroma.NameAttribute:       "#89b4fa",
		chroma.NameVariable:        "#f5c2e7",
		chroma.Literal:             "#cdd6f4",
		chroma.LiteralDate:         "#f9e2af",
		chroma.LiteralNumber:       "#fab387",
		chroma.LiteralString:       "#a6e3a1",
		chroma.LiteralStringEscape: "#f5e0dc",
		chroma.Background:          "", // Transparent background
	}))
}
