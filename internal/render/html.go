// Package render turns server-rendered article markup into text suitable
// for a terminal viewport. The markup is trusted and produced by the wiki
// server; this package only reshapes it for display and never feeds it
// back into the save protocol.
package render

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
)

var conv = converter.NewConverter(
	converter.WithPlugins(
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(),
		table.NewTablePlugin(),
	),
)

// Terminal converts rendered HTML into readable terminal text. On
// conversion failure the raw markup is returned trimmed, which is still
// legible for the simple fragments wiki servers emit.
func Terminal(html string) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}

	out, err := conv.ConvertString(html)
	if err != nil || strings.TrimSpace(out) == "" {
		return strings.TrimSpace(html)
	}
	return strings.TrimSpace(out)
}

// HeightHint returns the number of display lines of the converted markup.
// The editor uses it to seed the body textarea so the edit surface opens
// at roughly the height of the view it replaces.
func HeightHint(html string) int {
	text := Terminal(html)
	if text == "" {
		return 1
	}
	return strings.Count(text, "\n") + 1
}
