package render

import (
	"fmt"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/strikethrough"

	"github.com/tsawler/minidock/model"
)

func newMarkdownConverter() *converter.Converter {
	return converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			strikethrough.NewStrikethroughPlugin(),
		),
	)
}

// Markdown returns the document as CommonMark. It renders HTML first and
// converts that, so headings, lists, emphasis and note links follow the
// HTML projection.
func Markdown(doc *model.Document) (string, error) {
	h, err := HTML(doc)
	if err != nil {
		return "", err
	}

	md, err := newMarkdownConverter().ConvertString(h)
	if err != nil {
		return "", fmt.Errorf("converting to markdown: %w", err)
	}
	return md, nil
}
