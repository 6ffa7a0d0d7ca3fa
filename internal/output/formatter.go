package output

import (
	"io"

	"github.com/mayen007/gitfolio/internal/model"
	"github.com/mayen007/gitfolio/internal/portfolio"
)

// Format represents the output format
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Formatter renders portfolio datasets to a writer.
type Formatter interface {
	Profile(p model.Profile, w io.Writer) error
	Repositories(repos []model.Repository, w io.Writer) error
	Stats(s model.Stats, w io.Writer) error
	Overview(ov portfolio.Overview, w io.Writer) error
}

// NewFormatter creates a formatter for the specified format
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Pretty: true}
	case FormatMarkdown:
		return &MarkdownFormatter{}
	default:
		return &TableFormatter{}
	}
}
