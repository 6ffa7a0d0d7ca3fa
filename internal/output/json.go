package output

import (
	"encoding/json"
	"io"

	"github.com/mayen007/gitfolio/internal/model"
	"github.com/mayen007/gitfolio/internal/portfolio"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	Pretty bool
}

func (f *JSONFormatter) encode(v any, w io.Writer) error {
	encoder := json.NewEncoder(w)
	if f.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(v)
}

func (f *JSONFormatter) Profile(p model.Profile, w io.Writer) error {
	return f.encode(p, w)
}

func (f *JSONFormatter) Repositories(repos []model.Repository, w io.Writer) error {
	return f.encode(repos, w)
}

func (f *JSONFormatter) Stats(s model.Stats, w io.Writer) error {
	return f.encode(s, w)
}

func (f *JSONFormatter) Overview(ov portfolio.Overview, w io.Writer) error {
	return f.encode(ov, w)
}
