package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mayen007/gitfolio/internal/model"
	"github.com/mayen007/gitfolio/internal/portfolio"
)

// MarkdownFormatter renders datasets as markdown, suitable for pasting
// into a profile README.
type MarkdownFormatter struct{}

func (f *MarkdownFormatter) Profile(p model.Profile, w io.Writer) error {
	name := p.Name
	if name == "" {
		name = p.Login
	}
	fmt.Fprintf(w, "# %s\n\n", name)
	fmt.Fprintf(w, "[@%s](https://github.com/%s)\n\n", p.Login, p.Login)
	if p.Bio != "" {
		fmt.Fprintf(w, "> %s\n\n", p.Bio)
	}

	var facts []string
	if p.Location != "" {
		facts = append(facts, p.Location)
	}
	if p.Blog != "" {
		facts = append(facts, fmt.Sprintf("[%s](%s)", p.Blog, p.Blog))
	}
	facts = append(facts, fmt.Sprintf("%d followers", p.Followers))
	fmt.Fprintf(w, "%s\n", strings.Join(facts, " · "))
	return nil
}

func (f *MarkdownFormatter) Repositories(repos []model.Repository, w io.Writer) error {
	if len(repos) == 0 {
		fmt.Fprintln(w, "_No repositories found._")
		return nil
	}

	fmt.Fprintln(w, "| Name | Description | Language | Stars | Forks |")
	fmt.Fprintln(w, "|------|-------------|----------|------:|------:|")
	for _, r := range repos {
		lang := ""
		if r.PrimaryLanguage != nil {
			lang = r.PrimaryLanguage.Name
		}
		fmt.Fprintf(w, "| [%s](%s) | %s | %s | %d | %d |\n",
			r.Name, r.URL, escapePipes(r.Description), lang, r.Stars, r.Forks)
	}
	return nil
}

func (f *MarkdownFormatter) Stats(s model.Stats, w io.Writer) error {
	fmt.Fprintln(w, "## Statistics")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "- **Contributions this year:** %d\n", s.TotalContributions)
	fmt.Fprintf(w, "- **Public repositories:** %d\n", s.TotalRepos)
	fmt.Fprintf(w, "- **Total stars:** %d\n", s.TotalStars)
	fmt.Fprintf(w, "- **Total forks:** %d\n", s.TotalForks)
	fmt.Fprintf(w, "- **Current streak:** %d days\n", s.CurrentStreak)
	fmt.Fprintf(w, "- **Longest streak:** %d days\n", s.LongestStreak)
	return nil
}

func (f *MarkdownFormatter) Overview(ov portfolio.Overview, w io.Writer) error {
	if err := f.Profile(ov.Profile, w); err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "## Featured Projects")
	fmt.Fprintln(w)
	if err := f.Repositories(ov.Pinned, w); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return f.Stats(ov.Stats, w)
}

// escapePipes keeps free-form text from breaking table rows.
func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
