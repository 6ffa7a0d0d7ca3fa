package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/mayen007/gitfolio/internal/format"
	"github.com/mayen007/gitfolio/internal/model"
	"github.com/mayen007/gitfolio/internal/portfolio"
)

// TableFormatter formats output for the terminal
type TableFormatter struct{}

// hyperlink creates a clickable terminal hyperlink using OSC 8
// Format: \033]8;;URL\033\\TEXT\033]8;;\033\\
func hyperlink(text, url string) string {
	// Only use hyperlinks if stdout is a terminal
	if url == "" || !term.IsTerminal(int(os.Stdout.Fd())) {
		return text
	}
	return fmt.Sprintf("\033]8;;%s\033\\%s\033]8;;\033\\", url, text)
}

func (f *TableFormatter) Profile(p model.Profile, w io.Writer) error {
	name := p.Name
	if name == "" {
		name = p.Login
	}
	fmt.Fprintf(w, "%s (%s)\n", color.New(color.Bold).Sprint(name), hyperlink("@"+p.Login, "https://github.com/"+p.Login))
	if p.Bio != "" {
		fmt.Fprintf(w, "%s\n", p.Bio)
	}
	fmt.Fprintln(w)

	if p.Location != "" {
		fmt.Fprintf(w, "  Location:  %s\n", p.Location)
	}
	if p.Blog != "" {
		fmt.Fprintf(w, "  Website:   %s\n", p.Blog)
	}
	if p.Email != "" {
		fmt.Fprintf(w, "  Email:     %s\n", p.Email)
	}
	fmt.Fprintf(w, "  Repos:     %d public\n", p.PublicRepos)
	fmt.Fprintf(w, "  Followers: %d\n", p.Followers)
	fmt.Fprintf(w, "  Following: %d\n", p.Following)
	if !p.CreatedAt.IsZero() {
		fmt.Fprintf(w, "  Joined:    %s\n", p.CreatedAt.Format("January 2006"))
	}
	return nil
}

func (f *TableFormatter) Repositories(repos []model.Repository, w io.Writer) error {
	if len(repos) == 0 {
		fmt.Fprintln(w, "No repositories found.")
		return nil
	}

	// Column widths
	const (
		colName     = 24
		colDesc     = 40
		colLang     = 12
		colStars    = 6
		colForks    = 6
		colUpdated  = 7
		lineWidth   = colName + colDesc + colLang + colStars + colForks + colUpdated + 10
		headerStyle = "%-*s  %-*s  %-*s  %*s  %*s  %s\n"
	)

	fmt.Fprintf(w, headerStyle,
		colName, "Name",
		colDesc, "Description",
		colLang, "Language",
		colStars, "Stars",
		colForks, "Forks",
		"Updated")
	fmt.Fprintln(w, strings.Repeat("-", lineWidth))

	for _, r := range repos {
		name, nameWidth := format.TruncateToWidth(r.Name, colName)
		linked := format.PadRight(hyperlink(name, r.URL), nameWidth, colName)

		desc, descWidth := format.TruncateToWidth(r.Description, colDesc)
		desc = format.PadRight(desc, descWidth, colDesc)

		lang := ""
		if r.PrimaryLanguage != nil {
			lang = r.PrimaryLanguage.Name
		}
		lang, langWidth := format.TruncateToWidth(lang, colLang)
		lang = format.PadRight(lang, langWidth, colLang)

		updated := ""
		if !r.UpdatedAt.IsZero() {
			updated = format.FormatAge(time.Since(r.UpdatedAt))
		}

		fmt.Fprintf(w, "%s  %s  %s  %*s  %*s  %s\n",
			linked,
			desc,
			lang,
			colStars, format.FormatCount(r.Stars),
			colForks, format.FormatCount(r.Forks),
			updated,
		)
	}

	printRepoFooter(repos, w)
	return nil
}

func (f *TableFormatter) Stats(s model.Stats, w io.Writer) error {
	fmt.Fprintln(w, color.New(color.Bold).Sprint("GitHub Statistics"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Contributions this year: %s\n", color.GreenString("%d", s.TotalContributions))
	fmt.Fprintf(w, "  Public repositories:     %d\n", s.TotalRepos)
	fmt.Fprintf(w, "  Total stars earned:      %s\n", format.FormatCount(s.TotalStars))
	fmt.Fprintf(w, "  Total forks:             %s\n", format.FormatCount(s.TotalForks))
	fmt.Fprintf(w, "  Current streak:          %s\n", formatStreak(s.CurrentStreak))
	fmt.Fprintf(w, "  Longest streak:          %s\n", formatStreak(s.LongestStreak))
	if len(s.ContributionYears) > 0 {
		fmt.Fprintf(w, "  Active since:            %d\n", minYear(s.ContributionYears))
	}
	return nil
}

func (f *TableFormatter) Overview(ov portfolio.Overview, w io.Writer) error {
	if err := f.Profile(ov.Profile, w); err != nil {
		return err
	}
	if ov.FromCache.Profile {
		fmt.Fprintln(w, color.YellowString("  (profile served from cache)"))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, color.New(color.Bold).Sprint("Featured Projects"))
	if err := f.Repositories(ov.Pinned, w); err != nil {
		return err
	}
	if ov.FromCache.Pinned {
		fmt.Fprintln(w, color.YellowString("  (projects served from cache)"))
	}

	fmt.Fprintln(w)
	if err := f.Stats(ov.Stats, w); err != nil {
		return err
	}
	if ov.FromCache.Stats {
		fmt.Fprintln(w, color.YellowString("  (statistics served from cache)"))
	}
	return nil
}

// printRepoFooter sums the table the way the web profile does.
func printRepoFooter(repos []model.Repository, w io.Writer) {
	var stars, forks int
	for _, r := range repos {
		stars += r.Stars
		forks += r.Forks
	}
	fmt.Fprintf(w, "\n  %d repositories, %s stars, %s forks\n",
		len(repos), format.FormatCount(stars), format.FormatCount(forks))
}

func formatStreak(days int) string {
	s := fmt.Sprintf("%d days", days)
	if days == 1 {
		s = "1 day"
	}
	if days > 0 {
		return color.GreenString(s)
	}
	return s
}

func minYear(years []int) int {
	min := years[0]
	for _, y := range years[1:] {
		if y < min {
			min = y
		}
	}
	return min
}
