package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/mayen007/gitfolio/internal/format"
	"github.com/mayen007/gitfolio/internal/model"
	"github.com/mayen007/gitfolio/internal/query"
)

// View renders the dashboard.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderProfile())
	b.WriteString(m.renderPinned())
	b.WriteString(m.renderStats())
	b.WriteString(footerStyle.Render("\n  q quit · r retry failed sections"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderProfile() string {
	var b strings.Builder

	switch {
	case m.profile.IsLoading() || m.profile.Status == query.StatusIdle:
		fmt.Fprintf(&b, "  %s Loading profile...\n", spinnerStyle.Render(m.spinner.View()))
	case m.profile.IsError():
		fmt.Fprintf(&b, "  %s\n", errorStyle.Render(m.profile.Err.Error()))
	default:
		p := m.profile.Data
		name := p.Name
		if name == "" {
			name = p.Login
		}
		fmt.Fprintf(&b, "  %s %s%s\n",
			titleStyle.Render(name),
			userStyle.Render("@"+p.Login),
			cachedBadge(m.profile.FromCache))
		if p.Bio != "" {
			fmt.Fprintf(&b, "  %s\n", dimStyle.Render(p.Bio))
		}
		fmt.Fprintf(&b, "  %s\n", dimStyle.Render(fmt.Sprintf(
			"%d repos · %d followers · %d following",
			p.PublicRepos, p.Followers, p.Following)))
	}

	return b.String()
}

func (m Model) renderPinned() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("  Featured Projects"))
	b.WriteString(cachedBadge(m.pinned.FromCache))
	b.WriteString("\n")

	switch {
	case m.pinned.IsLoading() || m.pinned.Status == query.StatusIdle:
		fmt.Fprintf(&b, "  %s Loading projects...\n", spinnerStyle.Render(m.spinner.View()))
	case m.pinned.IsError():
		fmt.Fprintf(&b, "  %s\n", errorStyle.Render(m.pinned.Err.Error()))
	case len(m.pinned.Data) == 0:
		fmt.Fprintf(&b, "  %s\n", dimStyle.Render("No projects to show."))
	default:
		for _, r := range m.pinned.Data {
			b.WriteString(renderRepoLine(r, m.lineWidth()))
		}
	}

	return b.String()
}

func (m Model) renderStats() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("  Statistics"))
	b.WriteString(cachedBadge(m.stats.FromCache))
	b.WriteString("\n")

	switch {
	case m.stats.IsLoading() || m.stats.Status == query.StatusIdle:
		fmt.Fprintf(&b, "  %s Loading statistics...\n", spinnerStyle.Render(m.spinner.View()))
	case m.stats.IsError():
		fmt.Fprintf(&b, "  %s\n", errorStyle.Render(m.stats.Err.Error()))
	default:
		s := m.stats.Data
		fmt.Fprintf(&b, "  %s contributions · %s stars · %s forks\n",
			format.FormatCount(s.TotalContributions),
			starStyle.Render(format.FormatCount(s.TotalStars)),
			format.FormatCount(s.TotalForks))
		fmt.Fprintf(&b, "  %s\n", dimStyle.Render(fmt.Sprintf(
			"streak: %d days now, %d days best", s.CurrentStreak, s.LongestStreak)))
	}

	return b.String()
}

func renderRepoLine(r model.Repository, width int) string {
	name, nameWidth := format.TruncateToWidth(r.Name, 24)
	name = name + strings.Repeat(" ", 24-nameWidth)

	lang := ""
	if r.PrimaryLanguage != nil {
		lang = r.PrimaryLanguage.Name
	}

	meta := fmt.Sprintf("%s ★%s", lang, format.FormatCount(r.Stars))
	if !r.UpdatedAt.IsZero() {
		meta += " · " + format.FormatAge(time.Since(r.UpdatedAt))
	}

	descWidth := width - 24 - format.DisplayWidth(meta) - 8
	desc := ""
	if descWidth > 4 {
		desc, _ = format.TruncateToWidth(r.Description, descWidth)
	}

	return fmt.Sprintf("  %s %s %s\n", titleStyle.Render(name), dimStyle.Render(desc), starStyle.Render(meta))
}

func cachedBadge(fromCache bool) string {
	if !fromCache {
		return ""
	}
	return cachedStyle.Render(" (cached)")
}

// lineWidth returns the usable width, defaulting before the first
// WindowSizeMsg arrives.
func (m Model) lineWidth() int {
	if m.windowWidth > 0 {
		return m.windowWidth
	}
	return 80
}
