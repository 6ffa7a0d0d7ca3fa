// Package tui renders the portfolio dashboard: profile, featured
// projects, and contribution statistics, each updating live as its
// query resolves.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mayen007/gitfolio/internal/model"
	"github.com/mayen007/gitfolio/internal/portfolio"
	"github.com/mayen007/gitfolio/internal/query"
)

// Section messages carry query snapshots into the Bubble Tea loop.
type (
	profileMsg query.Result[model.Profile]
	pinnedMsg  query.Result[[]model.Repository]
	statsMsg   query.Result[model.Stats]
)

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	svc     *portfolio.Service
	spinner spinner.Model

	profile query.Result[model.Profile]
	pinned  query.Result[[]model.Repository]
	stats   query.Result[model.Stats]

	profileCh <-chan query.Result[model.Profile]
	pinnedCh  <-chan query.Result[[]model.Repository]
	statsCh   <-chan query.Result[model.Stats]
	cancels   []func()

	windowWidth int
}

// NewModel creates the dashboard model and subscribes to every dataset.
// ctx bounds the fetches the subscriptions kick off.
func NewModel(ctx context.Context, svc *portfolio.Service) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{svc: svc, spinner: s}

	var cancel func()
	m.profileCh, cancel = svc.Profile.Watch(ctx)
	m.cancels = append(m.cancels, cancel)
	m.pinnedCh, cancel = svc.Pinned.Watch(ctx)
	m.cancels = append(m.cancels, cancel)
	m.statsCh, cancel = svc.Stats.Watch(ctx)
	m.cancels = append(m.cancels, cancel)

	return m
}

// Close releases the query subscriptions.
func (m Model) Close() {
	for _, cancel := range m.cancels {
		cancel()
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		waitForProfile(m.profileCh),
		waitForPinned(m.pinnedCh),
		waitForStats(m.statsCh),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			return m, m.refresh()
		}

	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case profileMsg:
		m.profile = query.Result[model.Profile](msg)
		return m, waitForProfile(m.profileCh)

	case pinnedMsg:
		m.pinned = query.Result[[]model.Repository](msg)
		return m, waitForPinned(m.pinnedCh)

	case statsMsg:
		m.stats = query.Result[model.Stats](msg)
		return m, waitForStats(m.statsCh)
	}

	return m, nil
}

// refresh forces every errored section to refetch.
func (m Model) refresh() tea.Cmd {
	svc := m.svc
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ctx := context.Background()
		if m.profile.IsError() {
			go svc.Profile.Refresh(ctx)
		}
		if m.pinned.IsError() {
			go svc.Pinned.Refresh(ctx)
		}
		if m.stats.IsError() {
			go svc.Stats.Refresh(ctx)
		}
		return nil
	}
}

func waitForProfile(ch <-chan query.Result[model.Profile]) tea.Cmd {
	return func() tea.Msg {
		res, ok := <-ch
		if !ok {
			return nil
		}
		return profileMsg(res)
	}
}

func waitForPinned(ch <-chan query.Result[[]model.Repository]) tea.Cmd {
	return func() tea.Msg {
		res, ok := <-ch
		if !ok {
			return nil
		}
		return pinnedMsg(res)
	}
}

func waitForStats(ch <-chan query.Result[model.Stats]) tea.Cmd {
	return func() tea.Msg {
		res, ok := <-ch
		if !ok {
			return nil
		}
		return statsMsg(res)
	}
}
