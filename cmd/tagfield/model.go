package main

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tagfield/internal/config"
	"tagfield/internal/tagfield"
	"tagfield/internal/theme"
)

const (
	fieldOriginX = 1
	fieldOriginY = 2
	maxLogLines  = 5
)

// tagSaver persists the edited list.
type tagSaver interface {
	Save(ctx context.Context, field string, tags []string) error
}

type savedMsg struct {
	count int
	err   error
}

type model struct {
	ctx       context.Context
	field     *tagfield.Field
	fieldName string
	saver     tagSaver
	width     int
	maxWidth  int
	log       []string
}

func newModel(ctx context.Context, opts runtimeOptions, tags []string, saver tagSaver) *model {
	f := tagfield.New(tags,
		tagfield.WithWidth(opts.width),
		tagfield.WithDelimiter(opts.delimiter),
		tagfield.WithRemoveButton(opts.showRemove),
		tagfield.WithPlaceholder("add a tag"),
		tagfield.WithOrigin(fieldOriginX, fieldOriginY),
	)
	return &model{
		ctx:       ctx,
		field:     f,
		fieldName: opts.field,
		saver:     saver,
		maxWidth:  opts.width,
	}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(m.field.Init(), m.field.Focus())
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		w := msg.Width - 2*fieldOriginX
		if m.maxWidth > 0 {
			w = min(w, m.maxWidth)
		}
		m.field.SetWidth(max(w, 1))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			return m, m.cycleTheme()
		}

	case tagfield.TagAddedMsg:
		m.addLog(fmt.Sprintf("Added %q", msg.Tag))
		return m, m.save()

	case tagfield.TagRemovedMsg:
		m.addLog(fmt.Sprintf("Removed %q", msg.Tag))
		return m, m.save()

	case tagfield.TagCopiedMsg:
		m.addLog(fmt.Sprintf("Copied %q to clipboard", msg.Tag))
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.addLog(fmt.Sprintf("Save failed: %v", msg.err))
		}
		return m, nil
	}

	return m, m.field.Update(msg)
}

func (m *model) save() tea.Cmd {
	if m.saver == nil {
		return nil
	}
	tags := m.field.Tags()
	ctx, saver, name := m.ctx, m.saver, m.fieldName
	return func() tea.Msg {
		return savedMsg{count: len(tags), err: saver.Save(ctx, name, tags)}
	}
}

func (m *model) cycleTheme() tea.Cmd {
	name := theme.CycleTheme()
	m.field.RefreshStyle()
	if err := config.SaveTheme(name); err != nil {
		m.addLog(fmt.Sprintf("Theme %s (not saved: %v)", name, err))
		return nil
	}
	m.addLog(fmt.Sprintf("Theme %s", name))
	return nil
}

func (m *model) addLog(line string) {
	m.log = append(m.log, line)
	if len(m.log) > maxLogLines {
		m.log = m.log[len(m.log)-maxLogLines:]
	}
}

func (m *model) View() string {
	t := theme.Current()
	title := lipgloss.NewStyle().Bold(true).Foreground(t.Primary()).Render("Tags: " + m.fieldName)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted())
	rule := lipgloss.NewStyle().Foreground(t.BorderNormal()).Render(strings.Repeat("─", max(m.field.Width(), 10)))
	pad := strings.Repeat(" ", fieldOriginX)

	var b strings.Builder
	b.WriteString(pad + title + "\n\n")
	for _, line := range strings.Split(m.field.View(), "\n") {
		b.WriteString(pad + line + "\n")
	}
	b.WriteString(pad + rule + "\n")
	for _, line := range m.log {
		b.WriteString(pad + muted.Render(line) + "\n")
	}
	b.WriteString("\n" + pad + muted.Render("enter/tab add · ←/→ select · backspace delete · ctrl+y copy · ctrl+t theme · ctrl+c quit"))
	return b.String()
}
