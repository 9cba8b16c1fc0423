package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/carbonfoot/internal/footprint"
	"github.com/rshade/carbonfoot/internal/ingest"
)

// WhatIfState represents the current state of the explorer.
type WhatIfState int

const (
	// WhatIfStateBrowsing indicates the user is moving between fields.
	WhatIfStateBrowsing WhatIfState = iota
	// WhatIfStateEditing indicates a numeric or text field is being typed.
	WhatIfStateEditing
	// WhatIfStateQuitting indicates the application is exiting.
	WhatIfStateQuitting
)

// FieldRow is one editable profile field in the explorer.
type FieldRow struct {
	Field    ingest.Field
	Original string
	Current  string

	// Delta is the change in total caused by this field alone.
	Delta float64
}

// Changed reports whether the row differs from the baseline.
func (r FieldRow) Changed() bool {
	return r.Current != r.Original
}

// Layout defaults.
const (
	whatIfDefaultWidth  = 80
	whatIfDefaultHeight = 24
	whatIfChromeLines   = 14
	whatIfMinTableRows  = 3

	fieldLabelWidth = 30
	fieldValueWidth = 14
	fieldDeltaWidth = 12
)

// WhatIfModel is the Bubble Tea model for interactive footprint exploration.
// Every edit re-runs the estimator on a copy of the profile; the baseline is
// never modified.
type WhatIfModel struct {
	baseline      footprint.Profile
	current       footprint.Profile
	baselineTotal float64
	modifiedTotal float64
	precision     int

	rows  []FieldRow
	table table.Model

	state      WhatIfState
	editBuffer string
	err        error

	width  int
	height int
}

// NewWhatIfModel creates an explorer seeded with p.
func NewWhatIfModel(p footprint.Profile, precision int) *WhatIfModel {
	m := &WhatIfModel{
		baseline:      p,
		current:       p,
		baselineTotal: footprint.Estimate(p).Total,
		precision:     precision,
		state:         WhatIfStateBrowsing,
		width:         whatIfDefaultWidth,
		height:        whatIfDefaultHeight,
	}

	fields := ingest.Fields()
	m.rows = make([]FieldRow, 0, len(fields))
	for _, f := range fields {
		v := f.Get(p)
		m.rows = append(m.rows, FieldRow{Field: f, Original: v, Current: v})
	}

	m.table = newFieldTable(m.tableHeight())
	m.refresh()
	return m
}

func newFieldTable(height int) table.Model {
	columns := []table.Column{
		{Title: "Field", Width: fieldLabelWidth},
		{Title: "Baseline", Width: fieldValueWidth},
		{Title: "Current", Width: fieldValueWidth},
		{Title: "Δ Total", Width: fieldDeltaWidth},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}

// refresh re-estimates the current profile and rebuilds the table rows.
func (m *WhatIfModel) refresh() {
	m.modifiedTotal = footprint.Estimate(m.current).Total

	rows := make([]table.Row, len(m.rows))
	for i := range m.rows {
		row := &m.rows[i]
		row.Current = row.Field.Get(m.current)
		row.Delta = 0
		if row.Changed() {
			if alone, err := ingest.Apply(m.baseline, row.Field.Key, row.Current); err == nil {
				row.Delta = footprint.Estimate(alone).Total - m.baselineTotal
			}
		}

		current := row.Current
		if m.state == WhatIfStateEditing && i == m.table.Cursor() {
			current = m.editBuffer + IconCursor
		}
		rows[i] = table.Row{
			truncate(row.Field.Label, fieldLabelWidth),
			truncate(row.Original, fieldValueWidth),
			truncate(current, fieldValueWidth),
			m.formatRowDelta(*row),
		}
	}
	m.table.SetRows(rows)
}

func (m *WhatIfModel) formatRowDelta(row FieldRow) string {
	if !row.Changed() {
		return ""
	}
	return fmt.Sprintf("%+.*f", m.precision, row.Delta)
}

func (m *WhatIfModel) tableHeight() int {
	h := m.height - whatIfChromeLines
	if h < whatIfMinTableRows {
		return whatIfMinTableRows
	}
	return h
}

// Init initializes the model.
func (m *WhatIfModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *WhatIfModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(m.tableHeight())
		return m, nil

	case tea.KeyMsg:
		if m.state == WhatIfStateEditing {
			return m.handleEditModeKey(msg)
		}
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleKeyMsg processes keyboard input while browsing.
//
//nolint:exhaustive // Only handling relevant key types for explorer navigation.
func (m *WhatIfModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.state = WhatIfStateQuitting
		return m, tea.Quit

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			m.state = WhatIfStateQuitting
			return m, tea.Quit
		case "r":
			m.resetFocused()
			return m, nil
		case "R":
			m.current = m.baseline
			m.err = nil
			m.refresh()
			return m, nil
		}

	case tea.KeyEnter, tea.KeySpace:
		m.activateFocused()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// activateFocused cycles a choice field or starts editing any other field.
func (m *WhatIfModel) activateFocused() {
	row, ok := m.focusedRow()
	if !ok {
		return
	}

	if row.Field.Kind == ingest.KindChoice {
		m.apply(row.Field.Key, row.Field.Next(row.Current))
		return
	}

	m.state = WhatIfStateEditing
	m.editBuffer = row.Current
	m.refresh()
}

func (m *WhatIfModel) resetFocused() {
	row, ok := m.focusedRow()
	if !ok {
		return
	}
	m.apply(row.Field.Key, row.Original)
}

// apply sets one field on the current profile. Invalid values leave the
// profile unchanged and surface as an inline error.
func (m *WhatIfModel) apply(key, value string) {
	next, err := ingest.Apply(m.current, key, value)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.current = next
	m.refresh()
}

// handleEditModeKey processes keyboard input while editing a field.
//
//nolint:exhaustive // Only handling relevant key types for text editing.
func (m *WhatIfModel) handleEditModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.state = WhatIfStateQuitting
		return m, tea.Quit

	case tea.KeyEnter:
		m.state = WhatIfStateBrowsing
		if row, ok := m.focusedRow(); ok {
			m.apply(row.Field.Key, m.editBuffer)
		}
		m.editBuffer = ""
		m.refresh()
		return m, nil

	case tea.KeyEsc:
		m.state = WhatIfStateBrowsing
		m.editBuffer = ""
		m.refresh()
		return m, nil

	case tea.KeyBackspace:
		runes := []rune(m.editBuffer)
		if len(runes) > 0 {
			m.editBuffer = string(runes[:len(runes)-1])
		}
		m.refresh()
		return m, nil

	case tea.KeyRunes, tea.KeySpace:
		m.editBuffer += string(msg.Runes)
		m.refresh()
		return m, nil
	}

	return m, nil
}

func (m *WhatIfModel) focusedRow() (FieldRow, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.rows) {
		return FieldRow{}, false
	}
	return m.rows[i], true
}

// View renders the current view.
func (m *WhatIfModel) View() string {
	if m.state == WhatIfStateQuitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(RenderWhatIfHeader(m.baseline.About.Name))
	sb.WriteString("\n\n")
	sb.WriteString(RenderTotalComparison(m.baselineTotal, m.modifiedTotal, m.precision))
	sb.WriteString("\n\n")
	sb.WriteString(m.table.View())
	sb.WriteString("\n\n")
	if m.err != nil {
		sb.WriteString(RenderError(m.err))
		sb.WriteString("\n")
	}
	sb.WriteString(RenderWhatIfHelp(m.state == WhatIfStateEditing))
	return sb.String()
}

// Profile returns the profile with every edit applied.
func (m *WhatIfModel) Profile() footprint.Profile {
	return m.current
}

// Rows returns a copy of the field rows.
func (m *WhatIfModel) Rows() []FieldRow {
	out := make([]FieldRow, len(m.rows))
	copy(out, m.rows)
	return out
}

// Totals returns the baseline and modified totals.
func (m *WhatIfModel) Totals() (float64, float64) {
	return m.baselineTotal, m.modifiedTotal
}

// Overrides returns key=value pairs for every changed field, in form order,
// suitable for repeating the session with --set.
func (m *WhatIfModel) Overrides() []string {
	var out []string
	for _, row := range m.rows {
		if row.Changed() {
			out = append(out, row.Field.Key+"="+row.Current)
		}
	}
	return out
}
