package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/howell-aikit/promptpack/internal/project"
	"github.com/howell-aikit/promptpack/internal/source"
)

// PickerPhase represents the current phase of the picker
type PickerPhase int

const (
	PhasePick     PickerPhase = iota // Choose files from the inclusion set
	PhaseAssemble                    // Building the prompt
	PhaseError                       // Assembly failed
)

// PickOptions carries the prompt sections the picker assembles around the
// chosen files.
type PickOptions struct {
	Overview  string
	Structure bool
	Question  string
	GitInfo   string
	Source    source.Options
}

// Result is what the picker hands back to the caller.
type Result struct {
	Prompt    string
	Files     []string
	Cancelled bool
}

// PickerModel handles the file selection screen
type PickerModel struct {
	proj    *project.Project
	opts    PickOptions
	phase   PickerPhase
	spinner spinner.Model

	// File selection (PhasePick)
	files    []string
	selected map[int]bool
	cursor   int

	// Substring filter over the visible list
	filterInput textinput.Model
	isFiltering bool
	filter      string

	warnEmpty bool

	result   Result
	err      error
	quitting bool
}

// NewPickerModel creates a picker over the project's inclusion set, with
// every file selected to start.
func NewPickerModel(proj *project.Project, opts PickOptions) PickerModel {
	filterInput := textinput.New()
	filterInput.Placeholder = "Type to filter..."
	filterInput.Width = 40

	files := proj.Files()
	selected := make(map[int]bool, len(files))
	for i := range files {
		selected[i] = true
	}

	return PickerModel{
		proj:        proj,
		opts:        opts,
		phase:       PhasePick,
		spinner:     NewSpinner(),
		files:       files,
		selected:    selected,
		filterInput: filterInput,
	}
}

// Init initializes the picker model
func (m PickerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.result.Cancelled = true
			m.quitting = true
			return m, tea.Quit
		}
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case assembledMsg:
		if msg.err != nil {
			m.err = msg.err
			m.phase = PhaseError
			return m, nil
		}
		m.result = Result{Prompt: msg.prompt, Files: msg.files}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m PickerModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case PhasePick:
		if m.isFiltering {
			return m.handleFilterInput(msg)
		}
		return m.handlePickInput(msg)
	case PhaseError:
		switch msg.String() {
		case "enter", "esc", "q":
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m PickerModel) handlePickInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visible()

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case " ":
		if m.cursor < len(visible) {
			idx := visible[m.cursor]
			m.selected[idx] = !m.selected[idx]
			m.warnEmpty = false
		}
	case "a":
		for _, idx := range visible {
			m.selected[idx] = true
		}
		m.warnEmpty = false
	case "n":
		for _, idx := range visible {
			m.selected[idx] = false
		}
	case "/":
		m.isFiltering = true
		m.filterInput.SetValue(m.filter)
		m.filterInput.Focus()
		return m, textinput.Blink
	case "enter":
		chosen := m.chosen()
		if len(chosen) == 0 {
			m.warnEmpty = true
			return m, nil
		}
		m.phase = PhaseAssemble
		return m, tea.Batch(m.spinner.Tick, m.assemble(chosen))
	case "esc", "q":
		m.result.Cancelled = true
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m PickerModel) handleFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filter = strings.TrimSpace(m.filterInput.Value())
		m.isFiltering = false
		m.cursor = 0
	case "esc":
		m.isFiltering = false
	default:
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// visible returns the indexes of files matching the current filter.
func (m PickerModel) visible() []int {
	idx := make([]int, 0, len(m.files))
	for i, f := range m.files {
		if m.filter == "" || strings.Contains(f, m.filter) {
			idx = append(idx, i)
		}
	}
	return idx
}

// chosen returns the selected files in inclusion-set order.
func (m PickerModel) chosen() []string {
	var out []string
	for i, f := range m.files {
		if m.selected[i] {
			out = append(out, f)
		}
	}
	return out
}

// View renders the picker
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("promptpack"))
	b.WriteString("\n\n")

	switch m.phase {
	case PhasePick:
		b.WriteString(m.viewPick())
	case PhaseAssemble:
		b.WriteString(m.viewAssemble())
	case PhaseError:
		b.WriteString(m.viewError())
	}

	return b.String()
}

func (m PickerModel) viewPick() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(m.proj.Root()))
	b.WriteString("\n\n")
	b.WriteString(infoStyle.Render("? "))
	b.WriteString("Select files to include\n\n")

	if m.isFiltering {
		b.WriteString("  /" + m.filterInput.View())
		b.WriteString("\n\n")
	} else if m.filter != "" {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  filter: %s", m.filter)))
		b.WriteString("\n\n")
	}

	visible := m.visible()
	if len(visible) == 0 {
		b.WriteString(dimStyle.Render("  No files matched"))
		b.WriteString("\n")
	}

	for vi, idx := range visible {
		mark := "[ ]"
		if m.selected[idx] {
			mark = "[x]"
		}

		line := fmt.Sprintf("%s %s", mark, TruncateString(m.files[idx], 60))
		if vi == m.cursor {
			b.WriteString(selectedStyle.Render("  > " + line))
		} else {
			b.WriteString(normalStyle.Render("    " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(successStyle.Render(fmt.Sprintf("  %d of %d selected", len(m.chosen()), len(m.files))))
	b.WriteString("\n")

	if m.warnEmpty {
		b.WriteString(warningStyle.Render("  Nothing selected"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  ↑/↓ move • Space toggle • a all • n none • / filter • Enter build • q quit"))

	return b.String()
}

func (m PickerModel) viewAssemble() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" Assembling prompt...")

	return b.String()
}

func (m PickerModel) viewError() string {
	errMsg := "Unknown error"
	if m.err != nil {
		errMsg = m.err.Error()
	}

	return boxStyle.Render(
		errorStyle.Render("Error") + "\n\n" +
			errMsg + "\n\n" +
			dimStyle.Render("Press q to quit"),
	)
}

// Messages

type assembledMsg struct {
	prompt string
	files  []string
	err    error
}

// assemble builds the prompt off the update loop and reports back with an
// assembledMsg.
func (m PickerModel) assemble(files []string) tea.Cmd {
	return func() tea.Msg {
		b := m.proj.NewPrompt()
		err := m.proj.WriteInfo(b, project.InfoOptions{
			Overview:  m.opts.Overview,
			Structure: m.opts.Structure,
			Contents:  true,
			Files:     files,
			Source:    m.opts.Source,
		})
		if err != nil {
			return assembledMsg{err: err}
		}
		b.AddSection("Git", m.opts.GitInfo)
		b.AddQuestion(m.opts.Question)
		return assembledMsg{prompt: b.String(), files: files}
	}
}
