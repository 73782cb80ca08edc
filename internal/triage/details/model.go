package details

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/containersec/convertctl/pkg/gitlab"
)

var (
	detailsStyle    = lipgloss.NewStyle().Background(lipgloss.Color("#222233"))
	fieldNameStyle  = lipgloss.NewStyle().Inherit(detailsStyle).Foreground(lipgloss.Color("#aaaaaa"))
	fieldValueStyle = lipgloss.NewStyle().Inherit(detailsStyle).Foreground(lipgloss.Color("#ffffff"))
)

type Model struct {
	height, width int

	data gitlab.Vulnerability
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(_ tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

func (m Model) View() string {
	output := ""
	output += m.renderFieldNameValue("Package", m.data.Location.Dependency.Package.Name) + "\n"
	output += m.renderFieldNameValue("Version", m.data.Location.Dependency.Version) + "\n"
	output += m.renderFieldNameValue("Image", m.data.Location.Image) + "\n"

	output += "\n"

	output += m.renderFieldNameValue("Vulnerability", m.data.ID) + "\n"
	output += m.renderFieldNameValue("Severity", string(m.data.Severity)) + "\n"
	output += m.renderFieldNameValue("URL", m.identifierURL()) + "\n"
	output += m.renderFieldNameValue("Solution", m.data.Solution) + "\n"
	output += m.renderFieldNameValue("Description", m.data.Description)

	return detailsStyle.Height(m.height).MaxHeight(m.height).Width(m.width).Render(output)
}

func (m Model) SetHeight(h int) Model {
	m.height = h
	return m
}

func (m Model) SetWidth(w int) Model {
	m.width = w
	return m
}

func (m Model) For(data gitlab.Vulnerability) Model {
	m.data = data
	return m
}

func (m Model) identifierURL() string {
	if len(m.data.Identifiers) == 0 {
		return ""
	}

	return m.data.Identifiers[0].URL
}

func (m Model) renderFieldNameValue(name, value string) string {
	renderedName := fieldNameStyle.Render(name + ":")
	renderedName = stripANSIReset(renderedName)
	renderedValue := fieldValueStyle.Render(value)

	line := renderedName + " " + renderedValue

	return line
}

func stripANSIReset(in string) string {
	const resetSequence = "\x1b[0m"
	return strings.Replace(in, resetSequence, "", -1)
}
