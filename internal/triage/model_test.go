package triage

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/containersec/convertctl/pkg/gitlab"
)

// An empty report is a valid pipeline outcome, so the browser must stay
// usable on zero rows: the details toggle is a no-op and View never indexes
// into the data.
func TestEmptyReport(t *testing.T) {
	m := New([]gitlab.Vulnerability{})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})

	assert.False(t, updated.(model).showDetails)
	require.NotPanics(t, func() { updated.View() })
}

func TestDetailsToggle(t *testing.T) {
	m := New([]gitlab.Vulnerability{
		{ID: "CVE-2019-12900", Severity: gitlab.SeverityCritical},
	})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})

	assert.True(t, updated.(model).showDetails)
	require.NotPanics(t, func() { updated.View() })
}
