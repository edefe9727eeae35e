package terminal

import (
	"github.com/bnema/digital-prison-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	badge     lipgloss.Style
	panel     lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	empty     lipgloss.Style
	agent     lipgloss.Style
	local     lipgloss.Style
	user      lipgloss.Style
	narrative lipgloss.Style
	image     lipgloss.Style
	success   lipgloss.Style
	warning   lipgloss.Style
	err       lipgloss.Style
	audioOn   lipgloss.Style
	audioOff  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("48")),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		badge:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).Background(lipgloss.Color("48")).Padding(0, 1),
		panel:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("48")).Padding(0, 1),
		label:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		value:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		empty:     lipgloss.NewStyle().Faint(true),
		agent:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		local:     lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("244")),
		user:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		narrative: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		image:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("177")),
		success:   lipgloss.NewStyle().Foreground(lipgloss.Color("48")),
		warning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		err:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		audioOn:   lipgloss.NewStyle().Foreground(lipgloss.Color("48")),
		audioOff:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func (s styles) forType(entryType domain.EntryType) lipgloss.Style {
	switch entryType {
	case domain.EntryTypeUserInput:
		return s.user
	case domain.EntryTypeImage:
		return s.image
	case domain.EntryTypeSuccess:
		return s.success
	case domain.EntryTypeWarning:
		return s.warning
	case domain.EntryTypeError:
		return s.err
	default:
		return s.narrative
	}
}
