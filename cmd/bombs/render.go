package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bombs-cli/bombs/internal/mines"
)

var (
	flagStyle  = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("4"))
	bombStyle  = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("1")).Foreground(lipgloss.Color("0"))
	countStyle = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("3")).Foreground(lipgloss.Color("0"))
	blankStyle = lipgloss.NewStyle().Background(lipgloss.Color("7"))
)

func renderCell(v mines.CellView) string {
	switch {
	case v == mines.ViewFlagged:
		return flagStyle.Render("F")
	case v == mines.ViewHidden:
		return "."
	case v == mines.ViewBomb:
		return bombStyle.Render("B")
	case v == 0:
		return blankStyle.Render(" ")
	default:
		return countStyle.Render(v.String())
	}
}

func renderGrid(g *mines.Game) string {
	var b strings.Builder
	b.WriteString("   ")
	for j := range g.Cols() {
		fmt.Fprintf(&b, "%d ", j)
	}
	b.WriteByte('\n')
	for i := range g.Rows() {
		fmt.Fprintf(&b, "%d  ", i)
		for j := range g.Cols() {
			b.WriteString(renderCell(g.View(i, j)))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
