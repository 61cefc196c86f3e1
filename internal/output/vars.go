package output

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))             // green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))             // red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))            // yellow
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))            // blue
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))            // cyan
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))           // grey
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")) // purple
)

var StyleSymbols = map[string]string{
	"pass":    "✓",
	"fail":    "✗",
	"warning": "!",
	"pending": "◉",
	"arrow":   "→",
	"bullet":  "•",
}

// Styling is decided per stream: progress goes to stdout, errors to
// stderr, and either may be redirected on its own.
var (
	stdoutStyled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	stderrStyled = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
)

func render(style lipgloss.Style, text string, styled bool) string {
	if !styled {
		return text
	}
	return style.Render(text)
}

func PrintSuccess(text string) {
	fmt.Println(render(successStyle, text, stdoutStyled))
}
func PrintError(text string) {
	fmt.Fprintln(os.Stderr, render(errorStyle, text, stderrStyled))
}
func PrintWarning(text string) {
	fmt.Println(render(warningStyle, text, stdoutStyled))
}
func PrintPending(text string) {
	fmt.Println(render(pendingStyle, text, stdoutStyled))
}
func PrintInfo(text string) {
	fmt.Println(render(infoStyle, text, stdoutStyled))
}
func PrintDetail(text string) {
	fmt.Println(render(detailStyle, text, stdoutStyled))
}
func PrintHeader(text string) {
	fmt.Println(render(headerStyle, text, stdoutStyled))
}
