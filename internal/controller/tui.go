package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "camelize.dev/pkg/camelize/internal/model"
)

// reservedLines is the space taken by the pager header and footer.
const reservedLines = 6

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	pathStyle    = lipgloss.NewStyle().Bold(true)
	oldNameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	newNameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// TUI implements UI with styled output and a Bubble Tea pager for long
// rename listings.
type TUI struct {
	*SimpleUI

	cmd *cobra.Command
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd), cmd: cmd}
}

// DisplayRenames shows planned renames, paging them when they do not fit
// on screen.
func (p *TUI) DisplayRenames(ctx context.Context, results []m.FileResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	output := p.cmd.OutOrStdout()
	title := titleStyle.Render("camelize: " + strings.ToLower(renamesHeading(p.mode)))

	if !hasRenames(results) {
		_, err := fmt.Fprintf(output, "%s\n\n  %s\n", title, faintStyle.Render(noRenamesMessage))
		return err
	}

	content := renderRenameLines(results)
	width, height, ok := terminalSize(output)

	model := newRenamesModel(title, content, width, height)
	if !ok || !model.needsPagination() {
		_, err := fmt.Fprintf(output, "%s\n\n%s\n", title, content)
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayDiff prints a colored unified diff.
func (p *TUI) DisplayDiff(ctx context.Context, result m.FileResult) {
	if ctx.Err() != nil || result.Diff == "" {
		return
	}

	var b strings.Builder

	for _, line := range strings.SplitAfter(result.Diff, "\n") {
		if line == "" {
			continue
		}

		text := strings.TrimSuffix(line, "\n")

		switch {
		case strings.HasPrefix(text, "+++"), strings.HasPrefix(text, "---"):
			b.WriteString(pathStyle.Render(text))
		case strings.HasPrefix(text, "@@"):
			b.WriteString(hunkStyle.Render(text))
		case strings.HasPrefix(text, "+"):
			b.WriteString(newNameStyle.Render(text))
		case strings.HasPrefix(text, "-"):
			b.WriteString(oldNameStyle.Render(text))
		default:
			b.WriteString(text)
		}

		b.WriteString("\n")
	}

	_, _ = fmt.Fprint(p.cmd.OutOrStdout(), b.String())
}

// DisplayFileError reports a file that could not be processed.
func (p *TUI) DisplayFileError(ctx context.Context, result m.FileResult) {
	if ctx.Err() != nil || result.Err == nil {
		return
	}

	_, _ = fmt.Fprintf(p.cmd.ErrOrStderr(), "%s %s: %v\n", errorStyle.Render("error:"), result.Path(), result.Err)
}

// DisplaySummary prints the summary table followed by a styled total line.
func (p *TUI) DisplaySummary(ctx context.Context, results []m.FileResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	totals := totalsOf(results)
	line := fmt.Sprintf("%d file(s), %d changed, %d failed, %d rename(s)",
		totals.files, totals.changed, totals.failed, totals.renames)

	style := newNameStyle
	if totals.failed > 0 {
		style = errorStyle
	}

	_, err := fmt.Fprintf(p.cmd.OutOrStdout(), "\n%s\n  %s\n", renderSummaryTable(results), style.Render(line))

	return err
}

func renderRenameLines(results []m.FileResult) string {
	var b strings.Builder

	for _, result := range results {
		if len(result.Renames) == 0 {
			continue
		}

		fmt.Fprintf(&b, "  %s %s\n", pathStyle.Render(string(result.Path())),
			faintStyle.Render(fmt.Sprintf("(%d)", len(result.Renames))))

		for _, rename := range result.Renames {
			fmt.Fprintf(&b, "    %s → %s %s\n",
				oldNameStyle.Render("$"+rename.Old),
				newNameStyle.Render("$"+rename.New),
				faintStyle.Render(fmt.Sprintf("×%d", rename.Occurrences)))
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func terminalSize(w io.Writer) (int, int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, 0, false
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, false
	}

	return width, height, true
}

// renamesModel is a scrollable pager over the rendered rename lines.
type renamesModel struct {
	title    string
	content  string
	viewport viewport.Model
	quitting bool
}

func newRenamesModel(title, content string, width, height int) renamesModel {
	vp := viewport.New(width, pagerHeight(height))
	vp.SetContent(content)

	return renamesModel{
		title:    title,
		content:  content,
		viewport: vp,
	}
}

func pagerHeight(height int) int {
	if height-reservedLines < 1 {
		return 1
	}

	return height - reservedLines
}

// needsPagination reports whether the content is taller than the pager.
func (rm renamesModel) needsPagination() bool {
	return strings.Count(rm.content, "\n")+1 > rm.viewport.Height
}

func (rm renamesModel) Init() tea.Cmd {
	return nil
}

func (rm renamesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.viewport.Width = msg.Width
		rm.viewport.Height = pagerHeight(msg.Height)

		return rm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			rm.quitting = true
			return rm, tea.Quit
		case "g", "home":
			rm.viewport.GotoTop()
			return rm, nil
		case "G", "end":
			rm.viewport.GotoBottom()
			return rm, nil
		}
	}

	var cmd tea.Cmd

	rm.viewport, cmd = rm.viewport.Update(msg)

	return rm, cmd
}

func (rm renamesModel) View() string {
	if rm.quitting {
		return ""
	}

	footer := faintStyle.Render(fmt.Sprintf("  %3.f%% | ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit",
		rm.viewport.ScrollPercent()*100))

	return fmt.Sprintf("%s\n\n%s\n\n%s\n", rm.title, rm.viewport.View(), footer)
}
