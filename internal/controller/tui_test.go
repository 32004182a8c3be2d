package controller

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_DisplayRenamesPrintsWhenNotATerminal(t *testing.T) {
	cmd, out, _ := newTestCmd()
	ui := NewTUI(cmd)

	require.NoError(t, ui.DisplayRenames(context.Background(), sampleResults()))

	output := out.String()
	assert.Contains(t, output, "planned renames")
	assert.Contains(t, output, "src/index.php")
	assert.Contains(t, output, "$user_id")
	assert.Contains(t, output, "$userId")
	assert.NotContains(t, output, "src/plain.php")
}

func TestTUI_DisplayRenamesTitleFollowsMode(t *testing.T) {
	cmd, out, _ := newTestCmd()
	ui := NewTUI(cmd)

	require.NoError(t, ui.Start(context.Background(), WithViewMode()))
	require.NoError(t, ui.DisplayRenames(context.Background(), sampleResults()))

	assert.Contains(t, out.String(), "saved report")
	assert.NotContains(t, out.String(), "planned renames")
}

func TestTUI_DisplayRenamesEmpty(t *testing.T) {
	cmd, out, _ := newTestCmd()
	ui := NewTUI(cmd)

	require.NoError(t, ui.DisplayRenames(context.Background(), nil))

	assert.Contains(t, out.String(), noRenamesMessage)
}

func TestTUI_DisplayDiffKeepsLines(t *testing.T) {
	cmd, out, _ := newTestCmd()
	ui := NewTUI(cmd)

	ui.DisplayDiff(context.Background(), sampleResults()[0])

	output := out.String()
	assert.Contains(t, output, "-<?php $user_id = 1;")
	assert.Contains(t, output, "+<?php $userId = 1;")
	assert.Equal(t, 5, strings.Count(output, "\n"))
}

func TestTUI_DisplaySummaryAndErrors(t *testing.T) {
	cmd, out, errOut := newTestCmd()
	ui := NewTUI(cmd)

	results := sampleResults()
	require.NoError(t, ui.DisplaySummary(context.Background(), results))
	ui.DisplayFileError(context.Background(), results[2])

	assert.Contains(t, out.String(), "3 file(s), 1 changed, 1 failed, 1 rename(s)")
	assert.Contains(t, errOut.String(), "src/broken.php: syntax errors in source")
}

func TestTUI_DisplaySourceIsInherited(t *testing.T) {
	cmd, out, _ := newTestCmd()
	ui := NewTUI(cmd)

	ui.DisplaySource(context.Background(), sampleResults()[0])

	assert.Equal(t, "<?php $userId = 1;\n", out.String())
}

func TestRenamesModel_Pagination(t *testing.T) {
	content := strings.Repeat("line\n", 30) + "last"

	small := newRenamesModel("title", content, 80, 10)
	assert.True(t, small.needsPagination())

	large := newRenamesModel("title", content, 80, 100)
	assert.False(t, large.needsPagination())
}

func TestRenamesModel_Update(t *testing.T) {
	model := newRenamesModel("title", strings.Repeat("line\n", 30)+"last", 80, 10)

	updated, cmd := model.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	assert.Nil(t, cmd)

	rm := updated.(renamesModel)
	assert.Equal(t, 100, rm.viewport.Width)
	assert.Equal(t, 20-reservedLines, rm.viewport.Height)

	updated, _ = rm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	rm = updated.(renamesModel)
	assert.True(t, rm.viewport.AtBottom())

	updated, _ = rm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	rm = updated.(renamesModel)
	assert.True(t, rm.viewport.AtTop())

	updated, cmd = rm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)

	rm = updated.(renamesModel)
	assert.True(t, rm.quitting)
	assert.Empty(t, rm.View())
}

func TestRenamesModel_View(t *testing.T) {
	model := newRenamesModel("title", "first\nsecond", 80, 20)

	view := model.View()

	assert.Contains(t, view, "title")
	assert.Contains(t, view, "first")
	assert.Contains(t, view, "q: quit")
}

func TestPagerHeight(t *testing.T) {
	assert.Equal(t, 1, pagerHeight(0))
	assert.Equal(t, 1, pagerHeight(reservedLines))
	assert.Equal(t, 14, pagerHeight(reservedLines+14))
}
