package tui

import (
	"fmt"

	"github.com/cbodonnell/penaltykick/pkg/game/constants"
	"github.com/cbodonnell/penaltykick/pkg/game/types"
	"github.com/gdamore/tcell/v2"
)

// Cell is a single terminal cell. A zero Rune is left blank.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Frame is a terminal sized picture of one snapshot. Row 0 holds the
// scoreboard, the last row holds the message and the rows between map
// the field with y pointing up.
type Frame struct {
	Cols  int
	Rows  int
	Cells [][]Cell
}

const (
	MinCols = 20
	MinRows = 8
)

var (
	styleDefault   = tcell.StyleDefault
	styleGrass     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleGoal      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleTarget    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleBall      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleKeeper    = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleCelebrate = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
)

func NewFrame(cols, rows int) *Frame {
	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
	}
	return &Frame{Cols: cols, Rows: rows, Cells: cells}
}

// Set writes r at (col, row), ignoring positions outside the frame.
func (f *Frame) Set(col, row int, r rune, style tcell.Style) {
	if row < 0 || row >= f.Rows || col < 0 || col >= f.Cols {
		return
	}
	f.Cells[row][col] = Cell{Rune: r, Style: style}
}

func (f *Frame) At(col, row int) Cell {
	if row < 0 || row >= f.Rows || col < 0 || col >= f.Cols {
		return Cell{}
	}
	return f.Cells[row][col]
}

// Text writes s starting at col on row.
func (f *Frame) Text(col, row int, s string, style tcell.Style) {
	for _, r := range s {
		f.Set(col, row, r, style)
		col++
	}
}

// CenteredText writes s centred on row.
func (f *Frame) CenteredText(row int, s string, style tcell.Style) {
	f.Text((f.Cols-len([]rune(s)))/2, row, s, style)
}

func (f *Frame) fieldRows() int {
	return f.Rows - 2
}

// Col maps a field x to a column.
func (f *Frame) Col(x float64) int {
	col := int(x / constants.FieldWidth * float64(f.Cols))
	return clampInt(col, 0, f.Cols-1)
}

// Row maps a field y to a row. y = 0 is the bottom row of the field area.
func (f *Frame) Row(y float64) int {
	n := f.fieldRows()
	fromBottom := int(y / constants.FieldHeight * float64(n))
	return 1 + clampInt(n-1-fromBottom, 0, n-1)
}

// span fills the columns covered by [x, x+w) on row.
func (f *Frame) span(x, w float64, row int, r rune, style tcell.Style) {
	first := f.Col(x)
	last := f.Col(x + w - 1e-9)
	for col := first; col <= last; col++ {
		f.Set(col, row, r, style)
	}
}

// Render draws s into a new frame of cols by rows cells.
func Render(s types.Snapshot, cols, rows int, celebrating bool) *Frame {
	f := NewFrame(maxInt(cols, MinCols), maxInt(rows, MinRows))

	f.Text(1, 0, scoreText(s), styleDefault)

	goalRow := f.Row(constants.GoalLineY)
	goalStyle := styleGoal
	if celebrating {
		goalStyle = styleCelebrate
	}
	f.span(constants.GoalOffset, constants.GoalWidth, goalRow-1, '▁', goalStyle)
	f.Set(f.Col(constants.GoalOffset)-1, goalRow-1, '┃', goalStyle)
	f.Set(f.Col(constants.GoalOffset+constants.GoalWidth), goalRow-1, '┃', goalStyle)
	f.Set(f.Col(constants.GoalOffset)-1, goalRow, '┃', goalStyle)
	f.Set(f.Col(constants.GoalOffset+constants.GoalWidth), goalRow, '┃', goalStyle)

	f.Set(f.Col(constants.BallStartX+constants.BallWidth/2), f.Row(constants.SpotY), '·', styleGrass)

	f.span(s.GoalkeeperAbsoluteX(), constants.KeeperWidth, goalRow, '█', styleKeeper)
	f.span(s.TargetX, constants.TargetWidth, f.Row(0), '▲', styleTarget)
	f.Set(f.Col(s.BallX+constants.BallWidth/2), f.Row(s.BallY), '●', styleBall)

	f.CenteredText(f.Rows-1, s.Message(), messageStyle(s))
	return f
}

func messageStyle(s types.Snapshot) tcell.Style {
	if !s.Resolved {
		return styleDefault
	}
	switch s.LastOutcome {
	case types.OutcomeGoal:
		return styleDefault.Foreground(tcell.ColorGreen).Bold(true)
	case types.OutcomeSaved:
		return styleDefault.Foreground(tcell.ColorOrange).Bold(true)
	case types.OutcomeMissed:
		return styleDefault.Foreground(tcell.ColorRed).Bold(true)
	}
	return styleDefault
}

func scoreText(s types.Snapshot) string {
	return fmt.Sprintf("GOALS: %d  MISSES: %d", s.Goals, s.Misses)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
