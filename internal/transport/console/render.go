package console

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iamasit07/4-in-a-row/console/internal/config"
	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

var playerColors = map[domain.PlayerID]lipgloss.Color{
	domain.Player1: lipgloss.Color("#e53935"),
	domain.Player2: lipgloss.Color("#FFC107"),
}

// Renderer draws boards the way the console game always has: top row first,
// two characters per cell, column legend underneath.
type Renderer struct {
	symbols map[domain.PlayerID]string
	styles  map[domain.PlayerID]lipgloss.Style
}

// NewRenderer colors the player symbols only when color is set and w turns
// out to be a terminal that supports it.
func NewRenderer(w io.Writer, players config.PlayersConfig, color bool) *Renderer {
	re := lipgloss.NewRenderer(w)

	r := &Renderer{
		symbols: map[domain.PlayerID]string{
			domain.Player1: players.Player1.Symbol,
			domain.Player2: players.Player2.Symbol,
		},
		styles: make(map[domain.PlayerID]lipgloss.Style, 2),
	}
	for _, p := range []domain.PlayerID{domain.Player1, domain.Player2} {
		style := re.NewStyle()
		if color {
			style = style.Foreground(playerColors[p])
		}
		r.styles[p] = style
	}
	return r
}

// Symbol returns the styled symbol for a player, a blank for Empty.
func (r *Renderer) Symbol(p domain.PlayerID) string {
	sym, ok := r.symbols[p]
	if !ok {
		return " "
	}
	return r.styles[p].Render(sym)
}

func (r *Renderer) Board(b domain.Board) string {
	var sb strings.Builder
	for row := 0; row < domain.Rows; row++ {
		for col := 0; col < domain.Columns; col++ {
			sb.WriteString(r.Symbol(b[row][col]))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(Legend())
	sb.WriteByte('\n')
	return sb.String()
}

// Legend is "1 2 3 4 5 6 7" for the standard board.
func Legend() string {
	labels := make([]string, domain.Columns)
	for i := range labels {
		labels[i] = strconv.Itoa(i + 1)
	}
	return strings.Join(labels, " ")
}
