package review

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"tableflip.dev/weeklog/pkg/calendar"
	"tableflip.dev/weeklog/pkg/glyph"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 2)
	promptStyle = lipgloss.NewStyle().Bold(true)

	// Dark terminals get a brighter accent than light ones.
	accentStyle = func() lipgloss.Style {
		if termenv.HasDarkBackground() {
			return lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color("91"))
	}()
)

// scaleHint renders the 1..10 scale with a red to green ramp.
func scaleHint() string {
	lo, _ := colorful.Hex("#d70000")
	hi, _ := colorful.Hex("#00af00")
	parts := make([]string, 0, 10)
	for i := 1; i <= 10; i++ {
		c := lo.BlendLab(hi, float64(i-1)/9.0)
		s := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
		parts = append(parts, s.Render(fmt.Sprint(i)))
	}
	return strings.Join(parts, " ")
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Weekly review"))
	b.WriteString("\n\n")

	switch m.phase {
	case phaseDone:
		b.WriteString(fmt.Sprintf("All caught up. %d done, %d not done, %d skipped.\n\n",
			m.confirmed, m.rejected, m.skipped))
		b.WriteString(faintStyle.Render("press q to exit"))

	default:
		k, a, ok := m.current()
		if !ok {
			b.WriteString("loading...")
			break
		}

		width := m.width
		if width <= 0 {
			width = 80
		}

		when := fmt.Sprintf("%s, %s (week %+d)", calendar.DayName(k.Day), k.SlotLabel(), k.Week)
		g := glyph.ForStatus(a.Status)
		card := fmt.Sprintf("%s\n\n%s %s", faintStyle.Render(when), g.Symbol,
			wordwrap.String(a.Text, width-12))
		b.WriteString(panelStyle.Render(card))
		b.WriteString("\n\n")

		switch m.phase {
		case phaseAsking:
			b.WriteString(promptStyle.Render("Did this happen?"))
			b.WriteString(faintStyle.Render("  y yes / n no / s skip / q quit"))
		case phasePleasure:
			b.WriteString(promptStyle.Render("Pleasure "))
			b.WriteString(scaleHint())
			b.WriteString("  " + m.input.View())
		case phaseMastery:
			b.WriteString(promptStyle.Render("Mastery  "))
			b.WriteString(scaleHint())
			b.WriteString("  " + m.input.View())
		case phaseReplacement:
			b.WriteString(promptStyle.Render("What did you do instead? "))
			b.WriteString(faintStyle.Render("(enter to skip) "))
			b.WriteString(m.input.View())
		}

		b.WriteString("\n\n")
		b.WriteString(accentStyle.Render(m.progress()))
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(faintStyle.Render(m.status))
	}

	return b.String()
}
