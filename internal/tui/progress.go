package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// progressReporter selects and drives one of the two boot-progress
// presentations. Only one is visible at a time; switching the widget swaps
// the presentation immediately without preserving animation phase.
type progressReporter struct {
	bar  progress.Model
	dots spinner.Model
}

func newProgressReporter() progressReporter {
	bar := progress.New(
		progress.WithSolidFill("#FFFFFF"),
		progress.WithoutPercentage(),
		progress.WithWidth(40),
	)

	dots := spinner.New()
	dots.Spinner = spinner.Dot
	dots.Style = lipgloss.NewStyle().Foreground(TextColor)

	return progressReporter{bar: bar, dots: dots}
}

// SetWidth resizes the determinate bar to the available width.
func (r *progressReporter) SetWidth(width int) {
	barWidth := width - 12
	if barWidth < 20 {
		barWidth = 20
	}
	if barWidth > 60 {
		barWidth = 60
	}
	r.bar.Width = barWidth
}

// resetDots drops the animation phase. Called when the host swaps the
// active widget.
func (r *progressReporter) resetDots() {
	style := r.dots.Style
	r.dots = spinner.New()
	r.dots.Spinner = spinner.Dot
	r.dots.Style = style
}

// View renders the active presentation for the given boot state.
func (r progressReporter) View(boot BootState) string {
	switch boot.Widget {
	case WidgetMovingDots:
		if boot.StartupFinished {
			// Settled visual state once startup completes
			return SplashLabelStyle.Render("● Ready")
		}
		return r.dots.View() + SplashLabelStyle.Render(" Starting up")

	default: // WidgetProgressBar
		p := clampProgress(boot.Progress)
		percent := fmt.Sprintf(" %3.0f%%", p*100)
		return r.bar.ViewAs(p) + SubtitleStyle.Render(percent)
	}
}
