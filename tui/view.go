package tui

import (
	"fmt"
	"strings"

	"github.com/anisan-cli/dvs/affordance"
	"github.com/anisan-cli/dvs/color"
	"github.com/anisan-cli/dvs/constant"
	"github.com/anisan-cli/dvs/icon"
	"github.com/anisan-cli/dvs/key"
	"github.com/anisan-cli/dvs/source"
	"github.com/anisan-cli/dvs/style"
	"github.com/anisan-cli/dvs/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (b *statefulBubble) View() string {
	switch b.state {
	case errorState:
		return b.viewError()
	default:
		return b.viewPlayer()
	}
}

func (b *statefulBubble) viewPlayer() string {
	lines := []string{
		style.Title(constant.Dvs) + " " + style.Bold(b.title),
		"",
	}

	lines = append(lines, b.viewStatus()...)
	lines = append(lines, "", b.viewControls())

	if b.state == menuState {
		lines = append(lines, "", b.viewMenu())
	}

	if viper.GetBool(key.TUIShowURLs) {
		lines = append(lines, "")
		lines = append(lines, lo.Map(b.engine.Current(), func(d source.Descriptor, _ int) string {
			return style.Faint(d.String())
		})...)
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewStatus() []string {
	if !b.engine.Started() {
		var lines []string
		if b.poster != "" {
			lines = append(lines, b.wrap(style.Italic(b.poster)), "")
		}
		return append(lines, b.spinnerC.View()+" "+style.Faint("press space to play"))
	}

	status := icon.Get(icon.Playing)
	if b.paused {
		status = icon.Get(icon.Paused)
	}

	return []string{
		fmt.Sprintf("%s %s / %s", status, util.FormatDuration(b.position), util.FormatDuration(b.duration)),
	}
}

func (b *statefulBubble) viewControls() string {
	buttons := b.bar.ofKind(affordance.Button, affordance.MenuButton)
	if len(buttons) == 0 {
		return style.Faint("no described video available")
	}

	rendered := lo.Map(buttons, func(w *widget, _ int) string {
		label := w.label
		switch {
		case w.has(constant.ClassDescribed):
			label = style.Described.Render(strings.TrimSpace(icon.Get(icon.Described) + " " + label))
		case w.has(constant.ClassNotDescribed):
			label = style.NotDescribed.Render(label)
		}

		if w.kind == affordance.MenuButton {
			label += " ▾"
		}

		if b.state == menuState {
			return style.ButtonFocused.Render(label)
		}
		return style.Button.Render(label)
	})

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (b *statefulBubble) viewMenu() string {
	var lines []string

	for _, w := range b.bar.ofKind(affordance.MenuTitle) {
		lines = append(lines, style.MenuTitle.Render(w.label))
	}

	for i, w := range b.bar.ofKind(affordance.MenuItem) {
		label := w.label
		if w.selected {
			label = strings.TrimSpace(icon.Get(icon.Selected) + " " + label)
		}

		if i == b.cursor {
			lines = append(lines, style.MenuItemActive.Render(label))
		} else {
			lines = append(lines, style.MenuItem.Render(label))
		}
	}

	return strings.Join(lines, "\n")
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(color.Red).Bold(true)
	errorMsg := b.wrap(errorStyle.Render(b.lastError.Error()))
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) wrap(s string) string {
	if b.width <= 0 {
		return s
	}
	return wrap.String(s, b.width)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
