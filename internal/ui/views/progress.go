package views

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ProgressView displays search progress.
type ProgressView struct {
	root        *tview.Flex
	progressBar *tview.TextView
	statusText  *tview.TextView
	onCancel    func()
}

func NewProgressView(onCancel func()) *ProgressView {
	p := &ProgressView{onCancel: onCancel}
	p.setup()
	return p
}

func (p *ProgressView) setup() {
	title := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetText("[::b]Searching[-:-:-]")
	title.SetBackgroundColor(tcell.ColorDarkBlue)

	p.statusText = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)

	p.progressBar = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)

	cancelForm := tview.NewForm()
	cancelForm.SetButtonsAlign(tview.AlignCenter)
	cancelForm.AddButton("Cancel", func() { p.onCancel() })

	progressContainer := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(p.statusText, 2, 0, false).
		AddItem(nil, 1, 0, false).
		AddItem(p.progressBar, 3, 0, false).
		AddItem(cancelForm, 3, 0, true).
		AddItem(nil, 0, 1, false)

	centered := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(progressContainer, 60, 0, true).
		AddItem(nil, 0, 1, false)

	p.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(title, 1, 0, false).
		AddItem(centered, 0, 1, true)

	p.SetProgress(0)
}

// SetProgress updates the bar with a percentage in [0, 100].
func (p *ProgressView) SetProgress(percent int) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	barWidth := 50
	filled := percent * barWidth / 100

	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	p.progressBar.SetText(fmt.Sprintf("[green]%s[-]\n%d%%", bar, percent))
}

// SetStatus updates the status message.
func (p *ProgressView) SetStatus(status string) {
	p.statusText.SetText("[white]" + status + "[-]")
}

func (p *ProgressView) Root() tview.Primitive {
	return p.root
}
