package views

import (
	stderrors "errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/vanitygit/vanitygit/errors"
	"github.com/vanitygit/vanitygit/repository"
	"github.com/vanitygit/vanitygit/search"
)

// ResultView shows the outcome of a search: the amend command on
// success, or why the search ended without one.
type ResultView struct {
	root       *tview.Flex
	resultText *tview.TextView
	onRestart  func()
	onQuit     func()
}

func NewResultView(onRestart, onQuit func()) *ResultView {
	r := &ResultView{
		onRestart: onRestart,
		onQuit:    onQuit,
	}
	r.setup()
	return r
}

func (r *ResultView) setup() {
	title := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetText("[::b]Result[-:-:-]")
	title.SetBackgroundColor(tcell.ColorDarkBlue)

	r.resultText = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetWrap(true)

	buttons := tview.NewForm()
	buttons.SetButtonsAlign(tview.AlignCenter)
	buttons.AddButton("New Search", func() { r.onRestart() })
	buttons.AddButton("Quit", func() { r.onQuit() })

	content := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(r.resultText, 8, 0, false).
		AddItem(buttons, 3, 0, true).
		AddItem(nil, 0, 1, false)

	centered := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(content, 70, 0, true).
		AddItem(nil, 0, 1, false)

	r.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(title, 1, 0, false).
		AddItem(centered, 0, 1, true)
}

// Show renders a finished search.
func (r *ResultView) Show(result *search.Result, err error) {
	switch {
	case stderrors.Is(err, errors.ErrSearchExhausted):
		r.resultText.SetText("[red]No matching hash in the search window.[-]\n\n" +
			"Retry with a larger time budget or a shorter prefix.")
	case err != nil:
		r.resultText.SetText(fmt.Sprintf("[red]Search stopped:[-] %v", err))
	case result.AlreadyMatches:
		r.resultText.SetText(fmt.Sprintf(
			"[green]The commit already matches.[-]\n\nHash: [yellow]%s[-]\nNothing to do.",
			result.Hash))
	default:
		r.resultText.SetText(fmt.Sprintf(
			"[green]Found[-] [yellow]%s[-]\nafter %d candidates.\n\nRun:\n[::b]%s[-:-:-]",
			result.Hash,
			result.Examined,
			repository.AmendCommand(result.CommitterDate, result.AuthorDate)))
	}
}

func (r *ResultView) Root() tview.Primitive {
	return r.root
}
