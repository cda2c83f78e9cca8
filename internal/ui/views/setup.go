package views

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/vanitygit/vanitygit/hash"
)

// SearchParams carries the validated form values into a search.
type SearchParams struct {
	Prefix     string
	MaxMinutes int
	Revision   string
}

// SetupView collects the prefix, time budget and revision to search.
type SetupView struct {
	root          *tview.Flex
	prefixInput   *tview.InputField
	minutesInput  *tview.InputField
	revisionInput *tview.InputField
	errorText     *tview.TextView
	onStart       func(SearchParams)
	onQuit        func()
}

func NewSetupView(onStart func(SearchParams), onQuit func()) *SetupView {
	s := &SetupView{
		onStart: onStart,
		onQuit:  onQuit,
	}
	s.setup()
	return s
}

func (s *SetupView) setup() {
	title := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetText("[::b]vanitygit - Vanity Commit Hashes[-:-:-]")
	title.SetBackgroundColor(tcell.ColorDarkBlue)

	s.prefixInput = tview.NewInputField().
		SetLabel("Prefix: ").
		SetFieldWidth(16)

	s.minutesInput = tview.NewInputField().
		SetLabel("Minutes: ").
		SetText("300").
		SetFieldWidth(8)

	s.revisionInput = tview.NewInputField().
		SetLabel("Revision: ").
		SetText("HEAD").
		SetFieldWidth(16)

	form := tview.NewForm()
	form.SetBorder(true).SetTitle(" Search ")
	form.AddFormItem(s.prefixInput)
	form.AddFormItem(s.minutesInput)
	form.AddFormItem(s.revisionInput)
	form.SetButtonsAlign(tview.AlignCenter)
	form.AddButton("Start", s.validate)
	form.AddButton("Quit", func() { s.onQuit() })

	s.errorText = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)

	help := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetText("[yellow]Tab[-] Next field  [yellow]Enter[-] Start  [yellow]Ctrl-C[-] Quit")
	help.SetBackgroundColor(tcell.ColorDarkBlue)

	content := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(form, 11, 0, true).
		AddItem(s.errorText, 2, 0, false).
		AddItem(nil, 0, 1, false)

	centered := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(content, 50, 0, true).
		AddItem(nil, 0, 1, false)

	s.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(title, 1, 0, false).
		AddItem(centered, 0, 1, true).
		AddItem(help, 1, 0, false)
}

func (s *SetupView) validate() {
	params, ok := s.Params()
	if !ok {
		return
	}
	s.errorText.SetText("")
	s.onStart(params)
}

// Params validates the form and returns the search parameters.
func (s *SetupView) Params() (SearchParams, bool) {
	prefix := s.prefixInput.GetText()
	if !hash.ValidatePrefix(prefix) {
		s.ShowError("Prefix may only contain lowercase hex digits")
		return SearchParams{}, false
	}

	minutes, err := strconv.Atoi(s.minutesInput.GetText())
	if err != nil || minutes < 0 {
		s.ShowError("Minutes must be a non-negative number")
		return SearchParams{}, false
	}

	revision := s.revisionInput.GetText()
	if revision == "" {
		revision = "HEAD"
	}

	return SearchParams{
		Prefix:     prefix,
		MaxMinutes: minutes,
		Revision:   revision,
	}, true
}

// SetProposedPrefix fills the prefix field when it is still empty.
func (s *SetupView) SetProposedPrefix(prefix string) {
	if s.prefixInput.GetText() == "" {
		s.prefixInput.SetText(prefix)
	}
}

func (s *SetupView) ShowError(msg string) {
	s.errorText.SetText("[red]" + msg + "[-]")
}

func (s *SetupView) Root() tview.Primitive {
	return s.root
}
