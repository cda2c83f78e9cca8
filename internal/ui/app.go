// Package ui implements the interactive full-screen mode: a setup
// form, a live progress view and a result view. The search runs on a
// background goroutine; every UI mutation goes through
// QueueUpdateDraw, so the event loop stays responsive during long
// searches.
package ui

import (
	"context"
	"fmt"

	"github.com/rivo/tview"

	"github.com/vanitygit/vanitygit/internal/ui/views"
	"github.com/vanitygit/vanitygit/repository"
	"github.com/vanitygit/vanitygit/search"
)

// App wires the views together over one repository.
type App struct {
	tview *tview.Application
	pages *tview.Pages
	repo  *repository.Repository

	setupView    *views.SetupView
	progressView *views.ProgressView
	resultView   *views.ResultView

	cancelSearch context.CancelFunc
}

func NewApp(repo *repository.Repository) *App {
	app := &App{
		tview: tview.NewApplication(),
		pages: tview.NewPages(),
		repo:  repo,
	}
	app.setupViews()
	return app
}

func (a *App) setupViews() {
	a.setupView = views.NewSetupView(a.onStart, a.Stop)
	a.progressView = views.NewProgressView(a.onCancel)
	a.resultView = views.NewResultView(a.onRestart, a.Stop)

	a.pages.AddPage("setup", a.setupView.Root(), true, true)
	a.pages.AddPage("progress", a.progressView.Root(), true, false)
	a.pages.AddPage("result", a.resultView.Root(), true, false)

	a.tview.SetRoot(a.pages, true)
}

// Run starts the event loop and blocks until the app exits.
func (a *App) Run() error {
	a.setupView.SetProposedPrefix(a.repo.ProposedPrefix("HEAD^", 4))
	return a.tview.Run()
}

func (a *App) Stop() {
	a.onCancel()
	a.tview.Stop()
}

func (a *App) onStart(params views.SearchParams) {
	raw, err := a.repo.RawCommit(params.Revision)
	if err != nil {
		a.setupView.ShowError(err.Error())
		return
	}

	a.progressView.SetStatus(fmt.Sprintf(
		"Prefix [yellow]%s[-], %d candidates, %.2f%% chance",
		params.Prefix,
		search.Possibilities(params.MaxMinutes),
		100*search.Probability(params.Prefix, params.MaxMinutes)))
	a.progressView.SetProgress(0)
	a.pages.SwitchToPage("progress")

	ctx, cancel := context.WithCancel(context.Background())
	a.cancelSearch = cancel

	go func() {
		defer cancel()

		result, err := search.Run(ctx, raw, search.Options{
			Prefix:     params.Prefix,
			MaxMinutes: params.MaxMinutes,
			Progress: func(percent int) {
				a.tview.QueueUpdateDraw(func() {
					a.progressView.SetProgress(percent)
				})
			},
		})

		a.tview.QueueUpdateDraw(func() {
			a.resultView.Show(result, err)
			a.pages.SwitchToPage("result")
		})
	}()
}

func (a *App) onCancel() {
	if a.cancelSearch != nil {
		a.cancelSearch()
	}
}

func (a *App) onRestart() {
	a.pages.SwitchToPage("setup")
}
