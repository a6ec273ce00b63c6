package ui

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/cinedesk/v2/internal/types"
)

type newsTab struct {
	deps *Deps
	win  fyne.Window

	items []types.NewsItem
	gen   int

	list   *widget.List
	status *widget.Label
}

// newNewsTab builds the platform news page.
func newNewsTab(deps *Deps, win fyne.Window) fyne.CanvasObject {
	t := &newsTab{deps: deps, win: win}

	t.status = widget.NewLabel("Loading news...")
	t.list = widget.NewList(
		func() int { return len(t.items) },
		func() fyne.CanvasObject {
			title := widget.NewLabel("title")
			title.TextStyle = fyne.TextStyle{Bold: true}
			return container.NewVBox(title, widget.NewLabel("date"))
		},
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			if i >= len(t.items) {
				return
			}
			item := t.items[i]
			box := obj.(*fyne.Container)
			box.Objects[0].(*widget.Label).SetText(item.Title)
			box.Objects[1].(*widget.Label).SetText(item.PublishedAt)
		},
	)
	t.list.OnSelected = func(i widget.ListItemID) {
		t.list.UnselectAll()
		if i < len(t.items) {
			t.showDetail(t.items[i].ID)
		}
	}

	refreshButton := widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), t.reload)
	topBar := container.NewBorder(nil, nil, t.status, refreshButton)

	t.reload()
	return container.NewBorder(topBar, nil, nil, nil, t.list)
}

func (t *newsTab) reload() {
	t.gen++
	gen := t.gen
	t.status.SetText("Loading news...")

	go func() {
		items, err := t.deps.News.List(context.Background())
		fyne.Do(func() {
			if gen != t.gen {
				return
			}
			if err != nil {
				log.Printf("Error loading news: %v", err)
				t.status.SetText("Failed to load news: " + err.Error())
				return
			}
			t.items = items
			t.status.SetText("")
			t.list.Refresh()
		})
	}()
}

func (t *newsTab) showDetail(id int) {
	go func() {
		item, err := t.deps.News.Get(context.Background(), id)
		fyne.Do(func() {
			if err != nil {
				log.Printf("Error loading news item %d: %v", id, err)
				dialog.ShowError(err, t.win)
				return
			}
			body := widget.NewLabel(item.Body)
			body.Wrapping = fyne.TextWrapWord
			scroll := container.NewVScroll(body)
			scroll.SetMinSize(fyne.NewSize(420, 280))
			dialog.ShowCustom(item.Title, "Close", scroll, t.win)
		})
	}()
}
