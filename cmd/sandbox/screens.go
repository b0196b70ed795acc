package main

import (
	"fmt"

	"github.com/veilui/veil/engine/core"
	"github.com/veilui/veil/engine/gfx"
	"github.com/veilui/veil/engine/input"
	"github.com/veilui/veil/engine/ui"
)

type mainMenu struct {
	clicks  int
	counter *ui.ListItem
}

func (m *mainMenu) CreateUI(g *core.Gui) ui.Element {
	frame := ui.NewOverlayFrame("Veil Sandbox", "push, replace and pop screens")
	list := ui.NewList()

	about := ui.NewListItem("About")
	about.SetClickListener(func() bool {
		g.Overlay().PushGui(&aboutScreen{})
		return true
	})
	list.AddItem(about)

	m.counter = ui.NewListItem("Clicks")
	m.counter.SetValue("0")
	m.counter.SetClickListener(func() bool {
		m.clicks++
		m.counter.SetValue(fmt.Sprintf("%d", m.clicks))
		return true
	})
	list.AddItem(m.counter)

	swap := ui.NewListItem("Swap to About")
	swap.SetClickListener(func() bool {
		g.Overlay().ChangeGui(&aboutScreen{})
		return true
	})
	list.AddItem(swap)

	quit := ui.NewListItem("Quit")
	quit.SetClickListener(func() bool {
		g.Overlay().Close()
		return true
	})
	list.AddItem(quit)

	frame.SetContent(list)
	return frame
}

func (m *mainMenu) Update(g *core.Gui) {}

func (m *mainMenu) HandleInput(g *core.Gui, st input.State) bool {
	if st.Down.Has(input.KeyPlus) {
		g.Overlay().Close()
		return true
	}
	return false
}

type aboutScreen struct{}

func (a *aboutScreen) CreateUI(g *core.Gui) ui.Element {
	frame := ui.NewOverlayFrame("About", "B goes back")
	list := ui.NewList()

	// Palette strip, one bar per 4-bit red step.
	list.AddItem(ui.NewCustomDrawer(80, func(r ui.Renderer, x, y, w, h int32) {
		barW := w / 16
		for i := int32(0); i < 16; i++ {
			r.DrawRect(x+i*barW, y+10, barW-2, h-20, gfx.RGBA4444(uint8(i), 0x3, 0xA, 0xF))
		}
	}))

	back := ui.NewListItem("Back")
	back.SetClickListener(func() bool {
		g.Overlay().PopGui()
		return true
	})
	list.AddItem(back)

	frame.SetContent(list)
	return frame
}

func (a *aboutScreen) Update(g *core.Gui) {}

func (a *aboutScreen) HandleInput(g *core.Gui, st input.State) bool { return false }
