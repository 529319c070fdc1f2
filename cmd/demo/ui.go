package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/garaekz/agentfx/action"
	"github.com/garaekz/agentfx/agent"
	"github.com/garaekz/agentfx/color"
	"github.com/garaekz/agentfx/control"
	"github.com/garaekz/agentfx/gamefx"
	"github.com/garaekz/agentfx/iosys"
	"github.com/garaekz/agentfx/region"
	"github.com/garaekz/agentfx/runner"
	"github.com/garaekz/agentfx/screen"
)

// uiMsg is this demo's message type: it only needs a click counter,
// broadcast from the button agent to the header's Game observer.
type uiMsg struct {
	clicks int
}

func (uiMsg) Tick() uiMsg { return uiMsg{clicks: -1} }

// uiGame lays out a header bar over a log body and a footer button,
// via a Rows splitter (§4.2): clicking (or hitting 'k') the button
// queues an incremented click count as a message, which this Game
// observes and renders into the header on the next frame.
type uiGame struct {
	clicks int
	log    []string
}

func (g *uiGame) Message(msg uiMsg, _ agent.Replier[uiMsg]) agent.Response {
	if msg.clicks < 0 {
		return agent.Nothing
	}
	g.clicks = msg.clicks
	g.log = append(g.log, fmt.Sprintf("button clicked (%d total)", g.clicks))
	return agent.Redraw
}

func (g *uiGame) Attach(root region.Region, replies agent.Replier[uiMsg]) bool {
	rows, err := region.Rows(root,
		region.Fixed(1),
		region.Sep("-"),
		region.Fill(),
		region.Sep("-"),
		region.Fixed(1),
	)
	if err != nil {
		return false
	}
	header, body, footer := rows[0], rows[1], rows[2]

	region.HeaderBar(fmt.Sprintf("agentfx ui demo — clicks: %d", g.clicks), headerStyle()).Attach(header)
	region.TextBox{Lines: g.log, ScrollBottom: true, Style: bodyStyle()}.Attach(body)

	pressed := (region.Button{Label: "[ click me (k) ]", HotKey: 'k', Style: footerStyle()}).Attach(footer)
	if pressed {
		g.clicks++
		replies.Queue(uiMsg{clicks: g.clicks})
	}

	return footer.Action().Kind == action.KeyPress && footer.Action().Rune == 'q'
}

func headerStyle() screen.Cell {
	return screen.Cell{Fg: color.ColorWhite, Bold: true}
}

func bodyStyle() screen.Cell {
	return screen.Cell{Fg: color.ColorWhite}
}

func footerStyle() screen.Cell {
	return screen.Cell{Fg: color.ColorCyan}
}

// runUIDemo wires a terminal IoSystem, the round scheduler, and
// gamefx's frame loop together, exiting on 'q' or Ctrl+C.
func runUIDemo() {
	term, err := iosys.NewTerminal(iosys.WithDoubleBuffer(true))
	if err != nil {
		fmt.Fprintf(os.Stderr, "demo: open terminal: %v\n", err)
		os.Exit(1)
	}
	defer term.Stop()

	game := &uiGame{}
	rn := runner.New[uiMsg](game, control.SystemClock{})
	loop := gamefx.New[uiMsg](term, rn, game, control.SystemClock{})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := loop.Run(ctx); err != nil && err != context.Canceled {
		fmt.Fprintf(os.Stderr, "demo: ui loop: %v\n", err)
		os.Exit(1)
	}
}
