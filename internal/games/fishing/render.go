package fishing

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-pond/internal/core"
	"github.com/vovakirdan/tui-pond/internal/flow"
	"github.com/vovakirdan/tui-pond/internal/pond"
)

// hudRows are reserved above the pond for score, clock and study prompts.
const hudRows = 3

// Visual characters for rendering
const (
	SurfaceChar = '~'
	BankChar    = '▒'
	LineChar    = '·'
	HookChar    = 'J'
	AimChar     = '◂'
)

var fishColors = []core.Color{
	core.ColorOrange, core.ColorYellow, core.ColorMagenta, core.ColorGreen,
	core.ColorCyan, core.ColorRed, core.ColorBrightBlue, core.ColorWhite,
}

// Render draws the current screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.state {
	case flow.Welcome:
		g.renderWelcome(dst)
	case flow.Settlement:
		g.renderSettlement(dst)
	case flow.StudySettlement:
		g.renderStudySettlement(dst)
	case flow.WordWall:
		g.renderWordWall(dst)
	default:
		if g.state.IsPlaying() {
			g.renderPond(dst)
			return
		}
		g.renderMenu(dst, menuTitles[g.state], g.menuOptions())
	}
}

var menuTitles = map[flow.State]string{
	flow.ModeSelection:  "Choose a mode",
	flow.TimeSelection:  "How long do you want to fish?",
	flow.EndDialog:      "Another round?",
	flow.StudySelection: "Choose a study mode",
}

func width(s string) int {
	return utf8.RuneCountInString(s)
}

func (g *Game) renderWelcome(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-3, "~ ~ ~  P O N D  ~ ~ ~", core.ColorSurface)
	dst.DrawTextCentered(mid-1, "Cast your hook, catch fish, learn words.", core.ColorDefault)
	dst.DrawTextCentered(mid+1, "><>     <><     ><>", core.ColorOrange)
	dst.DrawTextCentered(mid+3, "Press Enter to start", core.ColorHighlight)
	g.renderFooter(dst, "Enter start  Q quit")
}

func (g *Game) renderMenu(dst *core.Screen, title string, opts []string) {
	top := (dst.Height()-len(opts))/2 - 2
	dst.DrawTextCentered(top, title, core.ColorHighlight)

	boxW := width(title)
	for _, o := range opts {
		boxW = core.Max(boxW, width(o)+4)
	}
	x := (dst.Width() - boxW) / 2
	for i, o := range opts {
		if i == g.cursor {
			dst.DrawTextColored(x, top+2+i, "> "+o, core.ColorHighlight)
		} else {
			dst.DrawText(x, top+2+i, "  "+o)
		}
	}
	g.renderFooter(dst, "↑/↓ choose  Enter confirm  Esc back  Q quit")
}

func (g *Game) renderFooter(dst *core.Screen, hint string) {
	dst.DrawTextCentered(dst.Height()-1, hint, core.ColorGray)
}

// drawPanel draws a boxed block of lines in the centre of the screen.
func drawPanel(dst *core.Screen, lines []string, colors []core.Color) {
	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, width(l))
	}
	boxW += 4
	boxH := len(lines) + 2
	r := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorGray)
	for i, l := range lines {
		c := core.ColorDefault
		if i < len(colors) {
			c = colors[i]
		}
		dst.DrawTextColored(r.X+2, r.Y+1+i, l, c)
	}
}

func (g *Game) renderSettlement(dst *core.Screen) {
	s := g.settlement
	title := "Time's up!"
	if !s.TimedOut {
		title = "Round abandoned"
	}
	lines := []string{
		title,
		"",
		"Played      " + clock(math.Floor(s.Elapsed)),
		fmt.Sprintf("Score       %d", s.Score),
		fmt.Sprintf("Best (%dm)   %d", s.Minutes, s.Best),
		fmt.Sprintf("Fish caught %d", s.Caught),
		fmt.Sprintf("Average     %.1f", s.Average),
	}
	colors := []core.Color{core.ColorHighlight}
	if s.NewBest {
		lines = append(lines, "", "New best score!")
		colors = make([]core.Color, len(lines))
		colors[0] = core.ColorHighlight
		colors[len(lines)-1] = core.ColorCorrect
	}
	drawPanel(dst, lines, colors)
	g.renderFooter(dst, "Enter continue")
}

func (g *Game) renderStudySettlement(dst *core.Screen) {
	r := g.result
	lines := []string{r.Mode.String() + " complete"}
	colors := []core.Color{core.ColorHighlight}

	switch r.Mode {
	case pond.ModeMatching:
		st := r.Matching
		lines = append(lines,
			fmt.Sprintf("Page %d: %d/%d matched, %d mistakes", r.Page, st.Completed, st.Total, st.Errors),
			fmt.Sprintf("Accuracy %.1f%%", st.Accuracy),
		)
		colors = append(colors, core.ColorDefault, core.ColorDefault)
		if st.AllCorrect {
			lines = append(lines, "All correct, you know these words!")
			colors = append(colors, core.ColorCorrect)
		} else {
			lines = append(lines, "Keep going, next time they will all be right.")
			colors = append(colors, core.ColorHighlight)
		}
		lines = append(lines, "")
		colors = append(colors, core.ColorDefault)
		for _, w := range st.Words {
			c := core.ColorCorrect
			if w.Errors > 0 {
				c = core.ColorWrong
			}
			lines = append(lines, fmt.Sprintf("%-14s %s", w.Word, w.Meaning))
			colors = append(colors, c)
		}
	default:
		lines = append(lines,
			"",
			r.Word.Word,
			r.Word.Meaning,
		)
		colors = append(colors, core.ColorDefault, core.ColorCorrect, core.ColorDefault)
		if r.Mode == pond.ModeSpelling {
			lines = append(lines, fmt.Sprintf("Wrong letters: %d", r.Misses))
			colors = append(colors, core.ColorDefault)
		}
		if r.PageAdvanced {
			lines = append(lines, "", "Page complete, on to the next one!")
			colors = append(colors, core.ColorDefault, core.ColorCorrect)
		}
	}
	drawPanel(dst, lines, colors)
	g.renderFooter(dst, "Enter back to the word wall")
}

func (g *Game) renderWordWall(dst *core.Screen) {
	info := g.study.PageInfo()
	title := fmt.Sprintf("Word wall - %s  (page %d/%d, %d/%d done)",
		g.study.Mode(), info.Current, info.Total, info.Completed, info.Size)
	dst.DrawTextCentered(1, title, core.ColorHighlight)

	rows := g.study.WallPage()
	wordW := 0
	for _, r := range rows {
		wordW = core.Max(wordW, width(r.Word))
	}
	top := core.Max((dst.Height()-len(rows))/2, 3)
	x := core.Max(dst.Width()/2-wordW-6, 0)

	for i, r := range rows {
		mark := "  "
		c := core.ColorDefault
		switch {
		case r.Completed:
			mark, c = "✓ ", core.ColorCorrect
		case r.Current:
			mark = "* "
		}
		prefix := "  "
		if i == g.cursor {
			prefix = "> "
			if !r.Completed {
				c = core.ColorHighlight
			}
		}
		line := fmt.Sprintf("%s%s%-*s  %s", prefix, mark, wordW, r.Word, r.Meaning)
		dst.DrawTextColored(x, top+i, line, c)
	}

	nav := ""
	if info.HasPrevious {
		nav += "← prev  "
	}
	if info.HasNext {
		nav += "→ next  "
	}
	g.renderFooter(dst, nav+"↑/↓ choose  Enter play  Esc back")
}

// renderPond draws the HUD and the projected playfield.
func (g *Game) renderPond(dst *core.Screen) {
	vp := core.NewViewport(g.cfg.Playfield.Width, g.cfg.Playfield.Height, dst.Width(), dst.Height(), hudRows)

	g.renderHUD(dst)
	dst.DrawHLine(0, hudRows-1, dst.Width(), '─', core.ColorGray)

	_, surface := vp.Point(0, g.cfg.Playfield.WaterTop)
	dst.DrawHLine(0, surface, dst.Width(), SurfaceChar, core.ColorSurface)

	if g.player != nil {
		dst.DrawRect(vp.Rect(g.player.X, g.player.Y, g.player.W, g.player.H), BankChar, core.ColorYellow)
	}

	highlight := g.fishUnderHook()
	for _, f := range g.pond.Fishes() {
		g.drawFish(dst, vp, f, f == highlight)
	}

	if g.hook != nil {
		anchor := g.hook.Start()
		ax, ay := vp.Point(anchor.X, anchor.Y)
		hc := g.hook.Center()
		hx, hy := vp.Point(hc.X, hc.Y)
		if g.hook.State() != pond.HookIdle {
			drawLine(dst, ax, ay, hx, hy)
		}
		dst.SetColored(hx, hy, HookChar, core.ColorHighlight)

		_, aimY := vp.Point(0, g.aim)
		dst.SetColored(dst.Width()-1, aimY, AimChar, core.ColorGray)
	}

	for _, p := range g.scores.Popups() {
		px, py := vp.Point(p.X, p.Y)
		dst.DrawTextColored(px, py, p.Text, core.ColorHighlight)
	}

	if g.paused {
		drawPanel(dst, []string{"PAUSED", "", "Press P to resume"}, []core.Color{core.ColorHighlight})
	}
}

func (g *Game) fishUnderHook() *pond.Fish {
	if g.hook == nil || g.hook.State() == pond.HookIdle {
		return nil
	}
	c := g.hook.Center()
	return g.pond.FishAt(c.X, c.Y)
}

func (g *Game) drawFish(dst *core.Screen, vp core.Viewport, f *pond.Fish, highlight bool) {
	r := vp.Rect(f.X, f.Y, f.W, f.H)
	y := r.Y + r.H/2

	body := "><>"
	if f.Direction == pond.DirLeft {
		body = "<><"
	}
	if d, ok := f.Datum(); ok {
		if f.Direction == pond.DirLeft {
			body = "<" + d.DisplayText + "><"
		} else {
			body = "><" + d.DisplayText + ">"
		}
	}

	c := fishColors[f.Type%len(fishColors)]
	if highlight {
		c = core.ColorHighlight
	}
	dst.DrawTextColored(r.X, y, body, c)
}

// drawLine plots the fishing line between two cells.
func drawLine(dst *core.Screen, x0, y0, x1, y1 int) {
	dx, dy := x1-x0, y1-y0
	steps := core.Max(abs(dx), abs(dy))
	for i := 0; i < steps; i++ {
		x := x0 + dx*i/steps
		y := y0 + dy*i/steps
		dst.SetColored(x, y, LineChar, core.ColorLine)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (g *Game) renderHUD(dst *core.Screen) {
	if !g.state.IsStudy() {
		left := fmt.Sprintf(" Score: %d   Caught: %d   Best: %d", g.scores.Score(), g.scores.Caught(), g.scores.Best())
		dst.DrawText(0, 0, left)
		clockText := "Time " + g.timer.String() + " "
		dst.DrawTextColored(dst.Width()-width(clockText), 0, clockText, core.ColorHighlight)
		dst.DrawTextColored(1, 1, "←/→ move  ↑/↓ aim  Space cast  P pause  Esc end", core.ColorGray)
		return
	}

	p := g.study.Progress()
	status := fmt.Sprintf(" %s   %d/%d", g.study.Mode(), p.Current, p.Target)
	dst.DrawText(0, 0, status)

	prompt := strings.Split(g.study.DisplayText(), "\n")
	dst.DrawTextCentered(0, prompt[0], core.ColorHighlight)
	if len(prompt) > 1 {
		dst.DrawTextCentered(1, strings.Join(strings.Split(prompt[1], ""), " "), core.ColorCorrect)
	} else {
		dst.DrawTextColored(1, 1, "←/→ move  ↑/↓ aim  Space cast  Esc word wall", core.ColorGray)
	}
}
