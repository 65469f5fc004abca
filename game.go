package main

import (
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/danmaku/session"
	"github.com/milk9111/danmaku/state"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"
)

type Game struct {
	session *session.Session
	logger  *zap.Logger
	debug   bool

	pauseUI *ebitenui.UI
	face    text.Face

	assetDir       string
	background     *ebiten.Image
	backgroundName string

	width, height float64
}

func NewGame(sess *session.Session, logger *zap.Logger, assetDir string, debug bool) *Game {
	g := &Game{
		session:  sess,
		logger:   logger,
		debug:    debug,
		face:     text.NewGoXFace(basicfont.Face7x13),
		assetDir: assetDir,
	}
	g.pauseUI = NewPauseUI(g)
	return g
}

func (g *Game) Update() error {
	if g.session.Quitting() {
		return ebiten.Termination
	}

	g.session.PollReload()
	g.session.HandleInput(pollInput())
	if g.session.State() == state.Paused {
		g.pauseUI.Update()
	}
	g.session.Tick(frameDelta())

	if g.session.Quitting() {
		return ebiten.Termination
	}
	return nil
}

// frameDelta is the wall-clock time one update stands for.
func frameDelta() time.Duration {
	tps := ebiten.ActualTPS()
	if tps <= 0 {
		tps = float64(ebiten.TPS())
	}
	return time.Duration(float64(time.Second) / tps)
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	g.drawBackground(screen, snap.Background)
	g.drawWorld(screen, snap)
	g.drawStory(screen, snap)
	g.drawMessages(screen, snap.Messages)

	if snap.State == state.Paused {
		g.pauseUI.Draw(screen)
	}
	if g.debug {
		g.drawDebug(screen, snap)
	}
}

// LayoutF follows the window size so the play area tracks resizes.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.session.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
