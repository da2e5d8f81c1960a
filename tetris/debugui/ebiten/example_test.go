package ebiten_test

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetrus/tetris"
	"github.com/plus3/tetrus/tetris/debugui"
	debugui_ebiten "github.com/plus3/tetrus/tetris/debugui/ebiten"
)

// Game implements ebiten.Game and draws the debug overlay over the board.
type Game struct {
	session      *tetris.Session
	overlay      *debugui.Overlay
	imguiBackend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Begin ImGui frame before stepping the session
	g.imguiBackend.BeginFrame()

	var intent tetris.Intent
	if !g.overlay.InputState().WantCaptureKeyboard {
		intent.Left = ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
		intent.Right = ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	}
	g.session.Step(intent, time.Second/60)
	g.overlay.Render(1.0 / 60.0)

	// End ImGui frame after panels are queued
	g.imguiBackend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw the board to screen
	// ...

	// Draw ImGui overlay on top
	g.imguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	imguiBackend := debugui_ebiten.NewImguiBackend("tetrus debug", 1280, 720)

	session, err := tetris.NewSession(tetris.DefaultConfig())
	if err != nil {
		panic(err)
	}

	game := &Game{
		session:      session,
		overlay:      debugui.New(session, 120),
		imguiBackend: imguiBackend,
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
