package main

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/tetrus/config"
	"github.com/plus3/tetrus/tetris"
	"github.com/plus3/tetrus/tetris/debugui"
	debugui_ebiten "github.com/plus3/tetrus/tetris/debugui/ebiten"
	"github.com/spf13/cobra"
)

const windowTitle = "tetrus"

var (
	backgroundColor = color.RGBA{100, 100, 100, 255}
	emptyCellColor  = color.RGBA{30, 30, 30, 255}
	gridLineColor   = color.RGBA{60, 60, 60, 255}
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a window (arrows move and rotate, R restarts, Esc quits)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		session, err := newSession(s)
		if err != nil {
			return err
		}

		game := newWindowGame(session, s)
		width, height := game.layout.screenSize()
		if s.Debug {
			game.imgui = debugui_ebiten.NewImguiBackend(windowTitle, width, height)
			game.overlay = debugui.New(session, 120)
		} else {
			ebiten.SetWindowSize(width, height)
			ebiten.SetWindowTitle(windowTitle)
		}
		ebiten.SetTPS(s.TPS)

		log.Printf("starting %dx%d window at %d ticks/s", width, height, s.TPS)
		return ebiten.RunGame(game)
	},
}

func init() {
	playCmd.Flags().Bool(config.KeyDebug, false, "show the Dear ImGui debug overlay")
	bindFlag(settings, playCmd, config.KeyDebug)
}

// boardLayout places the playfield and the next-piece preview on screen.
// The playfield is centered with the preview to its right.
type boardLayout struct {
	cell    int
	marginX int
}

func newBoardLayout(cellSize int) boardLayout {
	return boardLayout{cell: cellSize, marginX: cellSize * 25 / 3}
}

func (l boardLayout) screenSize() (int, int) {
	return 2*l.marginX + tetris.Columns*l.cell, tetris.Rows * l.cell
}

// cellRect returns the on-screen rectangle of playfield cell (column, row).
func (l boardLayout) cellRect(column, row int) (x, y, size float32) {
	return float32(l.marginX + column*l.cell), float32(row * l.cell), float32(l.cell)
}

func (l boardLayout) previewOrigin() (int, int) {
	return l.marginX + (tetris.Columns+1)*l.cell, 2 * l.cell
}

// windowGame implements ebiten.Game. Update runs one tick per call at the
// configured TPS.
type windowGame struct {
	session *tetris.Session
	frame   time.Duration
	layout  boardLayout

	imgui   *debugui_ebiten.ImguiBackend
	overlay *debugui.Overlay
}

func newWindowGame(session *tetris.Session, s config.Settings) *windowGame {
	return &windowGame{
		session: session,
		frame:   s.FrameInterval(),
		layout:  newBoardLayout(s.CellSize),
	}
}

func (g *windowGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.imgui != nil {
		g.imgui.BeginFrame()
		defer g.imgui.EndFrame()
	}

	if g.keyboardFree() && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset()
	}
	g.session.Step(g.intent(), g.frame)

	if g.overlay != nil {
		g.overlay.Render(float32(g.frame.Seconds()))
	}
	return nil
}

func (g *windowGame) keyboardFree() bool {
	return g.overlay == nil || !g.overlay.InputState().WantCaptureKeyboard
}

func (g *windowGame) intent() tetris.Intent {
	if !g.keyboardFree() {
		return tetris.Intent{}
	}
	return tetris.Intent{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	}
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	field := g.session.Playfield()
	for row := 0; row < tetris.Rows; row++ {
		for column := 0; column < tetris.Columns; column++ {
			clr := emptyCellColor
			if k, ok := field.At(column, row).Kind(); ok {
				clr = k.Color()
			}
			g.drawCell(screen, column, row, clr)
		}
	}

	active := g.session.Active()
	for _, c := range active.AbsoluteCells() {
		g.drawCell(screen, c.X, c.Y, active.Kind().Color())
	}

	next := g.session.Next()
	px, py := g.layout.previewOrigin()
	size := float32(g.layout.cell)
	for _, c := range next.Cells() {
		x := float32(px) + float32(c.X)*size
		y := float32(py) + float32(c.Y)*size
		vector.DrawFilledRect(screen, x, y, size, size, next.Kind().Color(), false)
		vector.StrokeRect(screen, x, y, size, size, 1, gridLineColor, false)
	}

	score := g.session.Score()
	status := fmt.Sprintf("NEXT\n\n\n\n\nLINES  %d\nPOINTS %d", score.Lines, score.Points)
	if g.session.ToppedOut() {
		status += "\n\nTOPPED OUT\nR to restart"
	}
	ebitenutil.DebugPrintAt(screen, status, px, py-g.layout.cell)

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *windowGame) drawCell(screen *ebiten.Image, column, row int, clr color.Color) {
	x, y, size := g.layout.cellRect(column, row)
	vector.DrawFilledRect(screen, x, y, size, size, clr, false)
	vector.StrokeRect(screen, x, y, size, size, 1, gridLineColor, false)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
	}
	return g.layout.screenSize()
}
