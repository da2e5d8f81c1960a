package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetrus/tetris"
)

// SessionInspector shows the score, the active and next pieces and offers a
// reset button.
type SessionInspector struct{}

func (si *SessionInspector) Render(session *tetris.Session) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 200), imgui.CondOnce)
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	score := session.Score()
	imgui.Text(fmt.Sprintf("Lines: %d", score.Lines))
	imgui.Text(fmt.Sprintf("Points: %d", score.Points))
	imgui.Text(fmt.Sprintf("Locks: %d", score.Locks))

	if imgui.TreeNodeStr("Clears") {
		for n := 1; n <= 4; n++ {
			imgui.BulletText(fmt.Sprintf("%d row(s): %d", n, score.Clears(n)))
		}
		imgui.TreePop()
	}

	imgui.Separator()
	active, next := session.Active(), session.Next()
	imgui.Text(fmt.Sprintf("Active: %s rot=%d at (%d,%d)", active.Kind(), active.Rotation(), active.Column(), active.Row()))
	imgui.Text(fmt.Sprintf("Next: %s", next.Kind()))
	field := session.Playfield()
	imgui.Text(fmt.Sprintf("Filled cells: %d", field.Filled()))

	if session.ToppedOut() {
		imgui.Text("Topped out")
	}
	if imgui.Button("Reset") {
		session.Reset()
	}

	imgui.End()
}
