// Package debugui provides Dear ImGui panels for inspecting a running
// tetris.Session: score, pieces, tick pipeline timings and frame times.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetrus/tetris"
)

// InputState tracks Dear ImGui's input capture state. Frontends skip game
// input while ImGui owns the keyboard.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay renders every debug panel for one session.
type Overlay struct {
	session *tetris.Session
	input   InputState

	perf      *PerformanceStats
	inspector *SessionInspector
}

// New creates an overlay for session that keeps historyFrames frame-time
// samples.
func New(session *tetris.Session, historyFrames int) *Overlay {
	return &Overlay{
		session:   session,
		perf:      NewPerformanceStats(historyFrames),
		inspector: &SessionInspector{},
	}
}

// Render refreshes the input capture state and draws the panels. It must
// run between the backend's BeginFrame and EndFrame.
func (o *Overlay) Render(deltaTime float32) {
	io := imgui.CurrentIO()
	o.input.WantCaptureMouse = io.WantCaptureMouse()
	o.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	o.inspector.Render(o.session)
	o.perf.Render(o.session, deltaTime)
}

func (o *Overlay) InputState() InputState { return o.input }
