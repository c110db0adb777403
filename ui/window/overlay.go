package window

import (
	"fmt"
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/ui"
)

const (
	// DebugWidth is the extra room to the right of the board taken by the debug panel.
	DebugWidth    = 360
	historyFrames = 120
)

// overlay is the Dear ImGui debug panel. As a system it runs last in the frame and
// defers its widgets until the frame's commands are applied, so the panel shows the state
// that is about to be drawn.
type overlay struct {
	backend *ebitenbackend.EbitenBackend
	session *session.Session
	history *ui.FrameHistory
	last    time.Time
}

func newOverlay(title string, s *session.Session) *overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, ScreenWidth+DebugWidth, ScreenHeight)
	imgui.CurrentIO().SetIniFilename("")

	return &overlay{
		backend: backend,
		session: s,
		history: ui.NewFrameHistory(historyFrames),
	}
}

func (o *overlay) Execute(frame *loop.UpdateFrame) {
	now := time.Now()
	if !o.last.IsZero() {
		o.history.Record(now.Sub(o.last))
	}
	o.last = now
	frame.Commands.Defer(o.render)
}

func (o *overlay) render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(ScreenWidth+8, 8), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(DebugWidth-16, ScreenHeight-16), imgui.CondOnce)

	if !imgui.BeginV("Debug", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	field := o.session.Field()
	imgui.Text(fmt.Sprintf("Game: %s", o.session.ID()))
	imgui.Text(fmt.Sprintf("Lock Phase: %s", field.Phase()))
	imgui.Text(fmt.Sprintf("Level %d, Lines %d", field.Level(), field.Lines()))

	avg := o.history.Average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	samples := o.history.Samples()
	imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))

	if imgui.TreeNodeStr("Systems") {
		statsTable("SystemsTable", ui.SystemColumns, ui.SystemRows(o.session.Scheduler().GetStats()))
		imgui.TreePop()
	}
	if imgui.TreeNodeStr("Locks") {
		statsTable("LocksTable", ui.KindColumns, ui.KindRows(o.session.Stats()))
		imgui.TreePop()
	}

	imgui.End()
}

func statsTable(id string, columns []string, rows [][]string) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if !imgui.BeginTableV(id, int32(len(columns)), tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	for _, c := range columns {
		imgui.TableSetupColumn(c)
	}
	imgui.TableHeadersRow()

	for _, row := range rows {
		imgui.TableNextRow()
		for _, cell := range row {
			imgui.TableNextColumn()
			imgui.Text(cell)
		}
	}
	imgui.EndTable()
}
