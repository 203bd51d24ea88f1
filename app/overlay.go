package app

import (
	"fmt"

	"umapview/hal"

	"gonum.org/v1/gonum/spatial/r3"
)

const lineHeight = 16

func (v *Viewer) drawOverlay(d hal.Display, height int) {
	if !v.debug {
		d.DrawText(4, 4, v.StatusLine())
		return
	}
	maxLines := height / lineHeight
	for i, line := range v.DebugLines() {
		if maxLines > 0 && i >= maxLines {
			break
		}
		d.DrawText(4, 4+i*lineHeight, line)
	}
}

// StatusLine is the one-line summary shown when the debug overlay is off.
func (v *Viewer) StatusLine() string {
	vis, total := v.frame.Counts()
	s := v.settings
	return fmt.Sprintf("visible %d/%d  fov %.2f  scale %.2f  move %.3f  turn %.4f  [F1 debug]",
		vis, total, s.Fov, s.ImageScale, s.MoveSpeed, s.TurnSpeed)
}

// DebugLines describes the last frame: viewport, pose and every point's
// trip through the pipeline.
func (v *Viewer) DebugLines() []string {
	f := v.frame
	out := make([]string, 0, len(f.Points)+2)
	out = append(out,
		fmt.Sprintf("area: %.0fx%.0f degenerate=%t", f.Viewport.Width, f.Viewport.Height, f.Degenerate),
		"pose: "+v.pose.String(),
	)
	for _, p := range f.Points {
		out = append(out, fmt.Sprintf("%t | %s -> %s -> %s -> %s",
			p.Visible, vec(p.World), vec(p.Camera), vec(p.Clip), vec(p.Screen)))
	}
	return out
}

func vec(v r3.Vec) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
