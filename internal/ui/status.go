package ui

import "fmt"

func (m Model) statusLine() string {
	vec := m.shared.sched.State().Vector()

	name := nameStyle.Render(m.shared.sched.ActiveVisualizer().Name())
	info := infoStyle.Render(fmt.Sprintf("%.0f bpm  beat %d", vec.TempoBPM, vec.BeatCount))

	line := fmt.Sprintf(" %s  %s", name, info)
	if !m.shared.sched.Running() {
		line += "  " + staleStyle.Render("PAUSED")
	} else if m.shared.sched.Stale() {
		line += "  " + staleStyle.Render("STALE")
	}
	line += "  " + helpStyle.Render("1-4 visualizer  space pause  q quit")
	return line
}
