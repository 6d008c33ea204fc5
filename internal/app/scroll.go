package app

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const scrollFrameInterval = time.Second / 60

type scrollFrameMsg struct {
	seq int
}

// scrollAnimation is one in-flight smooth scroll. Each retarget bumps the
// sequence number; frames carrying an older sequence are dropped, so rapid
// successive activations settle on the last target.
type scrollAnimation struct {
	from     int
	to       int
	start    time.Time
	duration time.Duration
	seq      int
}

// offsetAt returns the eased offset for a frame and whether the animation
// has finished.
func (a scrollAnimation) offsetAt(now time.Time) (int, bool) {
	if a.duration <= 0 {
		return a.to, true
	}
	elapsed := now.Sub(a.start)
	if elapsed >= a.duration {
		return a.to, true
	}
	t := float64(elapsed) / float64(a.duration)
	eased := easeOutCubic(t)
	offset := float64(a.from) + float64(a.to-a.from)*eased
	return int(math.Round(offset)), false
}

func easeOutCubic(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	inv := 1 - t
	return 1 - inv*inv*inv
}

func scrollFrameCmd(seq int) tea.Cmd {
	return tea.Tick(scrollFrameInterval, func(time.Time) tea.Msg {
		return scrollFrameMsg{seq: seq}
	})
}
