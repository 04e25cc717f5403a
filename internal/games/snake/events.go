package snake

import "github.com/vovakirdan/neon-snake/internal/core"

// Renderer pulls a settled snapshot once per tick.
type Renderer interface {
	Render(Snapshot)
}

// Effects receives discrete visual events. It owns all animation timing;
// the engine emits each triggering event exactly once.
type Effects interface {
	OnTrail(cell core.Cell, color core.Color)
	OnWallProximity(cell core.Cell)
	OnFoodCollected(cell core.Cell, color core.Color)
	OnCollision(head core.Cell, wall bool)
	OnGameOver(head core.Cell)
}

// Audio receives discrete sound cues.
type Audio interface {
	OnMove()
	OnCollect()
	OnGameOver()
}

// NopEffects ignores every visual event.
type NopEffects struct{}

func (NopEffects) OnTrail(core.Cell, core.Color)         {}
func (NopEffects) OnWallProximity(core.Cell)             {}
func (NopEffects) OnFoodCollected(core.Cell, core.Color) {}
func (NopEffects) OnCollision(core.Cell, bool)           {}
func (NopEffects) OnGameOver(core.Cell)                  {}

// NopAudio ignores every sound cue.
type NopAudio struct{}

func (NopAudio) OnMove()     {}
func (NopAudio) OnCollect()  {}
func (NopAudio) OnGameOver() {}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Snapshot)

// Render calls f(s).
func (f RendererFunc) Render(s Snapshot) {
	f(s)
}
