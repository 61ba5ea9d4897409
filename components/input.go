package components

import (
	cfg "github.com/pixeldrift/cartdash/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the full state of an action for this frame
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputData is the singleton held-key latch: the current and previous
// frame's pressed state per logical action.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()
