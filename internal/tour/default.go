package tour

import "time"

// Identifiers used by the default tour.
const (
	ControlBack   ControlID = "back"
	ControlHelp   ControlID = "help"
	ControlSave   ControlID = "save"
	ControlToggle ControlID = "toggle"

	InputTutorial InputID = "tutorialInput"
)

// featureCallouts are the panels highlighted one after another in the middle
// of the default tour.
var featureCallouts = []AnimatorID{
	"centered", "floating", "colors", "rounded",
	"spacing", "background", "arial", "interactive",
}

// Default returns the built-in tutorial: an arrow and distance hint, a
// callout per layout feature, the feedback buttons under a hover pulse, the
// keyboard hint with the input focused, and a closing group shown together
// while the help button is held hovered.
func Default() *Tour {
	const (
		fade  = time.Second
		read  = 3 * time.Second
		pause = time.Second
	)

	b := NewBuilder("default").
		Wait(pause).
		Detached("arrow", fade, read).
		Wait(pause).
		Play("distance", fade, 2*time.Second).
		Wait(pause)

	for _, id := range featureCallouts {
		b.Play(id, fade, read).Wait(pause)
	}

	return b.
		BeginHoverPulse(ControlBack, ControlHelp, ControlSave, ControlToggle).
		Play("feedback", fade, read).
		EndHoverPulse().
		Wait(pause).
		Focus(InputTutorial).
		Play("keyboard", fade, read).
		Unfocus(InputTutorial).
		Wait(pause).
		HoverOn(ControlHelp).
		Parallel(
			Fade{Animator: "instructions", Duration: fade, Hold: 7 * time.Second},
			Fade{Animator: "textbox", Duration: fade, Hold: 7 * time.Second},
			Fade{Animator: "help", Duration: fade, Hold: 7 * time.Second},
		).
		HoverOff(ControlHelp).
		Wait(pause).
		Play("tutorialEnd", fade, read).
		MustBuild()
}
