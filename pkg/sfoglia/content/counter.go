package content

import (
	"log/slog"
	"strconv"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/nav"
)

// WireCounter attaches the click-counter demo to the currently rendered
// markup. It looks up the button and value elements by their well-known ids
// and binds an increment to the button.
//
// The count lives with the wiring: every call starts a fresh counter at
// zero, so navigating away and back resets it along with the subtree.
// Missing elements are a logged skip, not an error.
func WireCounter(env nav.Environment, log *slog.Logger) {
	if log == nil {
		log = slog.Default()
	}

	btn, okBtn := env.ElementByID(constants.CounterButtonID)
	out, okOut := env.ElementByID(constants.CounterValueID)
	if !okBtn || !okOut {
		log.Error("counter elements not found, skipping wiring",
			"button", constants.CounterButtonID, "value", constants.CounterValueID)
		return
	}

	clicks := atomic.NewInt64(0)
	btn.OnClick(func() {
		out.SetText(strconv.FormatInt(clicks.Inc(), 10))
	})
}
