package assessment

import (
	"time"

	"github.com/abhisek/neuroscreen/internal/textanalysis"
)

// timerTickMsg is sent every second to drive phase countdowns.
type timerTickMsg time.Time

// analysisDoneMsg is sent when picture-description classification
// finishes.
type analysisDoneMsg struct {
	Result *textanalysis.Result
	Err    error
}

// batteryEndMsg is sent to trigger the battery end flow.
type batteryEndMsg struct{}
