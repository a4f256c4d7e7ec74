package samples

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	businesscomms "github.com/google-business-communications/businesscomms-golang"
)

// DefaultDelay is the pause between consecutive calls, giving remote
// changes time to propagate before the next read.
const DefaultDelay = 3 * time.Second

// Scenario carries the collaborators a walkthrough runs with. The client
// and output writer are injected so tests can substitute a fake service
// and capture the trace.
type Scenario struct {
	Client *businesscomms.Client
	// Out receives the diagnostic trace. Defaults to os.Stdout.
	Out io.Writer
	// Delay is the pause inserted between calls. Zero disables pauses.
	Delay time.Duration
}

func (s *Scenario) writer() io.Writer {
	if s.Out != nil {
		return s.Out
	}
	return os.Stdout
}

func (s *Scenario) header(title string) {
	rule := strings.Repeat("-", 50)
	fmt.Fprintln(s.writer(), rule)
	fmt.Fprintln(s.writer(), title)
	fmt.Fprintln(s.writer(), rule)
}

func (s *Scenario) print(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(s.writer(), "%+v\n", v)
		return
	}
	fmt.Fprintln(s.writer(), string(data))
}

func (s *Scenario) pause() {
	s.pauseFor(s.Delay)
}

func (s *Scenario) pauseFor(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
