package watcher

import (
	"strings"
	"time"
)

type interval string
type intervalOptions []interval

func (option interval) Match(input string) bool {
	return strings.ToUpper(input) == string(option)
}

func (options intervalOptions) Includes(input string) bool {
	for _, i := range options {
		if i.Match(input) {
			return true
		}
	}
	return false
}

const (
	ONE_SECOND    = time.Second
	TWO_SECONDS   = 2 * time.Second
	THREE_SECONDS = 3 * time.Second
	FIVE_SECONDS  = 5 * time.Second
)

var ValidPollIntervals intervalOptions = intervalOptions{
	"ONE_SECOND",
	"TWO_SECONDS",
	"THREE_SECONDS",
	"FIVE_SECONDS",
}

var PollIntervalToDurationMapping map[string]time.Duration = map[string]time.Duration{
	"ONE_SECOND":    ONE_SECOND,
	"TWO_SECONDS":   TWO_SECONDS,
	"THREE_SECONDS": THREE_SECONDS,
	"FIVE_SECONDS":  FIVE_SECONDS,
}

// ResolvePollInterval maps a validated POLL_INTERVAL value to its duration.
// Validation is case-insensitive, so the lookup must be too.
func ResolvePollInterval(key string) time.Duration {
	return PollIntervalToDurationMapping[strings.ToUpper(key)]
}
