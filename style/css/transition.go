package css

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/swordbreaker/blade-bar/style"
)

// Transition describes one entry of a transition property: which widget
// property animates, how long, and with which easing.
type Transition struct {
	Property string // affected property key, or "all"
	Duration time.Duration
	Timing   string // timing function, e.g. "ease" or "cubic-bezier(…)"
	Delay    time.Duration
}

var timingKeywords = map[string]bool{
	"ease": true, "linear": true, "ease-in": true, "ease-out": true,
	"ease-in-out": true, "step-start": true, "step-end": true,
}

// ParseTransitionList reads a transition value like
//
//	background-color 0.2s ease, opacity 0.1s
//
// A value of "none" yields an empty list.
func ParseTransitionList(p style.Property) ([]Transition, error) {
	v := strings.TrimSpace(string(p))
	if v == "" || strings.EqualFold(v, "none") {
		return nil, nil
	}
	groups, err := commaGroups(v)
	if err != nil {
		return nil, err
	}
	transitions := make([]Transition, 0, len(groups))
	for _, fields := range groups {
		tr, err := parseTransition(fields)
		if err != nil {
			return nil, err
		}
		transitions = append(transitions, tr)
	}
	return transitions, nil
}

func parseTransition(fields []string) (Transition, error) {
	tr := Transition{Property: "all", Timing: "ease"}
	timesSeen := 0
	propertySeen := false
	for _, f := range fields {
		lower := strings.ToLower(f)
		if timingKeywords[lower] || strings.HasPrefix(lower, "cubic-bezier(") ||
			strings.HasPrefix(lower, "steps(") {
			tr.Timing = lower
			continue
		}
		if d, ok := parseDuration(lower); ok {
			switch timesSeen {
			case 0:
				tr.Duration = d
			case 1:
				tr.Delay = d
			default:
				return Transition{}, fmt.Errorf("transition with more than two times: %s", strings.Join(fields, " "))
			}
			timesSeen++
			continue
		}
		if propertySeen {
			return Transition{}, fmt.Errorf("unexpected transition component: %s", f)
		}
		tr.Property = lower
		propertySeen = true
	}
	return tr, nil
}

// ParseDuration reads a CSS time value, "0.2s" or "150ms". The second
// return value is false for anything else.
func ParseDuration(v string) (time.Duration, bool) {
	return parseDuration(strings.ToLower(strings.TrimSpace(v)))
}

// IsTimingFunction returns wether a value names a transition timing
// function: one of the easing keywords, or a cubic-bezier() or steps()
// call.
func IsTimingFunction(v string) bool {
	lower := strings.ToLower(strings.TrimSpace(v))
	return timingKeywords[lower] ||
		strings.HasPrefix(lower, "cubic-bezier(") || strings.HasPrefix(lower, "steps(")
}

// parseDuration reads a CSS time value, "0.2s" or "150ms".
func parseDuration(v string) (time.Duration, bool) {
	scale := time.Duration(0)
	num := ""
	if strings.HasSuffix(v, "ms") {
		scale, num = time.Millisecond, strings.TrimSuffix(v, "ms")
	} else if strings.HasSuffix(v, "s") {
		scale, num = time.Second, strings.TrimSuffix(v, "s")
	} else {
		return 0, false
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil || f < 0 {
		return 0, false
	}
	return time.Duration(math.Round(f * float64(scale))), true
}

// String returns the CSS text of a transition entry.
func (tr Transition) String() string {
	var b strings.Builder
	b.WriteString(tr.Property)
	b.WriteString(" ")
	b.WriteString(formatSeconds(tr.Duration))
	if tr.Timing != "" {
		b.WriteString(" ")
		b.WriteString(tr.Timing)
	}
	if tr.Delay > 0 {
		b.WriteString(" ")
		b.WriteString(formatSeconds(tr.Delay))
	}
	return b.String()
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s"
}

// TransitionListString returns the CSS text of a list of transitions.
func TransitionListString(transitions []Transition) string {
	if len(transitions) == 0 {
		return "none"
	}
	entries := make([]string, len(transitions))
	for i, tr := range transitions {
		entries[i] = tr.String()
	}
	return strings.Join(entries, ", ")
}
