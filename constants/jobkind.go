package constants

import "strings"

// JobKind selects the reporting cadence a batch is scored under.
type JobKind string

const (
	JobKindAnnual    JobKind = "ANNUAL"
	JobKindQuarterly JobKind = "QUARTERLY"
)

var allJobKinds = []JobKind{JobKindAnnual, JobKindQuarterly}

// JobKinds returns the allowed kinds as strings, for validation messages.
func JobKinds() []string {
	out := make([]string, len(allJobKinds))
	for i, k := range allJobKinds {
		out[i] = string(k)
	}
	return out
}

// ParseJobKind canonicalizes user input ("annual", "Quarterly", ...) into a
// JobKind. The second return is false for unknown input.
func ParseJobKind(input string) (JobKind, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(input))
	for _, k := range allJobKinds {
		if normalized == string(k) {
			return k, true
		}
	}
	return "", false
}
