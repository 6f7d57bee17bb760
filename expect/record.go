// Package expect builds the expectation records the conformance harness
// asserts against: one JSON file per fixture, combining the curated
// check for the fixture's defect with the message counts observed in a
// captured run of the reference checker.
package expect

// Message severities, matching the reference checker's vocabulary.
const (
	SeverityFatal   = "FATAL"
	SeverityError   = "ERROR"
	SeverityWarning = "WARNING"
)

// Record is the expectation for one fixture, serialized to
// expected/<category>/<name>.json.
type Record struct {
	Fixture  string    `json:"fixture"`
	Valid    bool      `json:"valid"`
	Messages []Message `json:"messages"`

	FatalCount int `json:"fatal_count"`
	ErrorCount int `json:"error_count"`
	// ErrorCountMin relaxes ErrorCount to a lower bound for fixtures
	// whose defect cascades into a checker-version-dependent number of
	// follow-on errors. Null means ErrorCount is exact.
	ErrorCountMin *int `json:"error_count_min"`
	WarningCount  int  `json:"warning_count"`

	Note string `json:"note,omitempty"`
}

// Message is one expected checker message.
type Message struct {
	Severity       string `json:"severity"`
	CheckID        string `json:"check_id"`
	EpubcheckID    string `json:"epubcheck_id"`
	MessagePattern string `json:"message_pattern"`
	Note           string `json:"note"`
}

// Check is the curated description of an invalid fixture's defect.
type Check struct {
	// CheckID names the conformance rule the fixture exercises.
	CheckID string
	// Severity of the primary message the reference checker emits.
	Severity string
	// EpubcheckID is the reference checker's message identifier.
	EpubcheckID string
	// MessagePattern is a regexp matched against the primary message.
	MessagePattern string
	// Note carries caveats, e.g. known cascading errors.
	Note string
	// ValidOverride marks defects the reference checker is known not to
	// flag; their records assert validity and carry only the note.
	ValidOverride bool
}
