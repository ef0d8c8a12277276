package schema

// Custom string types for type safety.
type (
	// ReviewState represents the platform's review verdict.
	ReviewState string

	// OutputMode represents the format of the output.
	OutputMode string
)

// Review states the platform delivers. Anything else (PENDING, DISMISSED)
// is carried through as-is and excluded by Qualifies.
const (
	ReviewApproved         ReviewState = "APPROVED"
	ReviewChangesRequested ReviewState = "CHANGES_REQUESTED"
	ReviewCommented        ReviewState = "COMMENTED"
)

// Qualifies reports whether a review state feeds review-derived metrics.
// COMMENTED and all other states are excluded entirely.
func (s ReviewState) Qualifies() bool {
	return s == ReviewApproved || s == ReviewChangesRequested
}

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// Classification boundaries. Small and mega are both exclusive, so a diff of
// exactly 100 or 500 changed lines lands in the neutral band; the same goes
// for merges at exactly 24 hours or 5 days.
const (
	SmallDiffLimit = 100    // additions+deletions below this is a small PR
	MegaDiffLimit  = 500    // additions+deletions above this is a mega PR
	FastMergeSecs  = 86400  // merged in under 24 hours
	StaleMergeSecs = 432000 // merged after more than 5 days
	DeepBodyLength = 50     // review body longer than this is a deep review
)

// ScoreFormula is the human-readable scoring formula shown under the board.
const ScoreFormula = "score = prs*10 + small*5 + reviews*8 + fast*5 + deep*3 - mega*5 - driveby*2 - stale*3"

// Award display names.
const (
	SpeedDemonAward = "Speed Demon"
	DeepDiverAward  = "Deep Diver"
	NeedsLoveAward  = "Needs Love"
)
