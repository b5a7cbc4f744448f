package naming

// Confidence classifies how strongly a set of filenames agrees on one show name
type Confidence int

const (
	ConfidenceLow    Confidence = iota // <80% agreement, or no usable filenames
	ConfidenceMedium                   // >=80% agreement
	ConfidenceHigh                     // unanimous agreement
)

// String returns a human-readable representation of the tier
func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	default:
		return "low"
	}
}

// SeasonEpisode holds the zero-padded season and episode numbers of a marker
type SeasonEpisode struct {
	Season  string
	Episode string
}

// InferenceResult is the aggregate guess over a batch of filenames.
// ConflictingNames lists every distinct extracted name that lost the tally
// and is only populated when at least one name disagrees with ShowName.
type InferenceResult struct {
	ShowName         string
	Confidence       Confidence
	ConflictingNames []string
}
