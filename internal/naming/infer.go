package naming

// Agreement thresholds for confidence classification. Percentages are
// computed with floating-point division over the candidate count.
const (
	matchPercentHigh   = 100.0
	matchPercentMedium = 80.0
)

type nameTally struct {
	name  string
	count int
}

// InferShowName extracts a candidate show name from every filename, tallies
// the candidates, and picks the most common one. Ties go to the name seen
// first: tallies are kept in first-seen order and a later name must strictly
// exceed the running maximum to displace the winner.
func InferShowName(filenames []string) InferenceResult {
	var tallies []nameTally
	seen := make(map[string]int)
	total := 0

	for _, filename := range filenames {
		name := ExtractShowNameFromFilename(filename)
		if name == "" {
			continue
		}
		total++
		if i, ok := seen[name]; ok {
			tallies[i].count++
		} else {
			seen[name] = len(tallies)
			tallies = append(tallies, nameTally{name: name, count: 1})
		}
	}

	if total == 0 {
		return InferenceResult{Confidence: ConfidenceLow}
	}

	best := tallies[0]
	for _, tally := range tallies[1:] {
		if tally.count > best.count {
			best = tally
		}
	}

	matchPercent := float64(best.count) / float64(total) * 100

	result := InferenceResult{ShowName: best.name}
	switch {
	case matchPercent == matchPercentHigh:
		result.Confidence = ConfidenceHigh
	case matchPercent >= matchPercentMedium:
		result.Confidence = ConfidenceMedium
	default:
		result.Confidence = ConfidenceLow
	}

	if result.Confidence != ConfidenceHigh {
		var conflicts []string
		for _, tally := range tallies {
			if tally.name != best.name {
				conflicts = append(conflicts, tally.name)
			}
		}
		if len(conflicts) > 0 {
			result.ConflictingNames = conflicts
		}
	}

	return result
}
