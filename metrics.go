package holodex

// Metrics summarizes how effective a Holodex pre-filter was against a
// known true-match count, supplied by a post-filter evaluator that runs
// the exact predicate over the candidate set.
type Metrics struct {
	TotalDocs         int
	Candidates        int
	TrueMatches       int
	FalsePositives    int
	FalsePositiveRate float64
	ReductionRatio    float64
}

// CalculateMetrics computes Metrics from (total_docs, candidates,
// true_matches). Subtraction saturates at zero: a caller passing
// true_matches > candidates (a usage bug, since true matches are always
// a subset of candidates) yields FalsePositives == 0 rather than a
// negative count.
func CalculateMetrics(totalDocs, candidates, trueMatches int) Metrics {
	falsePositives := candidates - trueMatches
	if falsePositives < 0 {
		falsePositives = 0
	}

	var fpr float64
	if candidates > 0 {
		fpr = float64(falsePositives) / float64(candidates)
	}

	var reduction float64
	if totalDocs > 0 {
		reduction = 1 - float64(candidates)/float64(totalDocs)
	}

	return Metrics{
		TotalDocs:         totalDocs,
		Candidates:        candidates,
		TrueMatches:       trueMatches,
		FalsePositives:    falsePositives,
		FalsePositiveRate: fpr,
		ReductionRatio:    reduction,
	}
}
