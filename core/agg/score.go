package agg

import "github.com/huangsam/pdpboard/schema"

// scoreMap is the status to progress mapping. Anything not listed scores zero.
var scoreMap = map[string]float64{
	schema.StatusDone:       1.0,
	schema.StatusInProgress: 0.5,
	schema.StatusNotStarted: 0.0,
	schema.StatusNA:         0.0,
}

// ScoreStatus returns the progress value of a single status.
func ScoreStatus(status string) float64 {
	return scoreMap[status]
}

// ScoreProject returns one score per stage, in the given stage order.
// Missing or unknown statuses score 0.0.
func ScoreProject(rec schema.ProjectRecord, stages []string) []float64 {
	scores := make([]float64, len(stages))
	for i, stage := range stages {
		if v := rec.Status(stage); v != nil {
			scores[i] = ScoreStatus(*v)
		}
	}
	return scores
}

// Completion is the mean of a score vector scaled to 0-100.
func Completion(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores)) * 100
}
