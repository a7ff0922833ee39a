package genetic

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// calculateStats computes statistical measures for a candidate pool
func calculateStats[S Solution, F Numeric](pool *Pool[S, F], diversity DiversityFunc[S]) PoolStats {
	stats := PoolStats{Generation: pool.Generation}
	if len(pool.Members) == 0 {
		return stats
	}

	scores := make([]float64, len(pool.Members))
	for i, c := range pool.Members {
		scores[i] = float64(c.Score)
	}

	stats.BestScore = floats.Max(scores)
	stats.WorstScore = floats.Min(scores)
	stats.AverageScore = stat.Mean(scores, nil)
	if len(scores) > 1 {
		stats.StdDev = stat.StdDev(scores, nil)
	}

	if diversity != nil {
		solutions := make([]S, len(pool.Members))
		for i, c := range pool.Members {
			solutions[i] = c.Data
		}
		stats.Diversity = diversity(solutions)
	}

	return stats
}
