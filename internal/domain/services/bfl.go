package services

import "github.com/ochairo/astwrap/internal/domain/entities"

// NotFound is returned by BestFixLocationIndex when no candidate matches
const NotFound = -1

// BestFixLocationIndex returns the position in results of the first result
// node equal to a candidate. Candidates are tried in order; for each one the
// results are scanned in order, so the first candidate with any match wins.
func BestFixLocationIndex(candidates, results []entities.Node) int {
	for _, candidate := range candidates {
		for i, result := range results {
			if candidate.Equal(result) {
				return i
			}
		}
	}
	return NotFound
}
