package rankings

import (
	"sort"

	"golfr-rankings/lib/textutil"

	"github.com/antzucaro/matchr"
)

// MinSimilarity is the least Jaro-Winkler similarity for a name to be
// returned by Lookup.
const MinSimilarity = 0.8

type Match struct {
	Rank       int
	Name       string
	Similarity float64
}

// Lookup returns up to `limit` players whose name is similar to `query`,
// most similar first, ties broken by rank. An exact match (after
// normalization) always has a similarity of 1.
func Lookup(list List, query string, limit int) []Match {
	query = textutil.NormalizeName(query)
	if query == "" || limit <= 0 {
		return nil
	}

	var matches []Match
	for i, name := range list {
		normalized := textutil.NormalizeName(name)

		similarity := 1.0
		if normalized != query {
			similarity = matchr.JaroWinkler(query, normalized, false)
		}
		if similarity < MinSimilarity {
			continue
		}
		matches = append(matches, Match{
			Rank:       i + 1,
			Name:       name,
			Similarity: similarity,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Similarity != matches[j].Similarity {
			return matches[i].Similarity > matches[j].Similarity
		}
		return matches[i].Rank < matches[j].Rank
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
