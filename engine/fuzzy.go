package engine

// FuzzyCutoff is the default similarity cutoff used by Closest and
// CloseMatches: a candidate whose ratio to the target falls below this
// is never returned. cmd/shellfixdemo sets it from the config's
// FUZZY_CUTOFF at startup.
var FuzzyCutoff = 0.6

// Closest returns the single best candidate whose similarity ratio to
// target meets FuzzyCutoff, or false if the pool is empty or nothing
// clears the cutoff. Ties are broken by the candidates' input order.
func Closest(target string, candidates []string) (string, bool) {
	matches := CloseMatches(target, candidates, 1, FuzzyCutoff)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0], true
}

// CloseMatches returns up to n candidates whose ratio to target meets
// cutoff, sorted by descending ratio; ties keep candidates' input
// order (a stable sort over the ratio key preserves this).
func CloseMatches(target string, candidates []string, n int, cutoff float64) []string {
	type scored struct {
		value string
		ratio float64
		index int
	}

	scoredCandidates := make([]scored, 0, len(candidates))
	for i, c := range candidates {
		r := ratio(target, c)
		if r >= cutoff {
			scoredCandidates = append(scoredCandidates, scored{value: c, ratio: r, index: i})
		}
	}

	// Stable insertion sort by descending ratio, preserving input order
	// for ties (equivalent to a stable sort since n is always small).
	for i := 1; i < len(scoredCandidates); i++ {
		j := i
		for j > 0 && scoredCandidates[j-1].ratio < scoredCandidates[j].ratio {
			scoredCandidates[j-1], scoredCandidates[j] = scoredCandidates[j], scoredCandidates[j-1]
			j--
		}
	}

	if n > len(scoredCandidates) {
		n = len(scoredCandidates)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = scoredCandidates[i].value
	}
	return out
}

// ratio computes the difflib/SequenceMatcher-style similarity ratio
// between a and b: 2*M / T, where M is the total number of matching
// characters found by recursively taking the longest matching block,
// and T is the sum of the two strings' lengths.
func ratio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	total := len(a) + len(b)
	if total == 0 {
		return 0
	}
	matches := matchingCharacters(a, b)
	return 2.0 * float64(matches) / float64(total)
}

// matchingCharacters sums the sizes of the matching blocks found by
// repeatedly taking the longest common substring and recursing on the
// left and right remainders, mirroring difflib.SequenceMatcher.
func matchingCharacters(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	// b2j maps each rune in b to the list of indices where it occurs.
	b2j := make(map[rune][]int, len(rb))
	for j, r := range rb {
		b2j[r] = append(b2j[r], j)
	}

	var total int
	var walk func(alo, ahi, blo, bhi int)
	walk = func(alo, ahi, blo, bhi int) {
		besti, bestj, bestSize := alo, blo, 0
		j2len := make(map[int]int)
		for i := alo; i < ahi; i++ {
			newJ2len := make(map[int]int)
			for _, j := range b2j[ra[i]] {
				if j < blo || j >= bhi {
					continue
				}
				k := j2len[j-1] + 1
				newJ2len[j] = k
				if k > bestSize {
					besti, bestj, bestSize = i-k+1, j-k+1, k
				}
			}
			j2len = newJ2len
		}
		if bestSize == 0 {
			return
		}
		total += bestSize
		walk(alo, besti, blo, bestj)
		walk(besti+bestSize, ahi, bestj+bestSize, bhi)
	}
	walk(0, len(ra), 0, len(rb))
	return total
}
