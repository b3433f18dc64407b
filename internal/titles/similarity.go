package titles

// Distance returns the Levenshtein edit distance between two strings,
// counted over Unicode code points with unit cost for insertions,
// deletions, and substitutions.
func Distance(a, b string) int {
	ar := []rune(a)
	br := []rune(b)
	if len(ar) == 0 {
		return len(br)
	}
	if len(br) == 0 {
		return len(ar)
	}

	prev := make([]int, len(br)+1)
	curr := make([]int, len(br)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ar); i++ {
		curr[0] = i
		for j := 1; j <= len(br); j++ {
			cost := 1
			if ar[i-1] == br[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(br)]
}

// Similarity scores how close two strings are as 1 - distance/max(len).
// The result is in [0, 1], symmetric, and 1.0 exactly when the strings are
// equal; two empty strings score 1.0.
func Similarity(a, b string) float64 {
	ar := []rune(a)
	br := []rune(b)
	longest := max(len(ar), len(br))
	if longest == 0 {
		return 1.0
	}
	return 1.0 - float64(Distance(a, b))/float64(longest)
}
