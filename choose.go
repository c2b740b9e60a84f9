package keyrand

// Choose returns a uniformly selected element of choices for key. Selection
// is uniform over index positions with the same floor-after-scaling policy as
// GenRange.
func Choose[T any](g Generator, key Key, choices []T) (T, error) {
	var zero T
	if len(choices) == 0 {
		return zero, ErrEmptyChoiceSet
	}
	u, err := g.Gen(key)
	if err != nil {
		return zero, err
	}
	return choices[scaleToRange(u, 0, len(choices)-1)], nil
}

// Shuffle permutes xs in place with a deterministic Fisher-Yates walk. Each
// swap position draws from the key augmented with its index, so the resulting
// permutation depends only on (seed, key, len(xs)) and is never disturbed by
// unrelated draws elsewhere in the program.
func Shuffle[T any](g Generator, key Key, xs []T) error {
	for i := 0; i < len(xs)-1; i++ {
		j, err := g.GenRange(key.With(i), i, len(xs)-1)
		if err != nil {
			return err
		}
		xs[i], xs[j] = xs[j], xs[i]
	}
	return nil
}
