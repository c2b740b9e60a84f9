package keyrand

import "testing"

// Fuzz the full pipeline over arbitrary key components: results must stay
// deterministic, in range, and free of panics for any supported input.
func FuzzGen(f *testing.F) {
	// Seed corpus with interesting shapes
	f.Add(uint64(42), "enemy_x", int64(0), 0.0)
	f.Add(uint64(0), "", int64(-1), -0.0)
	f.Add(uint64(1<<63), "hello世界", int64(1<<62), 3.14)
	f.Add(uint64(7), "🚀rocket", int64(-(1 << 63)), 1e300)
	f.Add(uint64(9), "null\x00byte", int64(255), -1e-300)

	f.Fuzz(func(t *testing.T, seed uint64, s string, i int64, fl float64) {
		g := New(seed)
		key := K(s, i, fl)

		a, err := g.Gen(key)
		if err != nil {
			t.Fatalf("Gen failed on supported components: %v", err)
		}
		b, err := g.Gen(key)
		if err != nil || a != b {
			t.Errorf("Gen not deterministic: %v vs %v (err %v)", a, b, err)
		}
		if a < 0 || a >= 1 {
			t.Errorf("Gen out of [0,1): %v", a)
		}

		v, err := g.GenRange(key, -3, 12)
		if err != nil {
			t.Fatalf("GenRange failed: %v", err)
		}
		if v < -3 || v > 12 {
			t.Errorf("GenRange(-3, 12) = %d", v)
		}

		choices := []byte{'a', 'b', 'c'}
		c, err := Choose(g, key, choices)
		if err != nil {
			t.Fatalf("Choose failed: %v", err)
		}
		if c != 'a' && c != 'b' && c != 'c' {
			t.Errorf("Choose returned non-member %q", c)
		}
	})
}

func FuzzKeyEquivalence(f *testing.F) {
	f.Add(uint64(1), int64(5))
	f.Add(uint64(42), int64(-1))
	f.Add(uint64(3), int64(1<<31))

	f.Fuzz(func(t *testing.T, seed uint64, n int64) {
		g := New(seed)
		base, err := g.Uint64(K("n", n))
		if err != nil {
			t.Fatalf("Uint64 failed: %v", err)
		}
		// Any integer type carrying the same value is the same key.
		if int64(int32(n)) == n {
			w, err := g.Uint64(K("n", int32(n)))
			if err != nil || w != base {
				t.Errorf("int32 alias diverged: %#x vs %#x (err %v)", w, base, err)
			}
		}
		if n >= 0 {
			w, err := g.Uint64(K("n", uint64(n)))
			if err != nil || w != base {
				t.Errorf("uint64 alias diverged: %#x vs %#x (err %v)", w, base, err)
			}
		}
	})
}
