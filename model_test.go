package assoc_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/hupe1980/assoc"
	"github.com/hupe1980/assoc/resource"
	"github.com/hupe1980/assoc/testutil"
	"github.com/stretchr/testify/require"
)

// model is the reference behavior: a Go map plus the first-insertion order
// of the keys it holds.
type model struct {
	m     map[string]int
	order []string
}

func (m *model) set(k string, v int) {
	if _, ok := m.m[k]; !ok {
		m.order = append(m.order, k)
	}
	m.m[k] = v
}

func (m *model) remove(k string) {
	if _, ok := m.m[k]; !ok {
		return
	}
	delete(m.m, k)
	m.order = slices.DeleteFunc(m.order, func(o string) bool { return o == k })
}

func (m *model) keys(ordering assoc.Ordering) []string {
	keys := slices.Clone(m.order)
	if ordering == assoc.SortedOrder {
		slices.Sort(keys)
	}
	return keys
}

func TestStore_MatchesModel(t *testing.T) {
	for _, ordering := range []assoc.Ordering{assoc.SortedOrder, assoc.InsertionOrder} {
		t.Run(ordering.String(), func(t *testing.T) {
			rng := testutil.NewRNG(42)
			rc := resource.NewController(resource.Config{})

			s := assoc.New[int](-1,
				assoc.WithOrdering(ordering),
				assoc.WithSegmentSize(16),
				assoc.WithBTreeDegree(3),
				assoc.WithResourceController(rc),
			)
			ref := &model{m: map[string]int{}}

			// A small key universe keeps hits, replacements and removals frequent.
			universe := append(rng.Keys(48, 3), "")

			for step := range 5000 {
				k := universe[rng.Zipf(len(universe), 1.1)]

				switch op := rng.Intn(10); {
				case op < 5:
					require.NoError(t, s.Set(k, step))
					ref.set(k, step)
				case op < 8:
					require.NoError(t, s.Remove(k))
					ref.remove(k)
				case op < 9:
					batch := []string{k, universe[rng.Intn(len(universe))]}
					require.NoError(t, s.MSetSlices(batch, []int{step, -step}))
					ref.set(batch[0], step)
					ref.set(batch[1], -step)
				default:
					require.NoError(t, s.Reset())
					ref = &model{m: map[string]int{}}
				}

				want, ok := ref.m[k]
				if !ok {
					want = -1
				}
				require.Equal(t, want, s.Get(k), "step %d", step)
				require.Equal(t, ok, s.Exists(k), "step %d", step)
				require.Equal(t, len(ref.m), s.Size(), "step %d", step)

				if step%100 == 0 {
					if diff := cmp.Diff(ref.keys(ordering), s.Keys(), cmpopts.EquateEmpty()); diff != "" {
						t.Fatalf("step %d keys mismatch (-want +got):\n%s", step, diff)
					}
					if diff := cmp.Diff(ref.m, s.AsList().Map(), cmpopts.EquateEmpty()); diff != "" {
						t.Fatalf("step %d contents mismatch (-want +got):\n%s", step, diff)
					}
				}
			}

			st := s.Stats()
			require.LessOrEqual(t, st.Slots, len(universe), "slots never exceed the peak key count")

			require.NoError(t, s.Close())
			require.Zero(t, rc.MemoryUsage())
		})
	}
}
