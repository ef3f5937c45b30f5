package generator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"svw.info/renban/internal/domain"
	"svw.info/renban/internal/solver"
)

func TestGenerateAllDifficulties(t *testing.T) {
	s := solver.NewEngine()
	g := NewUniqueGenerator(s)

	cases := []struct {
		name string
		diff domain.Difficulty
	}{
		{"easy", domain.Easy},
		{"medium", domain.Medium},
		{"hard", domain.Hard},
		{"expert", domain.Expert},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			seed := int64(12345)
			p, st, err := g.Generate(ctx, seed, tc.diff)
			require.NoError(t, err, "Generate(%s) failed", tc.name)
			t.Logf("generated in %v, nodes=%d", st.Duration, st.Nodes)

			givens := 0
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					if p.Definition.Givens[r][c] != 0 {
						givens++
					}
				}
			}
			require.GreaterOrEqual(t, givens, 17, "fewer givens than any unique puzzle can have")
			require.LessOrEqual(t, givens, 81)

			ok, _, err := s.Unique(ctx, &p.Definition)
			require.NoError(t, err)
			require.True(t, ok, "puzzle for %s is not unique", tc.name)
		})
	}
}
