package route_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/route"
)

func TestReconstruct(t *testing.T) {
	prev := map[string]string{
		"B": "A",
		"C": "A",
		"D": "C",
		"E": "D",
		"F": "C",
	}

	cases := []struct {
		name          string
		start, target string
		want          []string
	}{
		{"direct", "A", "C", []string{"A", "C"}},
		{"two hops", "A", "D", []string{"A", "C", "D"}},
		{"three hops", "A", "E", []string{"A", "C", "D", "E"}},
		{"start equals target", "A", "A", []string{"A"}},
		{"unknown start equals target", "Z", "Z", []string{"Z"}},
		{"never mentioned target", "A", "Q", nil},
		{"chain does not reach start", "B", "E", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, route.Reconstruct(prev, tc.start, tc.target))
		})
	}
}

func TestReconstruct_NilRelation(t *testing.T) {
	assert.Equal(t, []string{"S"}, route.Reconstruct(nil, "S", "S"))
	assert.Nil(t, route.Reconstruct(nil, "S", "T"))
}

func TestReconstruct_CyclicRelationTerminates(t *testing.T) {
	prev := map[string]string{"X": "Y", "Y": "X"}
	assert.Nil(t, route.Reconstruct(prev, "A", "X"))
}

func TestReconstruct_DoesNotMutate(t *testing.T) {
	prev := map[string]string{"B": "A", "C": "B"}
	_ = route.Reconstruct(prev, "A", "C")
	assert.Equal(t, map[string]string{"B": "A", "C": "B"}, prev)
}

func TestCost(t *testing.T) {
	g := core.Graph{
		"A": {"B": 7, "C": 9},
		"C": {"D": 11},
	}

	c, err := route.Cost(g, []string{"A", "C", "D"})
	require.NoError(t, err)
	assert.Equal(t, int64(20), c)

	c, err = route.Cost(g, []string{"A"})
	require.NoError(t, err)
	assert.Zero(t, c)

	_, err = route.Cost(g, nil)
	assert.ErrorIs(t, err, route.ErrEmptyPath)

	_, err = route.Cost(g, []string{"A", "D"})
	assert.ErrorIs(t, err, route.ErrMissingEdge)
	assert.Contains(t, err.Error(), "A→D")
}

func TestCost_Saturates(t *testing.T) {
	g := core.Graph{
		"A": {"B": math.MaxInt64 - 1},
		"B": {"C": 10},
	}

	c, err := route.Cost(g, []string{"A", "B", "C"})
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), c)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "A -> C -> D", route.Format([]string{"A", "C", "D"}))
	assert.Equal(t, "A", route.Format([]string{"A"}))
	assert.Equal(t, "", route.Format(nil))
}
