package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]int{4, 7, 7}, 7), "Should return the first match")
	require.Equal(t, -1, FindIndex([]int{4, 7}, 9))
	require.Equal(t, -1, FindIndex([]string{}, "a"))
}

func TestFindIndexFunc(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }
	require.Equal(t, 2, FindIndexFunc([]int{1, 3, 4, 6}, even))
	require.Equal(t, -1, FindIndexFunc([]int{1, 3}, even))
}

func TestContains(t *testing.T) {
	require.True(t, Contains([]int{1, 2, 3}, 3))
	require.False(t, Contains(nil, 3))
}
