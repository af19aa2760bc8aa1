// Copyright (c) 2026 CodeNinjaHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codeninjahub/codeninjahub/pkg/slice"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []int{6, 4, 3}, slice.Map([]string{"Python", "Java", "C++"}, func(s string) int { return len(s) }))
	assert.Nil(t, slice.Map[string, int](nil, func(s string) int { return len(s) }))
}

func TestFilter(t *testing.T) {
	names := []string{"Python", "Java", "C++"}

	assert.Equal(t, []string{"Python", "Java"}, slice.Filter(names, func(s string) bool { return !strings.Contains(s, "+") }))
	assert.Equal(t, []string{}, slice.Filter(names, func(string) bool { return false }))
	assert.Nil(t, slice.Filter[string](nil, func(string) bool { return true }))
}
