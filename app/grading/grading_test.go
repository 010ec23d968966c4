package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradeDefaultBands(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{100, "D1"},
		{90, "D1"}, // boundary resolves to the higher band
		{89.9, "D2"},
		{85, "D2"},
		{82, "C3"},
		{80, "C3"},
		{75, "C4"},
		{70, "C5"},
		{65, "C6"},
		{60, "P7"},
		{55, "P8"},
		{54, "F9"},
		{0, "F9"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, GradeDefault(c.score), "score %v", c.score)
	}
}

func TestGradeOutOfRangeDegradesGracefully(t *testing.T) {
	assert.Equal(t, "D1", GradeDefault(150))
	assert.Equal(t, "F9", GradeDefault(-10))
}

func TestGradeCustomScale(t *testing.T) {
	scale := Scale{
		{Min: 50, Grade: "PASS"},
		{Min: 0, Grade: "FAIL"},
	}
	assert.Equal(t, "PASS", Grade(50, scale))
	assert.Equal(t, "FAIL", Grade(49.9, scale))
}
