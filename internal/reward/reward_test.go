package reward

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor_Tiers(t *testing.T) {
	a := Default()

	assert.Equal(t, 5, a.For("easy"))
	assert.Equal(t, 15, a.For("hard"))
	assert.Equal(t, 15, a.For("medium"))
	// anything that is not exactly "easy" is the higher tier
	assert.Equal(t, 15, a.For(""))
	assert.Equal(t, 15, a.For("Easy"))
}

func TestApply_ClampsAtZero(t *testing.T) {
	assert.Equal(t, 20, Apply(5, 15))
	assert.Equal(t, 0, Apply(5, -5))
	assert.Equal(t, 0, Apply(5, -100))
	assert.Equal(t, 3, Apply(5, -2))
	assert.Equal(t, 0, Apply(0, 0))
}
