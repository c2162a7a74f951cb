package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThresholdBands(t *testing.T) {
	th := DefaultThresholds()

	assert.Equal(t, redStyle, th.handsStyle(49))
	assert.Equal(t, yellowStyle, th.handsStyle(50))
	assert.Equal(t, yellowStyle, th.handsStyle(200))
	assert.Equal(t, greenStyle, th.handsStyle(201))

	assert.Equal(t, greenStyle, th.aggressionStyle(14.9))
	assert.Equal(t, yellowStyle, th.aggressionStyle(15))
	assert.Equal(t, yellowStyle, th.aggressionStyle(30))
	assert.Equal(t, redStyle, th.aggressionStyle(30.1))

	assert.Equal(t, redStyle, th.showdownStyle(39.9))
	assert.Equal(t, yellowStyle, th.showdownStyle(40))
	assert.Equal(t, yellowStyle, th.showdownStyle(60))
	assert.Equal(t, greenStyle, th.showdownStyle(60.1))

	assert.Equal(t, redStyle, th.tightnessStyle(29.9))
	assert.Equal(t, yellowStyle, th.tightnessStyle(30))
	assert.Equal(t, yellowStyle, th.tightnessStyle(70))
	assert.Equal(t, greenStyle, th.tightnessStyle(70.1))
}
