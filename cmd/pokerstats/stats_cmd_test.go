package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pokerhud/pokernow-stats/internal/config"
	"github.com/pokerhud/pokernow-stats/internal/display"
)

func TestSplitSelection(t *testing.T) {
	assert.Nil(t, splitSelection(""))
	assert.Equal(t, []string{"1", "3", "5"}, splitSelection("1,3,5"))
	assert.Equal(t, []string{"2", "4"}, splitSelection(" 2 , , 4 ,"))
}

func TestThresholdsFromConfig(t *testing.T) {
	got := thresholdsFromConfig(config.Default().Thresholds)
	assert.Equal(t, display.DefaultThresholds(), got)
}
