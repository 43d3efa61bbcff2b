package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteName(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C4", NoteName(60))
	assert.Equal("E3", NoteName(52))
	assert.Equal("D4", NoteName(62))
	assert.Equal("F#2", NoteName(42))
	assert.Equal("C-1", NoteName(0))
}

func TestBeatLabel(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Beat 1", BeatLabel(0))
	assert.Equal("Beat 1+", BeatLabel(1))
	assert.Equal("Beat 1&", BeatLabel(2))
	assert.Equal("Beat 1a", BeatLabel(3))
	assert.Equal("Beat 2", BeatLabel(4))
	assert.Equal("Beat 4a", BeatLabel(15))
}

func TestMin(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1, Min(1, 2))
	assert.Equal(1, Min(2, 1))
}
