package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kgrime/linsncore/internal/config"
)

func TestBuildDemoSprite_KnownPatternsProduceASprite(t *testing.T) {
	for _, pattern := range []string{"pulse", "checkerboard", "scrollbar", "unknown-falls-back-to-pulse"} {
		sprite := buildDemoSprite(pattern)
		assert.NotNil(t, sprite)
	}
}

func TestNewSender_UnknownKindIsAnError(t *testing.T) {
	_, err := newSender("lo", config.Config{Sender: "carrier-pigeon"}, nil)
	assert.Error(t, err)
}
