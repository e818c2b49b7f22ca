//go:build linux

package socket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSimpleSender_UnknownInterface(t *testing.T) {
	_, err := NewSimpleSender("linsncore-test-no-such-iface", nil)
	assert.Error(t, err)
}

func TestNewBatchedSender_UnknownInterface(t *testing.T) {
	_, err := NewBatchedSender("linsncore-test-no-such-iface", 0, nil)
	assert.Error(t, err)
}
