package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kgrime/linsncore/internal/wire"
)

func TestLoad_EmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	assert.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialFileFillsDefaultsForMissingKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "linsn.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("sender: simple\n"), 0o644))

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, SenderSimple, cfg.Sender)
	assert.Equal(t, wire.FrameWidth, cfg.PanelWidth)
	assert.Equal(t, wire.ZeroMAC, cfg.DstMAC)
}

func TestLoad_ParsesDstMAC(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "linsn.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("dst_mac: \"00:00:00:00:00:00\"\n"), 0o644))

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, wire.ZeroMAC, cfg.DstMAC)
}

func TestLoad_InvalidDstMACIsAnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "linsn.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("dst_mac: \"not-a-mac\"\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFileIsAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFrameBudget_ConvertsMillisToDuration(t *testing.T) {
	cfg := Default()
	cfg.FrameBudgetMillis = 16
	assert.Equal(t, int64(16), cfg.FrameBudget().Milliseconds())
}
