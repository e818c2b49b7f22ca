// Package config loads the optional YAML configuration file for the
// linsn-send host binary, applying defaults for any key the file
// omits, the way the teacher's tocalls.yaml loader treats its data
// file as optional and falls back gracefully when absent.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kgrime/linsncore/internal/wire"
)

// SenderKind selects which socket.Sender implementation the host
// binary constructs.
type SenderKind string

const (
	SenderSimple  SenderKind = "simple"
	SenderBatched SenderKind = "batched"
)

// Config holds everything the host binary needs beyond the interface
// name, which is always supplied on the command line.
type Config struct {
	// DstMAC is the destination link-layer address frames are sent
	// to. Defaults to the all-zero address.
	DstMAC wire.MAC `yaml:"-"`
	// DstMACString is the YAML-facing form of DstMAC, parsed into it
	// after load.
	DstMACString string `yaml:"dst_mac"`

	// Sender selects simple or batched transmission. Defaults to
	// batched.
	Sender SenderKind `yaml:"sender"`

	// SendBufferBytes is read from the file but no sender uses it: the
	// batched sender always requests its own fixed SO_SNDBUF target.
	SendBufferBytes int `yaml:"send_buffer_bytes"`

	// PanelWidth and PanelHeight are the logical compositing
	// dimensions; they default to the full physical panel, minus the
	// row SetPixel's inclusive height boundary and reserved first row
	// together put out of reach.
	PanelWidth  int `yaml:"panel_width"`
	PanelHeight int `yaml:"panel_height"`

	// FlipY mirrors the panel vertically at the surface level.
	FlipY bool `yaml:"flip_y"`

	// FrameBudgetMillis, if non-zero, is logged against by the send
	// loop when one iteration exceeds it.
	FrameBudgetMillis int `yaml:"frame_budget_millis"`
}

// Default returns a Config with the fallback values used when no file
// is loaded or a key is absent from it.
func Default() Config {
	return Config{
		DstMAC:            wire.ZeroMAC,
		DstMACString:      wire.ZeroMAC.String(),
		Sender:            SenderBatched,
		SendBufferBytes:   0,
		PanelWidth:        wire.FrameWidth,
		PanelHeight:       wire.FrameHeight - 2,
		FlipY:             false,
		FrameBudgetMillis: 0,
	}
}

// Load reads and parses the YAML file at path, starting from Default
// and overwriting only the keys present in the file. A path of "" (no
// --config flag given) returns Default unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if cfg.DstMACString != "" {
		mac, err := wire.ParseMAC(cfg.DstMACString)
		if err != nil {
			return Config{}, fmt.Errorf("config: dst_mac: %w", err)
		}
		cfg.DstMAC = mac
	}

	if cfg.Sender == "" {
		cfg.Sender = SenderBatched
	}
	if cfg.PanelWidth == 0 {
		cfg.PanelWidth = wire.FrameWidth
	}
	if cfg.PanelHeight == 0 {
		cfg.PanelHeight = wire.FrameHeight - 2
	}

	return cfg, nil
}

// FrameBudget returns FrameBudgetMillis as a time.Duration.
func (c Config) FrameBudget() time.Duration {
	return time.Duration(c.FrameBudgetMillis) * time.Millisecond
}
