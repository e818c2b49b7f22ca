// Command linsn-send is a thin wrapper around internal/sendloop that
// drives a Linsn LED panel with a procedurally generated demo
// animation. It owns exactly what the core intentionally does not:
// interface selection, configuration loading, and process lifecycle.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"
	"github.com/spf13/pflag"

	"github.com/kgrime/linsncore/internal/config"
	"github.com/kgrime/linsncore/internal/demo"
	"github.com/kgrime/linsncore/internal/exchange"
	"github.com/kgrime/linsncore/internal/sendloop"
	"github.com/kgrime/linsncore/internal/socket"
	"github.com/kgrime/linsncore/internal/surface"
	"github.com/kgrime/linsncore/internal/wire"
)

func main() {
	iface := pflag.StringP("interface", "i", "", "network interface connected to the Linsn controller (required)")
	dstMACFlag := pflag.StringP("dst-mac", "d", "", "destination MAC address, default 00:00:00:00:00:00")
	senderFlag := pflag.String("sender", "", "sender implementation: simple or batched")
	configPath := pflag.StringP("config", "c", "", "optional YAML configuration file")
	pattern := pflag.String("pattern", "pulse", "built-in demo pattern: pulse, checkerboard or scrollbar")
	help := pflag.BoolP("help", "h", false, "display help text")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "linsn-send - drive a Linsn LED panel with a procedural demo animation.\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}
	if *iface == "" {
		fmt.Fprintln(os.Stderr, "linsn-send: --interface is required")
		pflag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "linsn-send: %s\n", err)
		os.Exit(1)
	}

	if *dstMACFlag != "" {
		mac, err := wire.ParseMAC(*dstMACFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "linsn-send: --dst-mac: %s\n", err)
			os.Exit(1)
		}
		cfg.DstMAC = mac
	}
	if *senderFlag != "" {
		cfg.Sender = config.SenderKind(*senderFlag)
	}

	logger := log.Default()
	startTime, err := strftime.Format("%Y-%m-%d %H:%M:%S", time.Now())
	if err != nil {
		startTime = time.Now().String()
	}
	logger.Info("starting", "time", startTime, "interface", *iface, "dst_mac", cfg.DstMAC)

	sender, err := newSender(*iface, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open sender", "err", err)
	}
	defer sender.Close()

	surf := surface.New(cfg.PanelWidth, cfg.PanelHeight, false, cfg.FlipY)
	ex := exchange.New()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go runDemoProducer(ctx, *pattern, surf, ex)

	loop := sendloop.New(ex, sender, cfg.DstMAC, cfg.FrameBudget(), logger)
	if err := loop.Run(ctx); err != nil {
		logger.Info("shutting down", "err", err, "frames_sent", loop.SentFrames())
	}
}

func newSender(iface string, cfg config.Config, logger *log.Logger) (socket.Sender, error) {
	switch cfg.Sender {
	case config.SenderSimple:
		return socket.NewSimpleSender(iface, logger)
	case config.SenderBatched, "":
		return socket.NewBatchedSender(iface, cfg.FrameBudget(), logger)
	default:
		return nil, fmt.Errorf("linsn-send: unknown sender kind %q", cfg.Sender)
	}
}

// runDemoProducer renders the selected built-in pattern into surf and
// publishes completed frames to ex until ctx is cancelled.
func runDemoProducer(ctx context.Context, pattern string, surf *surface.Surface, ex *exchange.Exchange) {
	sprite := buildDemoSprite(pattern)

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		surf.Clear()
		sprite.Draw(surf, 0, 0)

		buf := ex.BeginWrite()
		copy(buf.Pixels(), surf.ActiveBuffer().Pixels())
		ex.Publish()
	}
}

func buildDemoSprite(pattern string) *demo.AnimatedSprite {
	const spriteSize = 64
	red := surface.RGBA{R: 255, A: 255}
	blue := surface.RGBA{B: 255, A: 255}

	switch pattern {
	case "checkerboard":
		frames := []surface.Image{demo.Checkerboard(spriteSize, spriteSize, 8, red, blue)}
		return demo.NewAnimatedSprite(frames, 1, demo.Loop, 1)
	case "scrollbar":
		frames := demo.ScrollingBarFrames(spriteSize, spriteSize, 4, 30, red)
		return demo.NewAnimatedSprite(frames, 30, demo.Loop, 1)
	default:
		frames := demo.PulseFrames(spriteSize, 20, 4, 28, red)
		return demo.NewAnimatedSprite(frames, 20, demo.PingPong, 1)
	}
}
