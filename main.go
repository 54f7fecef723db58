package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofrs/uuid"

	"lisa_evolver/logx"
	"lisa_evolver/tui"
)

func main() {
	cfg, err := ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logx.PrintConfig(cfg.Rows())

	runID := uuid.Must(uuid.NewV4()).String()
	kind := cfg.Kind()

	target, err := LoadTarget(cfg.Image, cfg.MaxSize)
	if err != nil {
		log.Fatalf("target: %v", err)
	}

	var seed int64
	if cfg.Seed == 0 {
		seed = time.Now().UnixNano()
		logx.LogConfig("seed: %d (time-based)", seed)
	} else {
		seed = cfg.Seed
		logx.LogConfig("seed: %d (user-provided)", seed)
	}
	rng := rand.New(rand.NewSource(seed))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logx.LogConfig("received %s, stopping after this round", sig)
		cancel()
	}()

	best := NewBestState(target.Width, target.Height)
	metrics := NewMetrics(runID, kind)
	history := NewHistory(cfg.HistorySize)
	server := NewServer(runID, kind, best, history, metrics)

	// Bind before the loop starts so a taken port fails fast.
	ln, err := server.Listen(cfg.ListenAddr())
	if err != nil {
		log.Fatalf("viewer: %v", err)
	}
	go func() {
		if err := server.Serve(ln); err != nil {
			logx.LogWeb("%s", logx.Errorf("server stopped: %v", err))
		}
	}()

	logx.LogStartBlock(runID, cfg.ViewerURL(), target.Width, target.Height, kind.String())

	if cfg.TUI {
		err := tui.Start(ctx, tui.TUIConfig{
			RunID:  runID,
			Shape:  kind.String(),
			Width:  target.Width,
			Height: target.Height,
			OnQuit: cancel,
		})
		if err != nil {
			logx.LogConfig("%s", logx.Warnf("%v", err))
		} else {
			logx.SetQuiet(true)
		}
	}

	evo := NewEvolver(target, best, kind, cfg.Workers, rng)
	evo.SetMetrics(metrics)
	evo.AddReporter(NewDashboardHooks(runID, kind, best))
	evo.AddReporter(history)
	evo.AddReporter(server)

	start := time.Now()
	_ = evo.Run(ctx)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.LogWeb("%s", logx.Errorf("shutdown: %v", err))
	}

	tui.Stop()
	logx.SetQuiet(false)

	snap := best.Snapshot()
	logx.LogSummary(snap.Round, snap.Score, len(snap.Candidate), time.Since(start))
}
