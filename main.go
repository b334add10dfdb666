package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/springfieldsr/go-pong/config"
	"github.com/springfieldsr/go-pong/room"
	"github.com/springfieldsr/go-pong/wsserver"
)

func main() {
	configPath := flag.String("config", "pong.toml", "path to the TOML config file")
	envFile := flag.String("env", ".env", "path to the .env file")
	listen := flag.String("listen", "", "serve websockets on this address instead of running headless")
	frames := flag.Int("frames", -1, "frames to simulate when headless")
	autoplay := flag.Bool("autoplay", false, "let the autopilot play in every room")
	flag.Parse()

	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	if *frames >= 0 {
		cfg.Frames = *frames
	}
	if *autoplay {
		cfg.Autoplay = true
	}

	level, _ := cfg.Level()
	opts := room.Options{
		FrameInterval:  time.Duration(cfg.FrameMs) * time.Millisecond,
		BroadcastEvery: cfg.BroadcastEvery,
		Difficulty:     level,
		Seed:           cfg.Seed,
		Autoplay:       cfg.Autoplay,
	}

	if cfg.Listen == "" {
		runHeadless(opts, cfg.Frames, float64(cfg.FrameMs))
		return
	}

	if err := serve(cfg, opts); err != nil {
		log.Fatal(err)
	}
}

// runHeadless steps one autopiloted room at a fixed tick without a clock.
func runHeadless(opts room.Options, frames int, dt float64) {
	opts.Autoplay = true
	r := room.New("local", opts)

	log.Printf("Running %d frames headless at %.0fms per frame (%s)", frames, dt, opts.Difficulty)
	for i := 0; i < frames; i++ {
		r.Step(dt)
	}

	st := r.Stats()
	log.Printf("Done: %d frames, %d rounds, %d resets, %d wall bounces, %d paddle bounces",
		st.Frames, st.Rounds, st.Resets, st.WallBounces, st.PaddleBounces)
}

func serve(cfg config.Config, opts room.Options) error {
	rooms := room.NewManager(opts)
	defer rooms.Close()

	handler := wsserver.NewWebSocketHandler(rooms, cfg.SendQueue, cfg.FrameMs)
	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting at %s", cfg.Listen)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
