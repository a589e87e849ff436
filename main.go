package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/poetics22/glowjack-receiver/internal/canvas"
	"github.com/poetics22/glowjack-receiver/internal/feature"
	"github.com/poetics22/glowjack-receiver/internal/protocol"
	"github.com/poetics22/glowjack-receiver/internal/scheduler"
	"github.com/poetics22/glowjack-receiver/internal/source"
	"github.com/poetics22/glowjack-receiver/internal/ui"
	"github.com/poetics22/glowjack-receiver/internal/visualizer"
)

var (
	flagListen  string
	flagFPS     int
	flagStaleMs int
	flagViz     int
	flagSeed    int64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "glowjack",
		Short: "Audio-reactive terminal visualizer driven by a feature stream",
		Long: `glowjack renders audio-reactive animations in the terminal, driven by
precomputed analysis features (energy bands, beats, waveform/FFT snapshots)
arriving as newline-delimited JSON on stdin or a TCP socket.

Message schema:
  {"type":"features","data":{"energyLow":0.8,"isBeat":true,...}}
  {"type":"vizIndex","index":2}
  {"type":"ping"}           -> replied with {"type":"pong"}`,
		RunE: run,
	}

	rootCmd.Flags().StringVar(&flagListen, "listen", "", "TCP address for the feature stream (default: read stdin)")
	rootCmd.Flags().IntVar(&flagFPS, "fps", 30, "Frame cadence")
	rootCmd.Flags().IntVar(&flagStaleMs, "stale-ms", 200, "Silence window before features decay, in milliseconds")
	rootCmd.Flags().IntVar(&flagViz, "viz", 0, "Initial visualizer index (0 swarm, 1 tunnel, 2 ribbons, 3 grid)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Random seed for particle/ring init (0: time-based)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	state := feature.NewState()
	cv := canvas.New(80, 24) // placeholder until the first WindowSizeMsg
	sched := scheduler.New(state, cv, visualizer.Modes(rng), time.Duration(flagStaleMs)*time.Millisecond)
	sched.SetActive(flagViz)

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithFPS(flagFPS)}
	var src *source.LineSource
	if flagListen != "" {
		var err error
		src, err = source.Listen(flagListen)
		if err != nil {
			return fmt.Errorf("listen on %s: %w", flagListen, err)
		}
	} else {
		// Stdin carries the feature stream, so keyboard input has to come
		// from the controlling TTY instead.
		src = source.NewReader(os.Stdin)
		opts = append(opts, tea.WithInputTTY())
	}
	defer src.Stop()

	router := protocol.NewRouter(state, sched, src)
	model := ui.New(cv, sched, router, flagFPS)

	p := tea.NewProgram(model, opts...)
	src.Start(p)

	_, err := p.Run()
	return err
}
