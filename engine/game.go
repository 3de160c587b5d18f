package engine

import (
	"context"
	"fmt"
	"log"
)

// System is one step of the update stage, run in registration order
type System interface {
	Update(s *GameState)
}

// FrameRenderer presents the state after the update stage
type FrameRenderer interface {
	Render(s *GameState)
}

// Sound receives gameplay cues
type Sound interface {
	PlayFire()
	PlayHit()
}

// ErrorSource exposes a sticky I/O error of a hardware collaborator
type ErrorSource interface {
	Err() error
}

type silentSound struct{}

func (silentSound) PlayFire() {}
func (silentSound) PlayHit()  {}

// Game runs the fixed-tick loop: update systems, render, delay, count
type Game struct {
	State *GameState

	config    Config
	systems   []System
	renderers []FrameRenderer
	watched   []ErrorSource
	sound     Sound
	delay     Delayer
}

// NewGame creates a game with empty pools
func NewGame(config Config, delay Delayer) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if delay == nil {
		delay = SleepDelay{}
	}
	return &Game{
		State:  NewGameState(),
		config: config,
		sound:  silentSound{},
		delay:  delay,
	}, nil
}

// Config returns the loop tunables
func (g *Game) Config() Config {
	return g.config
}

// AddSystem appends a system to the update stage
func (g *Game) AddSystem(sys System) {
	g.systems = append(g.systems, sys)
}

// AddRenderer appends a renderer; renderers run in order after all systems
func (g *Game) AddRenderer(r FrameRenderer) {
	g.renderers = append(g.renderers, r)
}

// Watch makes Run stop with src's error once it reports one
func (g *Game) Watch(src ErrorSource) {
	g.watched = append(g.watched, src)
}

// SetSound installs the cue sink; nil silences the game
func (g *Game) SetSound(s Sound) {
	if s == nil {
		s = silentSound{}
	}
	g.sound = s
}

// Step runs the update and render stages of the current frame
// The frame counter is not advanced; Run does that after the delay
func (g *Game) Step() {
	g.State.Events.Reset()

	for _, sys := range g.systems {
		sys.Update(g.State)
	}
	for _, r := range g.renderers {
		r.Render(g.State)
	}

	if g.State.Events.Fired != NoSlot {
		g.sound.PlayFire()
	}
	if len(g.State.Events.Hits()) > 0 {
		g.sound.PlayHit()
	}
}

// Tick runs one full frame including the delay and frame increment
func (g *Game) Tick() error {
	g.Step()
	if err := g.checkErrors(); err != nil {
		return err
	}
	g.delay.Delay(g.config.FramePeriod)
	g.State.Frame++
	return nil
}

// Run loops until ctx is cancelled or a watched collaborator fails
func (g *Game) Run(ctx context.Context) error {
	log.Printf("game loop started: frame period %v, spawn every %d, move every %d",
		g.config.FramePeriod, g.config.SpawnPeriod, g.config.MovePeriod)
	defer func() {
		log.Printf("game loop stopped at frame %d: shots=%d kills=%d", g.State.Frame, g.State.Shots, g.State.Kills)
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		if err := g.Tick(); err != nil {
			return err
		}
	}
}

// RunFrames runs exactly n frames, ignoring cancellation
func (g *Game) RunFrames(n int) error {
	for i := 0; i < n; i++ {
		if err := g.Tick(); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) checkErrors() error {
	for _, src := range g.watched {
		if err := src.Err(); err != nil {
			return fmt.Errorf("frame %d: %w", g.State.Frame, err)
		}
	}
	return nil
}
