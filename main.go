package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/riftpulse/audio"
	"github.com/lixenwraith/riftpulse/component"
	"github.com/lixenwraith/riftpulse/core"
	"github.com/lixenwraith/riftpulse/engine"
	"github.com/lixenwraith/riftpulse/event"
	"github.com/lixenwraith/riftpulse/journal"
	"github.com/lixenwraith/riftpulse/parameter"
	"github.com/lixenwraith/riftpulse/render"
	"github.com/lixenwraith/riftpulse/system"
)

// Sim is the interactive anomaly field demo
type Sim struct {
	screen tcell.Screen
	world  *engine.World
	clock  *engine.PausableClock

	anomalies     *system.AnomalySystem
	renderer      *render.Renderer
	sounds        *audio.SoundManager
	logFile       *os.File
	lastEvent     string
	lastUpdate    time.Time
	shutdownCount int
}

// NewSim initializes the screen, audio, and simulation systems
func NewSim() (*Sim, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	logFile, err := os.Create("riftpulse.log")
	if err != nil {
		screen.Fini()
		return nil, err
	}

	world := engine.NewWorld()
	clock := engine.NewPausableClock()
	jrnl := journal.New(logFile)

	sounds := audio.NewSoundManager()
	var player core.SoundPlayer
	if err := sounds.Initialize(); err == nil {
		player = sounds
	}

	anomalies := system.NewAnomalySystem(world, clock, core.DefaultRandSource(), jrnl, player)
	world.AddSystem(anomalies)
	world.AddSystem(system.NewPulseSystem(world, clock))
	world.AddSystem(system.NewSupercriticalSystem(world, clock, anomalies))

	s := &Sim{
		screen:     screen,
		world:      world,
		clock:      clock,
		anomalies:  anomalies,
		renderer:   render.NewRenderer(world),
		sounds:     sounds,
		logFile:    logFile,
		lastUpdate: clock.Now(),
	}
	s.spawn()
	return s, nil
}

func (s *Sim) spawn() {
	cfg := component.DefaultAnomalyConfig()
	if _, err := s.anomalies.Spawn(cfg, 0.6, 0.1, 1.0); err != nil {
		s.lastEvent = err.Error()
	}
}

// first returns the lowest live anomaly id (0 if none)
func (s *Sim) first() core.Entity {
	entities := s.renderer.Entities()
	if len(entities) == 0 {
		return 0
	}
	return entities[0]
}

func (s *Sim) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}

		switch ev.Rune() {
		case 'q':
			return false
		case 's':
			s.spawn()
		case 'd':
			s.anomalies.ChangeStability(s.first(), -0.1)
		case 'g':
			s.anomalies.ChangeStability(s.first(), +0.1)
		case 'h':
			s.anomalies.ChangeHealth(s.first(), -0.2)
		case 'v':
			s.anomalies.ChangeSeverity(s.first(), +0.2)
		case 'p':
			if s.clock.IsPaused() {
				s.clock.Resume()
			} else {
				s.clock.Pause()
			}
		case 'm':
			s.sounds.SetMuted(!s.sounds.Muted())
		}

	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}

func (s *Sim) step() {
	now := s.clock.Now()
	dt := now.Sub(s.lastUpdate)
	s.lastUpdate = now

	if !s.clock.IsPaused() && dt > 0 {
		s.world.Update(dt)
	}

	for _, ev := range s.world.ConsumeEvents() {
		s.lastEvent = fmt.Sprintf("#%d %s", ev.Entity, ev.Type)
		if ev.Type == event.EventShutdown {
			s.shutdownCount++
		}
	}
}

func (s *Sim) draw() {
	s.screen.Clear()

	drawLine(s.screen, 0, tcell.StyleDefault.Bold(true),
		"riftpulse — s:spawn d:destabilize g:stabilize h:harm v:sever p:pause m:mute q:quit")

	rows := s.renderer.Draw(s.screen, 2)

	status := fmt.Sprintf("live: %d  ended: %d  last: %s", s.renderer.Count(), s.shutdownCount, s.lastEvent)
	if s.clock.IsPaused() {
		status += "  [PAUSED]"
	}
	if s.sounds.Muted() {
		status += "  [MUTED]"
	}
	drawLine(s.screen, 3+rows, tcell.StyleDefault.Dim(true), status)

	s.screen.Show()
}

func (s *Sim) run() {
	ticker := time.NewTicker(parameter.SimulationStep)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			events <- s.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-events:
			if !s.handleInput(ev) {
				return
			}
		case <-ticker.C:
			s.step()
			s.draw()
		}
	}
}

func (s *Sim) cleanup() {
	s.sounds.Cleanup()
	s.screen.Fini()
	s.logFile.Close()
}

func drawLine(screen tcell.Screen, y int, style tcell.Style, text string) {
	for i, ch := range text {
		screen.SetContent(i, y, ch, nil, style)
	}
}

func main() {
	sim, err := NewSim()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer sim.cleanup()

	sim.run()
}
