package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/profile"

	"github.com/lixenwraith/lcd-invaders/audio"
	"github.com/lixenwraith/lcd-invaders/engine"
	"github.com/lixenwraith/lcd-invaders/input"
	"github.com/lixenwraith/lcd-invaders/lcd"
	"github.com/lixenwraith/lcd-invaders/render"
	"github.com/lixenwraith/lcd-invaders/systems"
	"github.com/lixenwraith/lcd-invaders/terminal"
)

func main() {
	// Panic Recovery: screen.Fini has already run from its defer, this
	// catches what it could not restore
	defer func() {
		if r := recover(); r != nil {
			crash("LCD-INVADERS CRASHED", r)
		}
	}()

	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "lcd-invaders: %v\n", err)
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "lcd-invaders: %v\n", err)
		os.Exit(1)
	}
}

func crash(what string, r any) {
	terminal.EmergencyReset(os.Stdout)
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s: %v\x1b[0m\r\n", what, r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}

// display is the LCD side of the program: the emulated controller that the
// terminal shows and the driver that writes to it (and to real pins)
type display struct {
	ctrl     *lcd.Controller
	driver   *lcd.Driver
	renderer *render.Renderer
}

func openDisplay(opts options) (*display, error) {
	ctrl := lcd.NewController()
	var bus lcd.Bus = ctrl

	names, useGPIO, err := opts.pinNames()
	if err != nil {
		return nil, err
	}
	if useGPIO {
		pins, err := lcd.OpenPinBus(names)
		if err != nil {
			return nil, fmt.Errorf("open gpio %s: %w", names, err)
		}
		bus = lcd.TeeBus{ctrl, pins}
		log.Printf("mirroring display on gpio %s", names)
	}

	drv := lcd.NewDriver(bus)
	if err := drv.Init(); err != nil {
		return nil, err
	}
	r := render.NewRenderer(drv)
	r.Init()
	return &display{ctrl: ctrl, driver: drv, renderer: r}, nil
}

func run(opts options) error {
	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	if opts.profile != "" {
		mode, err := profileMode(opts.profile)
		if err != nil {
			return err
		}
		defer profile.Start(mode, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet).Stop()
	}

	cfg, err := opts.engineConfig()
	if err != nil {
		return err
	}

	var delay engine.Delayer = engine.SleepDelay{}
	if opts.busyWait {
		delay = engine.NewSpinDelay()
	}

	disp, err := openDisplay(opts)
	if err != nil {
		return err
	}

	game, err := engine.NewGame(cfg, delay)
	if err != nil {
		return err
	}
	game.Watch(disp.driver)
	defer func() {
		log.Printf("display: %d instructions decoded", disp.ctrl.Writes())
	}()

	stick, err := openStick(opts)
	if err != nil {
		return err
	}
	if stick != nil {
		defer stick.Close()
		game.Watch(stick)
	}

	if opts.headless {
		return runHeadless(opts, game, disp, stick)
	}
	return runInteractive(opts, game, disp, stick)
}

// openStick opens the analog stick named by -adc, or returns nil
func openStick(opts options) (*input.ADCStick, error) {
	src, ok, err := opts.adcSource()
	if err != nil || !ok {
		return nil, err
	}
	stick, err := input.OpenADCStick(src)
	if err != nil {
		return nil, fmt.Errorf("open stick: %w", err)
	}
	return stick, nil
}

// runHeadless plays a fixed number of frames with a fixed stick, or the
// analog stick when one is open, and prints what the display shows at the end
func runHeadless(opts options, game *engine.Game, disp *display, stick *input.ADCStick) error {
	var axis input.AxisReader = input.FixedAxis(opts.stick)
	if stick != nil {
		axis = stick
	}
	systems.Register(game, axis)
	game.AddRenderer(disp.renderer)

	if err := game.RunFrames(opts.frames); err != nil {
		return err
	}

	fmt.Print(disp.ctrl.String())
	fmt.Printf("frames %d  shots %d  kills %d\n", game.State.Frame, game.State.Shots, game.State.Kills)
	return nil
}

func runInteractive(opts options, game *engine.Game, disp *display, stick *input.ADCStick) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	screen.HideCursor()

	panel := terminal.NewPanel(screen, disp.ctrl)

	// Sound is optional; the game runs silently if the device is unavailable
	buzzer := audio.NewBuzzer(audio.LoadAudioConfig())
	if err := buzzer.Initialize(); err != nil {
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
	}
	defer buzzer.Cleanup()
	if opts.mute {
		buzzer.ToggleMute()
	}
	panel.SetMuted(buzzer.Muted())
	game.SetSound(buzzer)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	joystick := input.NewKeyboardJoystick(opts.holdFrames)
	pump := input.NewEventPump(joystick, input.Handlers{
		Quit:       cancel,
		ToggleMute: func() { panel.SetMuted(buzzer.ToggleMute()) },
		Resize:     panel.Resize,
	}, 0)

	// Input polling uses a raw goroutine as it blocks on the terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crash("EVENT POLLER CRASHED", r)
			}
		}()
		pump.Poll(screen)
	}()

	// Keys still quit and mute when the analog stick steers
	game.AddSystem(pump)
	var axis input.AxisReader = joystick
	if stick != nil {
		axis = stick
	}
	systems.Register(game, axis)
	game.AddRenderer(disp.renderer)
	game.AddRenderer(panel)

	if opts.title {
		render.ShowTitle(disp.driver, render.DefaultTitle, time.Sleep, panel.Present)
		if err := disp.driver.Err(); err != nil {
			return fmt.Errorf("title: %w", err)
		}
	}

	if err := game.Run(ctx); err != nil {
		return err
	}
	render.ShowScore(disp.driver, game.State.Shots, game.State.Kills, render.ScoreHold, time.Sleep, panel.Present)
	return disp.driver.Err()
}
