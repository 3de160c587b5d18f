package main

import (
	"flag"
	"fmt"
	"math"
	"time"

	"github.com/pkg/profile"

	"github.com/lixenwraith/lcd-invaders/constants"
	"github.com/lixenwraith/lcd-invaders/engine"
	"github.com/lixenwraith/lcd-invaders/input"
	"github.com/lixenwraith/lcd-invaders/lcd"
)

// options holds the parsed command line
type options struct {
	debug    bool
	mute     bool
	title    bool
	busyWait bool

	framePeriod time.Duration
	spawnPeriod uint
	movePeriod  uint
	holdFrames  int

	headless bool
	frames   int
	stick    int

	gpio    string
	adc     string
	profile string
}

func parseOptions(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("lcd-invaders", flag.ContinueOnError)

	fs.BoolVar(&o.debug, "debug", false, "write a debug log to "+logDir+"/"+logFileName)
	fs.BoolVar(&o.mute, "mute", false, "start with sound off (toggle with m)")
	fs.BoolVar(&o.title, "title", true, "show the scrolling title before the game")
	fs.BoolVar(&o.busyWait, "busywait", false, "spin between frames instead of sleeping")

	fs.DurationVar(&o.framePeriod, "frame", constants.FramePeriod, "minimum gap between frames")
	fs.UintVar(&o.spawnPeriod, "spawn", constants.SpawnPeriod, "frames between fire/spawn attempts")
	fs.UintVar(&o.movePeriod, "move", constants.MovePeriod, "frames between movement steps")
	fs.IntVar(&o.holdFrames, "hold", input.DefaultHoldFrames, "frames a key press keeps the stick deflected")

	fs.BoolVar(&o.headless, "headless", false, "run without a terminal and print the final display")
	fs.IntVar(&o.frames, "frames", 1000, "frames to run in headless mode")
	fs.IntVar(&o.stick, "stick", constants.AxisCenter, "fixed stick sample (0-1023) in headless mode")

	fs.StringVar(&o.gpio, "gpio", "", `mirror onto a real display wired to "RS,E,D4,D5,D6,D7", or "default" for `+lcd.DefaultPinNames.String())
	fs.StringVar(&o.adc, "adc", "", `read the stick from an I2C converter "chip:channel[@bus]", e.g. ads1115:0`)
	fs.StringVar(&o.profile, "profile", "", "write a profile: cpu, mem, allocs, block, mutex, trace")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if o.headless && o.frames < 0 {
		return o, fmt.Errorf("-frames must not be negative")
	}
	if o.adc != "" {
		if _, err := input.ParseADCSource(o.adc); err != nil {
			return o, err
		}
	}
	if o.stick < constants.AxisMin || o.stick > constants.AxisMax {
		return o, fmt.Errorf("-stick %d out of range [%d, %d]", o.stick, constants.AxisMin, constants.AxisMax)
	}
	return o, nil
}

// engineConfig converts the loop flags, rejecting periods a 16-bit frame
// counter cannot express
func (o options) engineConfig() (engine.Config, error) {
	if o.spawnPeriod > math.MaxUint16 || o.movePeriod > math.MaxUint16 {
		return engine.Config{}, fmt.Errorf("periods must be at most %d frames", math.MaxUint16)
	}
	cfg := engine.Config{
		FramePeriod: o.framePeriod,
		SpawnPeriod: uint16(o.spawnPeriod),
		MovePeriod:  uint16(o.movePeriod),
	}
	if err := cfg.Validate(); err != nil {
		return engine.Config{}, err
	}
	return cfg, nil
}

// pinNames resolves the -gpio value; ok is false when GPIO is not requested
func (o options) pinNames() (names lcd.PinNames, ok bool, err error) {
	switch o.gpio {
	case "":
		return lcd.PinNames{}, false, nil
	case "default":
		return lcd.DefaultPinNames, true, nil
	}
	names, err = lcd.ParsePinNames(o.gpio)
	return names, err == nil, err
}

// adcSource resolves the -adc value; ok is false when the keyboard or fixed
// stick is used instead
func (o options) adcSource() (src input.ADCSource, ok bool, err error) {
	if o.adc == "" {
		return input.ADCSource{}, false, nil
	}
	src, err = input.ParseADCSource(o.adc)
	return src, err == nil, err
}

// profileMode maps the -profile value to a pkg/profile option
func profileMode(mode string) (func(*profile.Profile), error) {
	switch mode {
	case "cpu":
		return profile.CPUProfile, nil
	case "mem":
		return profile.MemProfile, nil
	case "allocs":
		return profile.MemProfileAllocs, nil
	case "block":
		return profile.BlockProfile, nil
	case "mutex":
		return profile.MutexProfile, nil
	case "trace":
		return profile.TraceProfile, nil
	}
	return nil, fmt.Errorf("unknown profile mode %q", mode)
}
