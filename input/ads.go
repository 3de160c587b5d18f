package input

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ads1x15"
	"periph.io/x/host/v3"
)

// Converter settings for a potentiometer stick powered from the 3.3V rail
const (
	StickFullScale  = 3300 * physic.MilliVolt
	StickSampleRate = 250 * physic.Hertz
)

var adsChannels = [4]ads1x15.Channel{
	ads1x15.Channel0,
	ads1x15.Channel1,
	ads1x15.Channel2,
	ads1x15.Channel3,
}

// ADCSource names a single-ended converter input
type ADCSource struct {
	Chip    string // ads1115 or ads1015
	Channel int
	Bus     string // empty selects the first registered I2C bus
}

// ParseADCSource reads "chip:channel[@bus]", e.g. "ads1115:0" or
// "ads1015:2@/dev/i2c-1"
func ParseADCSource(s string) (ADCSource, error) {
	var src ADCSource
	spec, bus, _ := strings.Cut(s, "@")
	src.Bus = bus

	chip, ch, ok := strings.Cut(spec, ":")
	if !ok {
		return src, fmt.Errorf("adc %q: want chip:channel", s)
	}
	src.Chip = strings.ToLower(chip)
	if src.Chip != "ads1115" && src.Chip != "ads1015" {
		return src, fmt.Errorf("adc %q: unsupported converter %q", s, chip)
	}
	n, err := strconv.Atoi(ch)
	if err != nil || n < 0 || n >= len(adsChannels) {
		return src, fmt.Errorf("adc %q: channel must be 0-%d", s, len(adsChannels)-1)
	}
	src.Channel = n
	return src, nil
}

func (s ADCSource) String() string {
	if s.Bus == "" {
		return fmt.Sprintf("%s:%d", s.Chip, s.Channel)
	}
	return fmt.Sprintf("%s:%d@%s", s.Chip, s.Channel, s.Bus)
}

// ADCStick is an ADCAxis on an ADS1x15 converter; Close releases the
// converter and its bus
type ADCStick struct {
	*ADCAxis
	pin ads1x15.PinADC
	bus i2c.BusCloser
}

// OpenADCStick initializes the host drivers, opens the bus and configures
// the channel for single-shot conversions up to StickFullScale
func OpenADCStick(src ADCSource) (*ADCStick, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}
	bus, err := i2creg.Open(src.Bus)
	if err != nil {
		return nil, fmt.Errorf("open i2c %q: %w", src.Bus, err)
	}

	var dev *ads1x15.Dev
	switch src.Chip {
	case "ads1115":
		dev, err = ads1x15.NewADS1115(bus, &ads1x15.DefaultOpts)
	case "ads1015":
		dev, err = ads1x15.NewADS1015(bus, &ads1x15.DefaultOpts)
	default:
		err = fmt.Errorf("unsupported converter %q", src.Chip)
	}
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("adc %s: %w", src, err)
	}

	pin, err := dev.PinForChannel(adsChannels[src.Channel], StickFullScale, StickSampleRate, ads1x15.BestQuality)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("adc %s: %w", src, err)
	}
	axis, err := NewADCVoltageAxis(pin, StickFullScale)
	if err != nil {
		pin.Halt()
		bus.Close()
		return nil, err
	}

	log.Printf("analog stick on %s", src)
	return &ADCStick{ADCAxis: axis, pin: pin, bus: bus}, nil
}

func (s *ADCStick) Close() error {
	return errors.Join(s.pin.Halt(), s.bus.Close())
}
