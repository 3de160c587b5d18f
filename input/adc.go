package input

import (
	"fmt"
	"log"

	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/physic"

	"github.com/lixenwraith/lcd-invaders/constants"
)

// SampleReader is the part of analog.PinADC the stick needs
type SampleReader interface {
	Read() (analog.Sample, error)
}

// ADCAxis reads a potentiometer stick through an analog-to-digital converter
// and rescales its raw range onto the 10-bit axis range.
// A failed conversion is kept as a sticky error; from then on the axis
// reports centre so the player stops moving.
type ADCAxis struct {
	pin      SampleReader
	min, max int64
	volts    bool
	err      error
}

// NewADCAxis wraps pin whose raw readings span [min, max]
func NewADCAxis(pin SampleReader, min, max int32) (*ADCAxis, error) {
	if pin == nil {
		return nil, fmt.Errorf("adc axis: nil pin")
	}
	if max <= min {
		return nil, fmt.Errorf("adc axis: invalid raw range [%d, %d]", min, max)
	}
	return &ADCAxis{pin: pin, min: int64(min), max: int64(max)}, nil
}

// NewADCAxisFromPin uses the range advertised by the converter
func NewADCAxisFromPin(pin analog.PinADC) (*ADCAxis, error) {
	lo, hi := pin.Range()
	return NewADCAxis(pin, lo.Raw, hi.Raw)
}

// NewADCVoltageAxis scales the measured voltage instead of the raw code, so
// 0V is full left and full is full right whatever gain the converter uses
func NewADCVoltageAxis(pin SampleReader, full physic.ElectricPotential) (*ADCAxis, error) {
	if pin == nil {
		return nil, fmt.Errorf("adc axis: nil pin")
	}
	if full <= 0 {
		return nil, fmt.Errorf("adc axis: invalid full scale %s", full)
	}
	return &ADCAxis{pin: pin, min: 0, max: int64(full), volts: true}, nil
}

func (a *ADCAxis) ReadAxis() int {
	if a.err != nil {
		return constants.AxisCenter
	}
	s, err := a.pin.Read()
	if err != nil {
		a.err = fmt.Errorf("adc read: %w", err)
		log.Printf("%v", a.err)
		return constants.AxisCenter
	}
	if a.volts {
		return a.scale(int64(s.V))
	}
	return a.scale(int64(s.Raw))
}

// Err returns the first conversion failure
func (a *ADCAxis) Err() error {
	return a.err
}

func (a *ADCAxis) scale(v int64) int {
	if v <= a.min {
		return constants.AxisMin
	}
	if v >= a.max {
		return constants.AxisMax
	}
	return int((v - a.min) * constants.AxisMax / (a.max - a.min))
}
