package record

import "github.com/greenbridge-ag/go-pcmi/hexcursor"

// deviceStrategy is the pair of decoders a device type registers: one for
// its configuration record, one for its runtime-state record.
type deviceStrategy interface {
	parseParameters(cur *hexcursor.Cursor, length int) (any, error)
	parseVariables(cur *hexcursor.Cursor, length int) (any, error)
}

// deviceRegistry is the process-wide, read-only-after-construction map from
// device-type code to decoder pair. Registration happens
// once below, at package init, and is not expected (or safe) concurrently.
var deviceRegistry = map[DeviceType]deviceStrategy{}

func registerDevice(t DeviceType, s deviceStrategy) {
	deviceRegistry[t] = s
}

func lookupDevice(t DeviceType) (deviceStrategy, bool) {
	s, ok := deviceRegistry[t]
	return s, ok
}

func init() {
	registerDevice(DeviceAirSensor, sensorStrategy{})
	registerDevice(DeviceHumiditySensor, sensorStrategy{})
	registerDevice(DeviceInlet, positionStrategy{})
	registerDevice(DeviceCurtain, positionStrategy{})
	registerDevice(DeviceRidgeVent, positionStrategy{})
	registerDevice(DeviceHeater, actuatorStrategy{})
	registerDevice(DeviceCoolPad, actuatorStrategy{})
	registerDevice(DeviceFan, actuatorStrategy{})
	registerDevice(DeviceTimed, timedStrategy{})
	registerDevice(DeviceFeedSensor, counterStrategy{})
	registerDevice(DeviceWaterSensor, counterStrategy{})
	registerDevice(DeviceStaticSensor, sensorStrategy{})
	registerDevice(DeviceDigitalSensor, digitalStrategy{})
	registerDevice(DevicePositionSensor, positionStrategy{})
	registerDevice(DeviceChimney, positionStrategy{})
	registerDevice(DeviceSwitch, actuatorStrategy{})
	registerDevice(DeviceVariableHeater, speedStrategy{})
	registerDevice(DeviceVFDFan, speedStrategy{})
	registerDevice(DeviceV10Lights, speedStrategy{})
	registerDevice(DeviceGasSensor, sensorStrategy{})
}

// --- sensorStrategy: air/humidity/static-pressure/gas sensors ---
// A 16-bit raw reading sharing Temperature's NaN-preserving sentinel
// (resolved open question: applying the sentinel
// uniformly to every 16-bit sensor field, not just literal temperatures).

type SensorParameters struct {
	AlarmLow, AlarmHigh Temperature
}

type SensorVariables struct {
	Value Temperature
}

type sensorStrategy struct{}

func (sensorStrategy) parseParameters(cur *hexcursor.Cursor, _ int) (any, error) {
	lo, err := cur.ReadInt16()
	if err != nil {
		return nil, err
	}
	hi, err := cur.ReadInt16()
	if err != nil {
		return nil, err
	}
	return SensorParameters{AlarmLow: NewTemperature(lo), AlarmHigh: NewTemperature(hi)}, nil
}

func (sensorStrategy) parseVariables(cur *hexcursor.Cursor, _ int) (any, error) {
	v, err := cur.ReadInt16()
	if err != nil {
		return nil, err
	}
	return SensorVariables{Value: NewTemperature(v)}, nil
}

// --- positionStrategy: inlet/curtain/ridge vent/position sensor/chimney ---

type PositionParameters struct {
	MinPct, MaxPct byte
}

type PositionVariables struct {
	PositionPct byte
}

type positionStrategy struct{}

func (positionStrategy) parseParameters(cur *hexcursor.Cursor, _ int) (any, error) {
	min, err := cur.ReadByte()
	if err != nil {
		return nil, err
	}
	max, err := cur.ReadByte()
	if err != nil {
		return nil, err
	}
	return PositionParameters{MinPct: min, MaxPct: max}, nil
}

func (positionStrategy) parseVariables(cur *hexcursor.Cursor, _ int) (any, error) {
	pos, err := cur.ReadByte()
	if err != nil {
		return nil, err
	}
	return PositionVariables{PositionPct: pos}, nil
}

// --- actuatorStrategy: heater/cool pad/fan/switch (binary on/off) ---

type ActuatorParameters struct {
	Enabled           bool
	StageDelaySeconds byte
}

type ActuatorVariables struct {
	On bool
}

type actuatorStrategy struct{}

func (actuatorStrategy) parseParameters(cur *hexcursor.Cursor, _ int) (any, error) {
	flags, err := cur.ReadByte()
	if err != nil {
		return nil, err
	}
	delay, err := cur.ReadByte()
	if err != nil {
		return nil, err
	}
	return ActuatorParameters{Enabled: flags&0x01 != 0, StageDelaySeconds: delay}, nil
}

func (actuatorStrategy) parseVariables(cur *hexcursor.Cursor, _ int) (any, error) {
	flags, err := cur.ReadByte()
	if err != nil {
		return nil, err
	}
	return ActuatorVariables{On: flags&0x01 != 0}, nil
}

// --- speedStrategy: variable heater/VFD fan/V10 lights (variable output) ---

type SpeedParameters struct {
	MinPct, MaxPct byte
}

type SpeedVariables struct {
	SpeedPct byte
}

type speedStrategy struct{}

func (speedStrategy) parseParameters(cur *hexcursor.Cursor, _ int) (any, error) {
	min, err := cur.ReadByte()
	if err != nil {
		return nil, err
	}
	max, err := cur.ReadByte()
	if err != nil {
		return nil, err
	}
	return SpeedParameters{MinPct: min, MaxPct: max}, nil
}

func (speedStrategy) parseVariables(cur *hexcursor.Cursor, _ int) (any, error) {
	speed, err := cur.ReadByte()
	if err != nil {
		return nil, err
	}
	return SpeedVariables{SpeedPct: speed}, nil
}

// --- timedStrategy: timed outputs (on/off duty cycle) ---

type TimedParameters struct {
	OnSeconds, OffSeconds uint16
}

type TimedVariables struct {
	Active bool
}

type timedStrategy struct{}

func (timedStrategy) parseParameters(cur *hexcursor.Cursor, _ int) (any, error) {
	on, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	off, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	return TimedParameters{OnSeconds: on, OffSeconds: off}, nil
}

func (timedStrategy) parseVariables(cur *hexcursor.Cursor, _ int) (any, error) {
	flags, err := cur.ReadByte()
	if err != nil {
		return nil, err
	}
	return TimedVariables{Active: flags&0x01 != 0}, nil
}

// --- counterStrategy: feed/water sensors (pulse counters) ---

type CounterParameters struct {
	PulsesPerUnit uint16
}

type CounterVariables struct {
	Count uint32
}

type counterStrategy struct{}

func (counterStrategy) parseParameters(cur *hexcursor.Cursor, _ int) (any, error) {
	ppu, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	return CounterParameters{PulsesPerUnit: ppu}, nil
}

func (counterStrategy) parseVariables(cur *hexcursor.Cursor, _ int) (any, error) {
	count, err := cur.ReadUint32()
	if err != nil {
		return nil, err
	}
	return CounterVariables{Count: count}, nil
}

// --- digitalStrategy: digital (binary) sensors ---

type DigitalSensorParameters struct {
	Invert bool
}

type DigitalSensorVariables struct {
	State bool
}

type digitalStrategy struct{}

func (digitalStrategy) parseParameters(cur *hexcursor.Cursor, _ int) (any, error) {
	flags, err := cur.ReadByte()
	if err != nil {
		return nil, err
	}
	return DigitalSensorParameters{Invert: flags&0x01 != 0}, nil
}

func (digitalStrategy) parseVariables(cur *hexcursor.Cursor, _ int) (any, error) {
	flags, err := cur.ReadByte()
	if err != nil {
		return nil, err
	}
	return DigitalSensorVariables{State: flags&0x01 != 0}, nil
}
