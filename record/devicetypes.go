package record

import "fmt"

// DeviceType identifies one of the ~20 known per-device actuator/sensor
// kinds a PCMI device record's device-type byte can carry.
type DeviceType byte

// The closed set of known device types.
const (
	DeviceAirSensor      DeviceType = 1
	DeviceHumiditySensor DeviceType = 2
	DeviceInlet          DeviceType = 3
	DeviceCurtain        DeviceType = 4
	DeviceRidgeVent      DeviceType = 5
	DeviceHeater         DeviceType = 6
	DeviceCoolPad        DeviceType = 7
	DeviceFan            DeviceType = 8
	DeviceTimed          DeviceType = 9
	DeviceFeedSensor     DeviceType = 10
	DeviceWaterSensor    DeviceType = 11
	DeviceStaticSensor   DeviceType = 12
	DeviceDigitalSensor  DeviceType = 13
	DevicePositionSensor DeviceType = 14
	DeviceChimney        DeviceType = 15
	DeviceSwitch         DeviceType = 16
	DeviceVariableHeater DeviceType = 17
	DeviceVFDFan         DeviceType = 18
	DeviceV10Lights      DeviceType = 19
	DeviceGasSensor      DeviceType = 20
)

var deviceTypeNames = map[DeviceType]string{
	DeviceAirSensor:      "AirSensor",
	DeviceHumiditySensor: "HumiditySensor",
	DeviceInlet:          "Inlet",
	DeviceCurtain:        "Curtain",
	DeviceRidgeVent:      "RidgeVent",
	DeviceHeater:         "Heater",
	DeviceCoolPad:        "CoolPad",
	DeviceFan:            "Fan",
	DeviceTimed:          "Timed",
	DeviceFeedSensor:     "FeedSensor",
	DeviceWaterSensor:    "WaterSensor",
	DeviceStaticSensor:   "StaticSensor",
	DeviceDigitalSensor:  "DigitalSensor",
	DevicePositionSensor: "PositionSensor",
	DeviceChimney:        "Chimney",
	DeviceSwitch:         "Switch",
	DeviceVariableHeater: "VariableHeater",
	DeviceVFDFan:         "VFDFan",
	DeviceV10Lights:      "V10Lights",
	DeviceGasSensor:      "GasSensor",
}

// String renders a DeviceType by name, or "DeviceType(N)" for unregistered codes.
func (t DeviceType) String() string {
	if name, ok := deviceTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("DeviceType(%d)", byte(t))
}
