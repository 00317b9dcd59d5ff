package action

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"smart_thermostat/internal/models"
)

// Reasons reported for payloads that decode but fail the schema.
const (
	ReasonUnknownType     = "Unknown action type"
	ReasonInvalidMode     = "Invalid HVAC mode"
	ReasonInvalidFan      = "Invalid fan value"
	ReasonInvalidTarget   = "Invalid setpoint target"
	ReasonInvalidValue    = "Invalid setpoint value"
	ReasonInvalidComfort  = "Invalid comfort"
	ReasonInvalidLocation = "Invalid location"
)

var errNotObject = errors.New("action payload is not a JSON object")

// Decode reads one action object. It fails only when data is not a JSON
// object; anything else that does not match the schema comes back as Unknown.
func Decode(data []byte) (Action, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", errNotObject, err)
	}
	if fields == nil {
		return nil, errNotObject
	}
	raw := json.RawMessage(append([]byte(nil), data...))

	typ, ok := stringField(fields, "type")
	if !ok {
		return Unknown{Reason: ReasonUnknownType, Raw: raw}, nil
	}
	unknown := func(reason string) (Action, error) {
		return Unknown{Type: Type(typ), Reason: reason, Raw: raw}, nil
	}

	switch Type(typ) {
	case TypeSetHvacMode:
		mode, _ := stringField(fields, "mode")
		if !models.HvacMode(mode).Valid() {
			return unknown(ReasonInvalidMode)
		}
		return SetHvacMode{Mode: models.HvacMode(mode)}, nil

	case TypeSetFan:
		fan, _ := stringField(fields, "fan")
		if !models.FanSetting(fan).Valid() {
			return unknown(ReasonInvalidFan)
		}
		return SetFan{Fan: models.FanSetting(fan)}, nil

	case TypeSetComfort:
		comfort, ok := stringField(fields, "comfort")
		if !ok || comfort == "" {
			return unknown(ReasonInvalidComfort)
		}
		return SetComfort{Comfort: comfort}, nil

	case TypeSetSetpoint:
		target, _ := stringField(fields, "target")
		if !models.SetpointTarget(target).Valid() {
			return unknown(ReasonInvalidTarget)
		}
		value, ok := intField(fields, "value")
		if !ok {
			return unknown(ReasonInvalidValue)
		}
		var comfort string
		if _, present := fields["comfort"]; present {
			c, ok := stringField(fields, "comfort")
			if !ok {
				return unknown(ReasonInvalidComfort)
			}
			comfort = c
		}
		return SetSetpoint{Target: models.SetpointTarget(target), Value: value, Comfort: comfort}, nil

	case TypeSetLocation:
		loc, _ := stringField(fields, "location")
		loc = strings.TrimSpace(loc)
		if loc == "" {
			return unknown(ReasonInvalidLocation)
		}
		return SetLocation{Location: loc}, nil
	}

	return unknown(ReasonUnknownType)
}

// stringField returns fields[key] when it is a JSON string.
func stringField(fields map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := fields[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// intField coerces fields[key] to an int. Numbers are truncated toward zero;
// strings must hold a decimal integer. Out-of-range values saturate at the
// int32 bounds, which lie far outside any setpoint and clamp the same way.
func intField(fields map[string]json.RawMessage, key string) (int, bool) {
	raw, ok := fields[key]
	if !ok {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return saturate(f)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return saturate(float64(n))
}

func saturate(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(math.Max(math.Min(f, math.MaxInt32), math.MinInt32)), true
}
