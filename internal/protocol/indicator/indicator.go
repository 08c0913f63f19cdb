package indicator

import (
	"errors"

	"enigma/internal/domain"
	"enigma/internal/protocol/machine"
)

// ErrShortFrame is returned when a frame cannot hold two full indicator
// prefixes and at least one body character.
var ErrShortFrame = errors.New("frame too short for indicator prefixes and body")

// EncodeFramed produces the transmitted frame for plaintext under the day
// setting, using the operator-chosen indicatorIndicator and messageIndicator
// (one letter per rotor each).
func EncodeFramed(plaintext, indicatorIndicator, messageIndicator string, day domain.EnigmaSetting) (string, error) {
	indicatorSetting, err := machine.WithIndicator(day, indicatorIndicator)
	if err != nil {
		return "", err
	}
	messageSetting, err := machine.WithIndicator(indicatorSetting, messageIndicator)
	if err != nil {
		return "", err
	}

	prefix1, err := machine.Encode(indicatorIndicator, day)
	if err != nil {
		return "", err
	}
	prefix2, err := machine.Encode(messageIndicator, indicatorSetting)
	if err != nil {
		return "", err
	}
	body, err := machine.Encode(plaintext, messageSetting)
	if err != nil {
		return "", err
	}
	return prefix1 + prefix2 + body, nil
}

// DecodeFramed peels the two indicator prefixes off frame and returns the
// plaintext body.
//
// The first rotor-count characters decode under the day setting to the
// indicator-indicator; the next rotor-count characters decode under the
// setting keyed by it to the message indicator; the remainder decodes under
// the setting keyed by the message indicator.
func DecodeFramed(frame string, day domain.EnigmaSetting) (string, error) {
	r := len(day.Rotors)
	if len(frame) <= 2*r {
		return "", ErrShortFrame
	}

	indicatorIndicator, err := machine.Encode(frame[:r], day)
	if err != nil {
		return "", err
	}
	indicatorSetting, err := machine.WithIndicator(day, indicatorIndicator)
	if err != nil {
		return "", err
	}

	messageIndicator, err := machine.Encode(frame[r:2*r], indicatorSetting)
	if err != nil {
		return "", err
	}
	messageSetting, err := machine.WithIndicator(indicatorSetting, messageIndicator)
	if err != nil {
		return "", err
	}

	return machine.Encode(frame[2*r:], messageSetting)
}
