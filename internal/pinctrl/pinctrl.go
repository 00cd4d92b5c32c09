// Package pinctrl shells out to the Raspberry Pi pinctrl tool.
package pinctrl

import (
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// PinState is one line of `pinctrl get <pin>`.
type PinState struct {
	Pin   int
	Mode  string // ip, op, no, a0..a5
	Pull  string // pu, pd, pn
	Drive string // dh, dl or empty for inputs
	Level string // hi, lo or --
}

// "17: op dh pn | hi // GPIO17 = output"
var getLine = regexp.MustCompile(`^(\d+):\s+(\S+)\s*(.*?)\s*\|\s*(\S+)`)

// run executes the pinctrl binary; swapped out in tests.
var run = func(args ...string) ([]byte, error) {
	return exec.Command("pinctrl", args...).CombinedOutput()
}

// ReadPin reports the mode, pull, drive and level of one GPIO.
func ReadPin(pin int) (*PinState, error) {
	out, err := run("get", strconv.Itoa(pin))
	if err != nil {
		return nil, fmt.Errorf("failed to execute pinctrl get %d: %w", pin, err)
	}
	return parsePinLine(pin, string(out))
}

func parsePinLine(pin int, out string) (*PinState, error) {
	m := getLine.FindStringSubmatch(strings.TrimSpace(out))
	if m == nil {
		return nil, fmt.Errorf("unexpected output from pinctrl get %d: %q", pin, out)
	}
	if n, _ := strconv.Atoi(m[1]); n != pin {
		return nil, fmt.Errorf("pinctrl get %d answered for pin %d", pin, n)
	}

	state := &PinState{Pin: pin, Mode: m[2], Level: m[4]}
	for _, opt := range strings.Fields(m[3]) {
		switch opt {
		case "pu", "pd", "pn":
			state.Pull = opt
		case "dh", "dl":
			state.Drive = opt
		}
	}
	return state, nil
}

// ReadLevel performs a fast read of the logic level of a pin using `pinctrl lev <pin>`
func ReadLevel(pin int) (bool, error) {
	out, err := run("lev", strconv.Itoa(pin))
	if err != nil {
		return false, fmt.Errorf("failed to read level for pin %d: %w", pin, err)
	}
	switch trimmed := strings.TrimSpace(string(out)); trimmed {
	case "1":
		return true, nil
	case "0":
		return false, nil
	default:
		return false, fmt.Errorf("unexpected output from pinctrl lev: %q", trimmed)
	}
}

// SetPin applies pinctrl set options to a GPIO, e.g. SetPin(17, "op", "pn", "dl").
func SetPin(pin int, opts ...string) error {
	args := append([]string{"set", strconv.Itoa(pin)}, opts...)
	out, err := run(args...)
	if err != nil {
		return fmt.Errorf("pinctrl set %d failed: %w (output: %s)", pin, err, strings.TrimSpace(string(out)))
	}
	return nil
}
