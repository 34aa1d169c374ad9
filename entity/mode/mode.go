package mode

import "fmt"

type Mode uint8

const (
	Streaks Mode = iota
	Grain
)

func UnmarshalText(text string) (Mode, error) {
	switch text {
	case "s":
		return Streaks, nil
	case "g":
		return Grain, nil
	default:
		return 0, fmt.Errorf("invalid mode: %q", text)
	}
}
