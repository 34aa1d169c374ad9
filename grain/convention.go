package grain

import "fmt"

// Convention selects how a ppm concentration is interpreted.
type Convention uint8

const (
	ByWeight Convention = iota
	ByNumber
)

func UnmarshalConvention(text string) (Convention, error) {
	switch text {
	case "w", "weight":
		return ByWeight, nil
	case "n", "number":
		return ByNumber, nil
	default:
		return 0, fmt.Errorf("invalid convention: %q", text)
	}
}

func (c Convention) String() string {
	switch c {
	case ByWeight:
		return "by weight"
	case ByNumber:
		return "by number"
	default:
		return "unknown"
	}
}
