package format

import "fmt"

type Format int8

const (
	HTML Format = iota
	Csv
	Text
)

func UnmarshalText(text string) (Format, error) {
	switch text {
	case "html":
		return HTML, nil
	case "csv":
		return Csv, nil
	case "text":
		return Text, nil
	default:
		return 0, fmt.Errorf("invalid format: %q", text)
	}
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	switch f {
	case Csv:
		return "csv"
	case Text:
		return "txt"
	default:
		return "html"
	}
}
