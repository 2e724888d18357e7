package output

import (
	"fmt"
	"strings"
)

type Display interface {
	Display([]byte) string
}

func NewDisplay(scheme string) (Display, error) {
	if scheme == "hex" {
		return &HexDisplay{}, nil
	}

	if scheme == "ascii" {
		return &AsciiDisplay{}, nil
	}

	if scheme == "base64" {
		return &Base64Display{}, nil
	}

	if strings.HasPrefix(scheme, "proto") {
		display, err := newProtoDisplay(scheme)
		if err != nil {
			return nil, fmt.Errorf("proto display: %w", err)
		}
		return display, nil
	}

	return nil, fmt.Errorf("unknown display scheme %q", scheme)
}
