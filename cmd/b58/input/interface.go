package input

import (
	"fmt"
)

type Reader interface {
	Read(data string) ([]byte, error)
}

func NewReader(scheme string) (Reader, error) {
	if scheme == "hex" {
		return &HexReader{}, nil
	}

	if scheme == "ascii" {
		return &AsciiReader{}, nil
	}

	return nil, fmt.Errorf("unknown input scheme %q", scheme)
}
