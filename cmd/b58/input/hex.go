package input

import (
	"encoding/hex"
	"fmt"
	"strings"
)

var _ Reader = (*HexReader)(nil)

type HexReader struct {
}

func (h *HexReader) Read(data string) ([]byte, error) {
	out, err := hex.DecodeString(strings.TrimPrefix(data, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return out, nil
}
