package output

import "encoding/hex"

var _ Display = (*HexDisplay)(nil)

type HexDisplay struct {
}

func (h *HexDisplay) Display(data []byte) string {
	return hex.EncodeToString(data)
}
