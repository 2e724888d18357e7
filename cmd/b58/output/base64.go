package output

import "encoding/base64"

var _ Display = (*Base64Display)(nil)

type Base64Display struct {
}

func (b *Base64Display) Display(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
