package output

var _ Display = (*AsciiDisplay)(nil)

type AsciiDisplay struct {
}

func (a *AsciiDisplay) Display(data []byte) string {
	return string(data)
}
