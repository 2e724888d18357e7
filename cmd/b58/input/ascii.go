package input

var _ Reader = (*AsciiReader)(nil)

type AsciiReader struct {
}

func (a *AsciiReader) Read(data string) ([]byte, error) {
	return []byte(data), nil
}
