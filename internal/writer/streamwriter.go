package writer

import "io"

// StreamWriter writes documents to an io.Writer such as standard output.
type StreamWriter struct {
	W io.Writer
}

// WriteDocument writes buf in a single call.
func (w *StreamWriter) WriteDocument(buf []byte) error {
	_, err := w.W.Write(buf)
	return err
}

// For returns the sink for path: a StreamWriter on stdout for "" and "-",
// a FileWriter otherwise.
func For(path string, stdout io.Writer) Sink {
	if path == "" || path == "-" {
		return &StreamWriter{W: stdout}
	}
	return &FileWriter{Path: path}
}
