package ocr

// ExtractError is returned by Service.ExtractText when the engine, or the
// image decoding in front of it, fails.
type ExtractError struct {
	Provider string
	Cause    error
}

func (e *ExtractError) Error() string {
	return "OCR Error: " + e.Cause.Error()
}

func (e *ExtractError) Unwrap() error {
	return e.Cause
}
