package codec

import (
	"fmt"
	"os"
)

// File permission constants.
const (
	scoreFilePermission = 0o644
)

// SaveFile writes scores to path, creating or truncating it. A failure part
// way through may leave the file truncated.
func SaveFile(path string, scores []float64) error {
	// #nosec G304 -- path is chosen by the user on purpose
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, scoreFilePermission)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err := EncodeTo(f, scores); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// LoadFile reads and decodes the score file at path.
func LoadFile(path string) ([]float64, Report, error) {
	// #nosec G304 -- path is chosen by the user on purpose
	f, err := os.Open(path)
	if err != nil {
		return nil, Report{}, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() { _ = f.Close() }()

	return DecodeWithReport(f)
}
