package export

import (
	_ "embed"
	"fmt"

	"portfolioservice/internal/imageproc"
)

//go:embed assets/logo.png
var defaultLogo []byte

// DefaultLogo returns the footer logo shipped with the service.
func DefaultLogo() (*imageproc.Image, error) {
	logo, err := imageproc.Normalize(defaultLogo)
	if err != nil {
		return nil, fmt.Errorf("default logo: %w", err)
	}
	return logo, nil
}

// LoadLogo loads the footer logo from path, or the built-in one when path is empty.
func LoadLogo(path string) (*imageproc.Image, error) {
	if path == "" {
		return DefaultLogo()
	}
	logo, err := imageproc.LoadLogo(path)
	if err != nil {
		return nil, fmt.Errorf("logo %s: %w", path, err)
	}
	return logo, nil
}
