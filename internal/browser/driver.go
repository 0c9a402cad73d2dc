package browser

import (
	"fmt"

	"github.com/adyen/storefront-ui/internal/config"
)

// Open launches the driver backend named by cfg.Driver
func Open(cfg *config.BrowserConfig) (Driver, error) {
	switch cfg.Driver {
	case config.DriverPlaywright, "":
		d, err := NewPlaywrightDriver(cfg)
		if err != nil {
			return nil, err
		}
		return d, nil
	case config.DriverRod:
		d, err := NewRodDriver(cfg)
		if err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}
