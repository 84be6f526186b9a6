//go:build !linux

package backend

import "github.com/bnema/clickmate/internal/logger"

// newInjector selects the injection path for platforms without uinput.
func newInjector() injector {
	logger.Info("using robotgo injection backend")
	return robotgoInjector{}
}
