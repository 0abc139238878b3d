package pipeline

import (
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// PrintBanner logs the program name and version unless quiet output is requested.
func PrintBanner(logger *log.Logger, quiet bool, version, commit, date string) {
	if quiet {
		return
	}
	logger.Info("chippy - CHIP-8 emulator", log.String("version", buildinfo.Version(version, commit, date)))
}
