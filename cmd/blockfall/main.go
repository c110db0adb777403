// Command blockfall plays the falling-block game in a window or a terminal, or runs a
// headless stress game with a random player.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("blockfall failed")
		os.Exit(1)
	}
}
