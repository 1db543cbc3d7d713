// Command ddnnife is the CLI front end of the d-DNNF reasoner: model
// counting, query answering, Tseitin back-translation, and incremental
// clause insertion on compiled circuits.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("ddnnife failed")
		os.Exit(1)
	}
}
