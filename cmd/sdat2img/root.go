package main

import (
	"os"

	"github.com/sdatutils/sdat2img"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sdat2img",
		Short: "Convert Android block-based OTA payloads into raw filesystem images.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				sdat2img.Log.SetOutput(os.Stderr)
				sdat2img.Log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print every operation while converting")
	return cmd
}
