package main

import (
	"os"

	"github.com/TomNouri3/ESPL/pkg/lib/jobs"
	"github.com/TomNouri3/ESPL/pkg/lib/launcher"
	"github.com/TomNouri3/ESPL/pkg/lib/parser"
	"github.com/TomNouri3/ESPL/pkg/lib/shell"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var debug bool
	var oneShot string

	root := &cobra.Command{
		Use:           "gosh",
		Short:         "Interactive job-control shell",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				jobs.EnableLogging(os.Stderr)
				launcher.EnableLogging(os.Stderr)
			}

			sess := shell.NewSession()

			if oneShot != "" {
				rec, err := parser.Parse(oneShot)
				if err != nil {
					return err
				}
				if rec == nil {
					return nil
				}
				return sess.Execute(rec)
			}

			return sess.Run()
		},
	}

	root.Flags().BoolVarP(&debug, "debug", "d", false, "log job lifecycle events to stderr")
	root.Flags().StringVarP(&oneShot, "command", "c", "", "execute one command line and exit")

	return root
}
