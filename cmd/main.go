// Command main validates a shared-task submission directory against the
// organizer-provided inputs before upload.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"terminology-submission-validator/internal/app"
	"terminology-submission-validator/internal/config"
	"terminology-submission-validator/internal/models"
	"terminology-submission-validator/internal/pipeline"
	"terminology-submission-validator/internal/report"
)

// errValidation marks a validation failure already reported to the user,
// distinguishing exit code 1 from usage and setup errors (exit code 2).
var errValidation = errors.New("validation failed")

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errValidation) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func newRootCmd() *cobra.Command {
	var (
		flagTrack    int
		flagInputs   string
		flagOutputs  string
		flagSchedule string
	)

	cmd := &cobra.Command{
		Use:   "terminology-validator",
		Short: "Validate terminology shared-task submission files",
		Long: `Validates that submission files conform to the task naming scheme, are
consistent with the provided input files, and contain per-record data
matching the expected schema. All files for one track must reside in one
flat directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			trk, err := models.ParseTrack(flagTrack)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			application := app.New(cfg)

			sched, err := application.Schedule(flagSchedule)
			if err != nil {
				return err
			}

			runner := pipeline.New(pipeline.Options{
				Outputs:  os.DirFS(flagOutputs),
				Inputs:   os.DirFS(flagInputs),
				Track:    trk,
				Schedule: sched,
				Reporter: report.New(cmd.OutOrStdout(), application.Logger),
				Logger:   application.Logger,
			})
			if err := runner.Run(cmd.Context()); err != nil {
				fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
				application.Logger.Error().Err(err).Msg("validation failed")
				return errValidation
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&flagTrack, "track", "t", 0, "competition track: 1 for sentence-level MT, 2 for document-level MT")
	cmd.Flags().StringVarP(&flagInputs, "inputs", "i", "", "flat directory with the organizer-provided input files")
	cmd.Flags().StringVarP(&flagOutputs, "outputs", "o", "", "flat directory with the submission files for one system")
	cmd.Flags().StringVar(&flagSchedule, "schedule", "", "optional YAML schedule override (defaults to the built-in WMT2025 schedule)")
	_ = cmd.MarkFlagRequired("track")
	_ = cmd.MarkFlagRequired("inputs")
	_ = cmd.MarkFlagRequired("outputs")

	return cmd
}
