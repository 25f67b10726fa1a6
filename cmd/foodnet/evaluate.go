package main

import (
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	fn "github.com/shubhambhokare1/FoodNet"
	"github.com/shubhambhokare1/FoodNet/dataset"
)

// NewEvaluateCmd creates the evaluate command.
func NewEvaluateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate [model-dir]",
		Short: "Score a saved model against a directory of labeled images",
		Long: `Evaluate reloads a saved model and runs it over a labeled image
directory, reporting average cross-entropy and the fraction classified
correctly. No weights are modified.

Examples:
  # Score the configured model against the configured evaluation set
  foodnet evaluate

  # Score a specific model against a specific directory
  foodnet evaluate my_model1 --dir assets/evaluation`,
		Args: cobra.MaximumNArgs(1),
		RunE: runEvaluateCmd,
	}

	cmd.Flags().StringP("dir", "d", "", "Image directory to score against")

	return cmd
}

// runEvaluateCmd executes the evaluate command.
func runEvaluateCmd(cmd *cobra.Command, args []string) error {
	logger := setupLogger(getVerboseFlag(cmd))
	slog.SetDefault(logger)

	cfg, err := loadCommandConfig(cmd)
	if err != nil {
		return err
	}

	modelDir := cfg.ModelDir
	if len(args) == 1 {
		modelDir = args[0]
	}

	evalDir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return err
	}
	if evalDir == "" {
		evalDir = cfg.EvalDir
	}

	classes, err := dataset.LoadClasses(cfg.ClassFile)
	if err != nil {
		return err
	}

	net, err := fn.Load(modelDir)
	if err != nil {
		return err
	}
	logger.Debug("loaded model", "dir", modelDir, "outputs", net.OutputSize())

	if net.OutputSize() != classes.Len() {
		return errors.Errorf("Model has %d outputs but the class dictionary holds %d classes",
			net.OutputSize(), classes.Len())
	}

	eval, err := loadSupplier(evalDir, cfg.Side, classes.Len())
	if err != nil {
		return err
	}

	cost, correct, err := net.Test(eval, nil)
	if err != nil {
		return errors.Wrapf(err, "evaluation failed")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "samples:  %d\n", eval.Len())
	fmt.Fprintf(cmd.OutOrStdout(), "cost:     %.6f\n", cost)
	fmt.Fprintf(cmd.OutOrStdout(), "accuracy: %.2f%%\n", correct*100)
	return nil
}
