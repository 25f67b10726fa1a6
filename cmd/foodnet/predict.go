package main

import (
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	fn "github.com/shubhambhokare1/FoodNet"
	"github.com/shubhambhokare1/FoodNet/dataset"
)

// NewPredictCmd creates the predict command.
func NewPredictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict <image>...",
		Short: "Classify one or more images with a saved model",
		Long: `Predict reloads a saved model and prints the predicted class name and
confidence for each given image.

Examples:
  # Classify with the configured model
  foodnet predict photo.jpg

  # Classify several images with a specific model
  foodnet predict --model my_model1 a.jpg b.png`,
		Args: cobra.MinimumNArgs(1),
		RunE: runPredictCmd,
	}

	cmd.Flags().StringP("model", "m", "", "Model directory to load")

	return cmd
}

// runPredictCmd executes the predict command.
func runPredictCmd(cmd *cobra.Command, args []string) error {
	logger := setupLogger(getVerboseFlag(cmd))
	slog.SetDefault(logger)

	cfg, err := loadCommandConfig(cmd)
	if err != nil {
		return err
	}

	modelDir, err := cmd.Flags().GetString("model")
	if err != nil {
		return err
	}
	if modelDir == "" {
		modelDir = cfg.ModelDir
	}

	classes, err := dataset.LoadClasses(cfg.ClassFile)
	if err != nil {
		return err
	}

	net, err := fn.Load(modelDir)
	if err != nil {
		return err
	}

	if net.OutputSize() != classes.Len() {
		return errors.Errorf("Model has %d outputs but the class dictionary holds %d classes",
			net.OutputSize(), classes.Len())
	}

	for _, path := range args {
		px, err := dataset.LoadImage(path, cfg.Side)
		if err != nil {
			return err
		}

		class, outs, err := net.Predict(dataset.Scale([][]float64{px})[0])
		if err != nil {
			return errors.Wrapf(err, "prediction of %q failed", path)
		}

		name, err := classes.Name(class)
		if err != nil {
			return err
		}

		logger.Debug("predicted", "path", path, "class", class)
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%.1f%%)\n", path, name, outs[class]*100)
		for i, p := range outs {
			n, err := classes.Name(i)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %-12s %6.2f%%\n", n, p*100)
		}
	}

	return nil
}
