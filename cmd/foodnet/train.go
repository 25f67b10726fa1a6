package main

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	fn "github.com/shubhambhokare1/FoodNet"
	"github.com/shubhambhokare1/FoodNet/dataset"
)

// NewTrainCmd creates the train command.
func NewTrainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train the classifier on a directory of labeled images",
		Long: `Train builds the convolutional classifier and fits it to the images in
the training directory, validating after every epoch if a validation
directory is configured.

The trained model is written three ways: a standalone topology document, a
standalone weight blob, and a model directory holding both. The directory
form is what evaluate and predict load.

Examples:
  # Train with the defaults (assets/ layout, 200 epochs, batch 100)
  foodnet train

  # Reproducible short run
  foodnet train --epochs 10 --seed 1

  # Use a custom configuration file
  foodnet train -c myconfig.yaml`,
		Args: cobra.NoArgs,
		RunE: runTrainCmd,
	}

	cmd.Flags().IntP("epochs", "e", 0, "Number of passes over the training set")
	cmd.Flags().IntP("batch", "b", 0, "Samples per weight update")
	cmd.Flags().Float64P("lr", "l", 0, "Base learning rate")
	cmd.Flags().Int64P("seed", "s", 0, "Seed for weight initialization and shuffling (0 = clock)")
	cmd.Flags().StringP("out", "o", "", "Model output directory")

	return cmd
}

// runTrainCmd executes the train command.
func runTrainCmd(cmd *cobra.Command, _ []string) error {
	logger := setupLogger(getVerboseFlag(cmd))
	slog.SetDefault(logger)

	cfg, err := loadCommandConfig(cmd)
	if err != nil {
		return err
	}

	if err := applyTrainFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrapf(err, "configuration error")
	}

	classes, err := dataset.LoadClasses(cfg.ClassFile)
	if err != nil {
		return err
	}
	logger.Info("loaded class dictionary", "path", cfg.ClassFile, "classes", classes.Len())

	train, err := loadSupplier(cfg.TrainDir, cfg.Side, classes.Len())
	if err != nil {
		return err
	}
	logger.Info("loaded training set", "dir", cfg.TrainDir, "samples", train.Len())

	var valid fn.DataSupplier
	if cfg.ValidDir != "" {
		if _, err := os.Stat(cfg.ValidDir); err == nil {
			v, err := loadSupplier(cfg.ValidDir, cfg.Side, classes.Len())
			if err != nil {
				return err
			}
			valid = v
			logger.Info("loaded validation set", "dir", cfg.ValidDir, "samples", v.Len())
		}
	}

	net, err := buildNetwork(cfg, classes.Len())
	if err != nil {
		return err
	}

	err = net.Train(fn.TrainArgs{
		TrainData: train,
		ValidData: valid,
		Epochs:    cfg.Epochs,
		BatchSize: cfg.BatchSize,
		Update: func(r fn.Result) {
			if r.IsValidation {
				logger.Info("validation", "epoch", r.Epoch, "cost", r.Cost, "accuracy", r.Correct)
			} else {
				logger.Info("epoch done", "epoch", r.Epoch, "cost", r.Cost, "accuracy", r.Correct)
			}
		},
	})
	if err != nil {
		return errors.Wrapf(err, "training failed")
	}

	if cfg.EvalDir != "" {
		if _, err := os.Stat(cfg.EvalDir); err == nil {
			eval, err := loadSupplier(cfg.EvalDir, cfg.Side, classes.Len())
			if err != nil {
				return err
			}

			cost, correct, err := net.Test(eval, nil)
			if err != nil {
				return errors.Wrapf(err, "evaluation failed")
			}
			logger.Info("evaluation", "dir", cfg.EvalDir, "cost", cost, "accuracy", correct)
		}
	}

	if err := net.SaveArch(cfg.ArchFile); err != nil {
		return err
	}
	if err := net.SaveWeights(cfg.WeightsFile); err != nil {
		return err
	}
	if err := net.Save(cfg.ModelDir, true); err != nil {
		return err
	}

	logger.Info("saved model", "arch", cfg.ArchFile, "weights", cfg.WeightsFile, "dir", cfg.ModelDir)
	return nil
}

// applyTrainFlags overrides configuration fields with any flags the user set.
func applyTrainFlags(cmd *cobra.Command, cfg *Config) error {
	var err error

	if cmd.Flags().Changed("epochs") {
		if cfg.Epochs, err = cmd.Flags().GetInt("epochs"); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("batch") {
		if cfg.BatchSize, err = cmd.Flags().GetInt("batch"); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("lr") {
		if cfg.LearningRate, err = cmd.Flags().GetFloat64("lr"); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("seed") {
		if cfg.Seed, err = cmd.Flags().GetInt64("seed"); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("out") {
		if cfg.ModelDir, err = cmd.Flags().GetString("out"); err != nil {
			return err
		}
	}

	return nil
}

// loadSupplier reads one image directory and preprocesses it into a
// DataSupplier with the full one-hot width.
func loadSupplier(dir string, side, numClasses int) (*dataset.Supplier, error) {
	split, err := dataset.LoadDir(dir, side)
	if err != nil {
		return nil, err
	}

	return split.Supplier(numClasses)
}
