package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/shubhambhokare1/FoodNet/dataset"
)

// Default configuration values. The training hyperparameters match the runs
// the shipped models were produced with.
const (
	// DefaultConfigFile is searched for in the current directory when no
	// --config path is given.
	DefaultConfigFile = ".foodnet.yaml"

	// DefaultEpochs is the number of full passes over the training set.
	DefaultEpochs = 200

	// DefaultBatchSize is the number of samples per weight update.
	DefaultBatchSize = 100

	// DefaultLearningRate is the base learning rate; it decays over the run
	// (see buildNetwork).
	DefaultLearningRate = 0.001

	// DefaultMomentum is the SGD momentum coefficient.
	DefaultMomentum = 0.9
)

// Config holds everything the CLI needs: where the dataset lives, the
// training hyperparameters, and where the trained model goes. It is
// populated from a YAML file and then overridden by flags.
type Config struct {
	// ClassFile is the newline-delimited class-name dictionary. Line order
	// fixes the class indexes and the width of the output layer.
	ClassFile string `yaml:"classes"`

	// TrainDir, ValidDir, and EvalDir are the three image directories. Only
	// TrainDir is required for training; ValidDir adds per-epoch validation
	// and EvalDir a final held-out score.
	TrainDir string `yaml:"training"`
	ValidDir string `yaml:"validation"`
	EvalDir  string `yaml:"evaluation"`

	// Side is the square resolution images are resized to.
	Side int `yaml:"side"`

	Epochs       int     `yaml:"epochs"`
	BatchSize    int     `yaml:"batch_size"`
	LearningRate float64 `yaml:"learning_rate"`
	Momentum     float64 `yaml:"momentum"`

	// WeightDecay is the L2 penalty lambda; 0 disables the penalty.
	WeightDecay float64 `yaml:"weight_decay"`

	// Seed fixes weight initialization and batch shuffling. 0 means seed
	// from the clock.
	Seed int64 `yaml:"seed"`

	// ArchFile and WeightsFile are standalone copies of the topology
	// document and weight blob; ModelDir is the directory form that
	// `foodnet evaluate` and `foodnet predict` load.
	ArchFile    string `yaml:"arch"`
	WeightsFile string `yaml:"weights"`
	ModelDir    string `yaml:"model_dir"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		ClassFile:    "assets/classes.txt",
		TrainDir:     "assets/training",
		ValidDir:     "assets/validation",
		EvalDir:      "assets/evaluation",
		Side:         dataset.DefaultSide,
		Epochs:       DefaultEpochs,
		BatchSize:    DefaultBatchSize,
		LearningRate: DefaultLearningRate,
		Momentum:     DefaultMomentum,
		ArchFile:     "model1.json",
		WeightsFile:  "model1_weights.bin",
		ModelDir:     "my_model1",
	}
}

// LoadConfig reads a YAML configuration file over the defaults. If path is
// "", DefaultConfigFile is tried in the current directory and silently
// skipped when absent; an explicitly given path must exist.
func LoadConfig(path string) (*Config, error) {
	cfg := NewConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "Couldn't read configuration %q", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "Couldn't decode configuration %q", path)
	}

	return cfg, nil
}

// Validate checks the fields training depends on.
func (cfg *Config) Validate() error {
	if cfg.Side < 1 {
		return errors.Errorf("side must be >= 1 (%d)", cfg.Side)
	} else if cfg.Epochs < 1 {
		return errors.Errorf("epochs must be >= 1 (%d)", cfg.Epochs)
	} else if cfg.BatchSize < 1 {
		return errors.Errorf("batch_size must be >= 1 (%d)", cfg.BatchSize)
	} else if cfg.LearningRate <= 0 {
		return errors.Errorf("learning_rate must be > 0 (%g)", cfg.LearningRate)
	} else if cfg.Momentum < 0 || cfg.Momentum >= 1 {
		return errors.Errorf("momentum must be in [0, 1) (%g)", cfg.Momentum)
	} else if cfg.WeightDecay < 0 {
		return errors.Errorf("weight_decay must be >= 0 (%g)", cfg.WeightDecay)
	}

	return nil
}
