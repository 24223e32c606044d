package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/uyouii/confidence-interval/common"
	"github.com/uyouii/confidence-interval/confidence"
	"github.com/uyouii/confidence-interval/model"
)

const (
	flagConfidenceLevel = "confidence-level"
	flagDistribution    = "distribution"
	flagConfig          = "config"
	flagLevels          = "levels"
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "confint [values...]",
		Short: "Confidence interval of the population mean of a sample",
		Long: `Reads a sample from the arguments, or whitespace separated numbers on
stdin when no argument is given, and prints the confidence interval of the
population mean as JSON.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := optionsFromFlags(cmd)
			if err != nil {
				return err
			}

			values, err := parseValues(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			levels, err := cmd.Flags().GetFloat64Slice(flagLevels)
			if err != nil {
				return err
			}
			if len(levels) > 0 && cmd.Flags().Changed(flagConfidenceLevel) {
				return common.NewInvalidArgument(flagLevels, levels,
					"cannot be combined with --"+flagConfidenceLevel)
			}

			estimator := confidence.NewEstimator(nil)

			var out any
			if len(levels) > 0 {
				out, err = estimator.EstimateLevels(cmd.Context(), values, levels, opts.Distribution)
			} else {
				out, err = estimator.Estimate(cmd.Context(), values, opts)
			}
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	rootCmd.Flags().Float64(flagConfidenceLevel, confidence.DefaultConfidenceLevel,
		"probability that the population mean falls inside the interval, in (0, 1)")
	rootCmd.Flags().String(flagDistribution, confidence.DefaultDistribution.String(),
		"critical point distribution: StudentsT or Normal")
	rootCmd.Flags().String(flagConfig, "", "yaml file with confidence_level and distribution")
	rootCmd.Flags().Float64Slice(flagLevels, nil,
		"compute several confidence levels at once, e.g. 0.9,0.95,0.99; "+
			"replaces --confidence-level and the config file's confidence_level")

	return rootCmd
}

// optionsFromFlags starts from the defaults, applies the config file and
// then every flag set on the command line.
func optionsFromFlags(cmd *cobra.Command) (confidence.Options, error) {
	opts := confidence.DefaultOptions()

	configPath, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return opts, err
	}
	if configPath != "" {
		opts, err = loadOptions(configPath)
		if err != nil {
			return opts, err
		}
	}

	if cmd.Flags().Changed(flagConfidenceLevel) {
		opts.ConfidenceLevel, err = cmd.Flags().GetFloat64(flagConfidenceLevel)
		if err != nil {
			return opts, err
		}
	}

	if cmd.Flags().Changed(flagDistribution) {
		name, err := cmd.Flags().GetString(flagDistribution)
		if err != nil {
			return opts, err
		}
		opts.Distribution, err = model.ParseDistribution(name)
		if err != nil {
			return opts, err
		}
	}

	return opts, nil
}

// loadOptions reads a yaml file, keys missing from the file keep their defaults.
func loadOptions(path string) (confidence.Options, error) {
	opts := confidence.DefaultOptions()

	bz, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(bz, &opts); err != nil {
		return opts, fmt.Errorf("failed to decode config: %w", err)
	}
	return opts, nil
}

func parseValues(args []string, r io.Reader) ([]float64, error) {
	if len(args) > 0 {
		values := make([]float64, 0, len(args))
		for _, arg := range args {
			value, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid sample value %q: %w", arg, err)
			}
			values = append(values, value)
		}
		return values, nil
	}

	values := []float64{}
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		value, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid sample value %q: %w", scanner.Text(), err)
		}
		values = append(values, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}
