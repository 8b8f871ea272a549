package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iwvelando/mortgage-forecast/internal/config"
	"github.com/iwvelando/mortgage-forecast/internal/forecast"
	"github.com/iwvelando/mortgage-forecast/internal/logging"
	"github.com/iwvelando/mortgage-forecast/pkg/constants"
	"github.com/iwvelando/mortgage-forecast/pkg/output"
	"github.com/iwvelando/mortgage-forecast/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	mode := flag.String("mode", constants.ModeSchedule, "what to compute: schedule, yearly, compare")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI override takes precedence over config
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}
	if err := validation.ValidateMode(*mode); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	switch *mode {
	case constants.ModeSchedule, constants.ModeYearly:
		result, err := forecast.GetSchedule(logger, *conf)
		if err != nil {
			logger.Fatal("failed to compute amortization schedule",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		err = writeSchedule(*mode, outputFormat, result)
		if err != nil {
			logger.Fatal("failed to write amortization schedule",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}

	case constants.ModeCompare:
		result, err := forecast.GetComparison(logger, *conf)
		if err != nil {
			logger.Fatal("failed to compute house comparison",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		if outputFormat == constants.OutputFormatCSV {
			err = output.CsvComparison(os.Stdout, result)
		} else {
			output.PrettyComparison(os.Stdout, result)
		}
		if err != nil {
			logger.Fatal("failed to write house comparison",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}

func writeSchedule(mode, outputFormat string, result forecast.ScheduleResult) error {
	switch {
	case mode == constants.ModeYearly && outputFormat == constants.OutputFormatCSV:
		return output.CsvYearlySummary(os.Stdout, result)
	case mode == constants.ModeYearly:
		output.PrettyYearlySummary(os.Stdout, result)
	case outputFormat == constants.OutputFormatCSV:
		return output.CsvSchedule(os.Stdout, result)
	default:
		output.PrettySchedule(os.Stdout, result)
	}
	return nil
}
