// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"
	"io"

	"github.com/iwvelando/mortgage-forecast/pkg/constants"
	"github.com/iwvelando/mortgage-forecast/pkg/datetime"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for mortgage-forecast.
type Configuration struct {
	Logging    LoggingConfig `yaml:"logging,omitempty"`
	Output     OutputConfig  `yaml:"output,omitempty"`
	StartDate  string        `yaml:"startDate,omitempty"` // optional YYYY-MM label for period 1
	Tax        TaxConfig     `yaml:"tax,omitempty"`
	Mortgage   Mortgage      `yaml:"mortgage,omitempty"`
	Comparison Comparison    `yaml:"comparison,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// TaxConfig holds the mortgage interest deduction assumptions.
type TaxConfig struct {
	DeductionCap  float64 `yaml:"deductionCap,omitempty"`
	DeductionRate float64 `yaml:"deductionRate,omitempty"`
}

// Mortgage describes the single loan whose amortization schedule is reported.
type Mortgage struct {
	Name         string  `yaml:"name,omitempty"`
	HomeValue    float64 `yaml:"homeValue"`
	DownPayment  float64 `yaml:"downPayment"`
	InterestRate float64 `yaml:"interestRate"` // annual percent
	TermYears    int     `yaml:"termYears,omitempty"`
}

// Comparison holds the shared household parameters and the houses to compare.
type Comparison struct {
	MonthlyIncome    float64 `yaml:"monthlyIncome"`
	InvestmentReturn float64 `yaml:"investmentReturn"` // annual percent
	Houses           []House `yaml:"houses"`
}

// House is one home-purchase scenario in a comparison.
type House struct {
	Name            string  `yaml:"name,omitempty"`
	HomeValue       float64 `yaml:"homeValue"`
	DownPayment     float64 `yaml:"downPayment"`
	Appreciation    float64 `yaml:"appreciation"` // annual percent
	InterestRate    float64 `yaml:"interestRate"` // annual percent
	MonthlyExpenses float64 `yaml:"monthlyExpenses"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()
	if err := configuration.Validate(); err != nil {
		return nil, err
	}
	return &configuration, nil
}

// ApplyDefaults fills in unset optional values.
func (conf *Configuration) ApplyDefaults() {
	if conf.Output.Format == "" {
		conf.Output.Format = constants.OutputFormatPretty
	}
	if conf.Tax.DeductionCap == 0 {
		conf.Tax.DeductionCap = constants.DefaultDeductionCap
	}
	if conf.Tax.DeductionRate == 0 {
		conf.Tax.DeductionRate = constants.DefaultDeductionRate
	}
	if conf.Mortgage.TermYears == 0 {
		conf.Mortgage.TermYears = constants.DefaultTermYears
	}
	if conf.Mortgage.Name == "" {
		conf.Mortgage.Name = "mortgage"
	}
	for i := range conf.Comparison.Houses {
		if conf.Comparison.Houses[i].Name == "" {
			conf.Comparison.Houses[i].Name = fmt.Sprintf("House %d", i+1)
		}
	}
}

// Validate rejects configuration that cannot be interpreted. Numeric ranges
// are checked by the calculators themselves.
func (conf *Configuration) Validate() error {
	if err := datetime.ValidateStartDate(conf.StartDate); err != nil {
		return err
	}
	if conf.Mortgage.TermYears < 0 {
		return fmt.Errorf("mortgage %s: term must be positive, got %d years", conf.Mortgage.Name, conf.Mortgage.TermYears)
	}
	if conf.Tax.DeductionCap < 0 || conf.Tax.DeductionRate < 0 || conf.Tax.DeductionRate > 1 {
		return fmt.Errorf("tax deduction cap must be non-negative and rate within [0, 1], got cap %v rate %v",
			conf.Tax.DeductionCap, conf.Tax.DeductionRate)
	}
	seen := make(map[string]struct{}, len(conf.Comparison.Houses))
	for _, house := range conf.Comparison.Houses {
		if _, dup := seen[house.Name]; dup {
			return fmt.Errorf("comparison house name %q is used more than once", house.Name)
		}
		seen[house.Name] = struct{}{}
	}
	return nil
}
