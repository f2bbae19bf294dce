/*
github.com/tcrain/synodbench - Experimental project for measuring consensus decision latency.
Copyright (C) 2020 The project authors - tcrain

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.

*/

package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// SweepConfig describes a full benchmark: the sweep axes, how often it is repeated,
// how the external program is started and where the log and results go.
type SweepConfig struct {
	NValues        []int     `mapstructure:"n_values"`
	FValues        []int     `mapstructure:"f_values"`
	AlphaValues    []float64 `mapstructure:"alpha_values"`
	TLEValues      []int     `mapstructure:"tle_values"`
	Repetitions    int       `mapstructure:"repetitions"`
	LogFile        string    `mapstructure:"log_file"`
	OutputDir      string    `mapstructure:"output_dir"`
	Command        []string  `mapstructure:"command"`
	LatencyPolicy  string    `mapstructure:"latency_policy"`
	MetricsAddress string    `mapstructure:"metrics_address"`
}

// DefaultSweepConfig returns the sweep run by the original experiment.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		NValues:        append([]int(nil), DefaultNValues...),
		FValues:        append([]int(nil), DefaultFValues...),
		AlphaValues:    append([]float64(nil), DefaultAlphaValues...),
		TLEValues:      append([]int(nil), DefaultTLEValues...),
		Repetitions:    DefaultRepetitions,
		LogFile:        DefaultLogFile,
		OutputDir:      DefaultOutputDir,
		Command:        append([]string(nil), DefaultCommand...),
		LatencyPolicy:  DefaultLatencyPolicy,
		MetricsAddress: DefaultMetricsAddress,
	}
}

// LoadSweepConfig loads the sweep config named by the CONFIG_NAME environment variable
// (defaultName otherwise) from the directory CONFIG_DIR (the working directory otherwise).
// Fields missing from the file keep their default values.
func LoadSweepConfig(defaultName string) (SweepConfig, error) {
	configDir, exists := os.LookupEnv("CONFIG_DIR")
	if !exists {
		configDir = "."
	}
	configFileName, exists := os.LookupEnv("CONFIG_NAME")
	if !exists {
		configFileName = defaultName
	}
	return LoadSweepConfigFromPath(configDir, strings.ToLower(configFileName))
}

// LoadSweepConfigFromPath loads configFileName.yaml from configDir on top of the defaults.
func LoadSweepConfigFromPath(configDir, configFileName string) (SweepConfig, error) {
	v := newViper(configDir, configFileName)
	var ret SweepConfig
	if err := v.ReadInConfig(); err != nil {
		return DefaultSweepConfig(), err
	}
	if err := v.Unmarshal(&ret); err != nil {
		return DefaultSweepConfig(), err
	}
	return ret, nil
}

func newViper(configDir, configFileName string) *viper.Viper {
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	v.SetEnvPrefix("synod")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a list in the file replaces the whole default list
	def := DefaultSweepConfig()
	v.SetDefault("n_values", def.NValues)
	v.SetDefault("f_values", def.FValues)
	v.SetDefault("alpha_values", def.AlphaValues)
	v.SetDefault("tle_values", def.TLEValues)
	v.SetDefault("repetitions", def.Repetitions)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("output_dir", def.OutputDir)
	v.SetDefault("command", def.Command)
	v.SetDefault("latency_policy", def.LatencyPolicy)
	v.SetDefault("metrics_address", def.MetricsAddress)
	return v
}

// LoadSweepConfigOrDefault is LoadSweepConfig, except a missing config file is not an error,
// the defaults are returned with found set to false.
func LoadSweepConfigOrDefault(defaultName string) (cfg SweepConfig, found bool, err error) {
	cfg, err = LoadSweepConfig(defaultName)
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return DefaultSweepConfig(), false, nil
	}
	return cfg, err == nil, err
}
