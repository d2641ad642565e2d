/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"github.com/mitchellh/go-homedir"
	"github.com/rotblauer/ndstile/common"
	"github.com/rotblauer/ndstile/datum"
	"github.com/rotblauer/ndstile/nds"
	"github.com/rotblauer/ndstile/params"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"log/slog"
	"os"
	"strconv"
)

var cfgFile string

var defaultCLIConfig = params.DefaultCLIConfig()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ndstile",
	Short: "Morton-curve tile ids for geographic coordinates",
	Long: `ndstile encodes longitude/latitude pairs into NDS-style tile ids and back.

Tile ids are Morton (Z-order) codes truncated to a level, with the level
marked in the bit length. Levels run from 0 (half the world) to 15 (~600 m).

Negative coordinates must follow a -- separator so they are not read as flags:

  ndstile encode --level 10 -- -93.2555 44.9889
`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		fmt.Sprintf("config file (default is $HOME/%s.yaml)", params.ConfigFileName))
	rootCmd.PersistentFlags().Bool("verbose", false, "Log at debug level")
	rootCmd.PersistentFlags().Int("level", int(defaultCLIConfig.Level),
		fmt.Sprintf("Tile level [%d-%d]", nds.MinLevel, nds.MaxLevel))
	rootCmd.PersistentFlags().Int("precision", defaultCLIConfig.Precision,
		"Decimal places for printed degrees; negative prints exact values")

	bindFlags(rootCmd.PersistentFlags(), "verbose", "level", "precision")
}

// bindFlags lets viper resolve the named flags from the config file and environment too.
func bindFlags(fs *pflag.FlagSet, names ...string) {
	for _, name := range names {
		if err := viper.BindPFlag(name, fs.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		cobra.CheckErr(err)
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(params.ConfigFileName)
	}

	viper.SetEnvPrefix(params.EnvPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("Using config file", "file", viper.ConfigFileUsed())
	}
}

func setDefaultSlog(cmd *cobra.Command, args []string) {
	common.SetDefaultSlog(cmd.ErrOrStderr(), viper.GetBool("verbose"))
	slog.Debug("Running command", "command", cmd.CommandPath(), "args", args)
}

func configLevel() (nds.Level, error) {
	return nds.ParseLevel(viper.GetInt("level"))
}

func parseTileID(s string) (nds.TileID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("tile id %q: %w", s, err)
	}
	t := nds.TileID(v)
	if !t.Valid() {
		return 0, fmt.Errorf("tile id %d: %w: level %d", v, nds.ErrInvalidLevel, t.Level())
	}
	return t, nil
}

func parseDegrees(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("degrees %q: %w", s, err)
	}
	return v, nil
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(common.DecimalToFixed(v, viper.GetInt("precision")), 'f', -1, 64)
}

// datumFlag registers a --datum flag on cmd and returns its value holder.
func datumFlag(cmd *cobra.Command, def datum.Datum) *string {
	return cmd.Flags().String("datum", def.String(), "Datum of output coordinates: wgs84 or gcj02")
}
