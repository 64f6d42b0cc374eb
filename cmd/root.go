// Copyright © 2026 The golox authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	colorFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "golox",
	Short: "golox — Lox interpreter",
	Long: `golox is a tree-walking interpreter for the Lox programming language.

Getting started:
  golox run file.lox           Run a Lox source file
  golox run -e '1 + 2'         Evaluate an expression
  golox repl                   Start an interactive REPL
  golox doc functions          Show a language reference topic
  golox doc -l                 List reference topics

Language overview:
  Lox is a small dynamically typed language with numbers, strings,
  booleans, nil, and first-class functions.  Variables are declared with
  var and always initialized.  Functions are declared with fun and close
  over the variables visible at their declaration.  Control flow uses
  if/else, while, and for; print writes values to standard output.

More information:
  Source code:     https://github.com/loxlang/golox`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.golox.yaml)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto",
		`Control colored output: "auto", "always", or "never".`)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".golox" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".golox")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
