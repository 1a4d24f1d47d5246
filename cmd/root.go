package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leocov-dev/packmedic/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "packmedic",
	Short: "A command line tool for checking and repairing Minecraft resource packs",
	Long: `packmedic audits a Minecraft resource pack for the mistakes that creep in
while editing one by hand: a broken pack.mcmeta, model overrides that are
out of order or duplicated, names that break the lowercase_no_spaces
convention, and model or texture references that don't line up with the
files on disk. Most findings come with a fix it can apply for you.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = config.Version
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "The config file to use (default is $HOME/.packmedic.toml)")
	rootCmd.PersistentFlags().StringP("dir", "d", ".", "The resource pack directory to work in")
	_ = viper.BindPFlag("dir", rootCmd.PersistentFlags().Lookup("dir"))
	rootCmd.PersistentFlags().String("meta-file", "pack.mcmeta", "The pack metadata file, relative to the pack directory")
	_ = viper.BindPFlag("meta-file", rootCmd.PersistentFlags().Lookup("meta-file"))
	rootCmd.PersistentFlags().BoolP("yes", "y", false, "Accept every offered fix without asking")
	_ = viper.BindPFlag("yes", rootCmd.PersistentFlags().Lookup("yes"))
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Never wait for input; prompts take their default answer")
	_ = viper.BindPFlag("non-interactive", rootCmd.PersistentFlags().Lookup("non-interactive"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in the pack directory and home directory with name
		// ".packmedic" (without extension).
		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigType("toml")
		viper.SetConfigName(".packmedic")
	}

	viper.SetEnvPrefix("PACKMEDIC")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
