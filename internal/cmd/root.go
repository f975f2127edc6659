package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile     string
	useDevice   bool
	useEmulator bool
)

// rootCmd is both the base command and the default viewer: with no
// subcommand it colorizes logcat, spawning adb itself when stdin is a
// terminal and consuming the pipe otherwise.
var rootCmd = &cobra.Command{
	Use:   "weft [logcat filters...]",
	Short: "Weft — colorized logcat viewer",
	Long: `Weft highlights adb logcat output for the terminal: fixed columns,
stable per-tag colors, severity badges, and message bodies wrapped to the
terminal width.

With a terminal on stdin it spawns adb logcat itself; piped input is
consumed directly and the log format (brief or time) is auto-detected.

Examples:
  weft
  weft -d ActivityManager:* *:E
  adb logcat -v time | weft`,
	Args: cobra.ArbitraryArgs,
	RunE: runView,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: $HOME/.weft.yaml)")
	rootCmd.PersistentFlags().String("on-unknown-severity", "fail", "reaction to an unrecognized severity code: fail (stop like the original tool) or pass (emit the line unmodified)")

	rootCmd.Flags().BoolVarP(&useDevice, "device", "d", false, "direct adb at the only attached USB device")
	rootCmd.Flags().BoolVarP(&useEmulator, "emulator", "e", false, "direct adb at the only running emulator")
	rootCmd.Flags().String("format", "time", "logcat format for spawned adb: brief or time")

	// Column widths live in config, not flags; the defaults are the
	// classic layout. process_width <= 0 hides the process-id column.
	viper.SetDefault("number_width", 6)
	viper.SetDefault("badge_width", 3)
	viper.SetDefault("tag_width", 25)
	viper.SetDefault("process_width", 8)
	viper.SetDefault("time_width", 21)

	_ = viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("on_unknown_severity", rootCmd.PersistentFlags().Lookup("on-unknown-severity"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".weft")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}
