package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rsamoilov/buyerscope/internal/model"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "buyerscope",
	Short: "Buyerscope - buyer group discovery and quality scoring",
	Long: `Buyerscope analyzes a target company's people roster and assembles
the buyer group for your product: who decides, who champions, who
blocks, and who can get you in the door.

Every role assignment carries a confidence and a plain-language
rationale; group quality is scored on transparent sub-scores. The
output is a starting map for account planning, not ground truth.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("buyerscope v0.2.1")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.buyerscope/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home + "/.buyerscope")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match BUYERSCOPE_*
	viper.SetEnvPrefix("BUYERSCOPE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig builds the runtime config: defaults, then the config file,
// then environment overrides for secrets.
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	if path := viper.ConfigFileUsed(); path != "" {
		loaded, err := model.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if key := os.Getenv("BUYERSCOPE_API_KEY"); key != "" {
		cfg.Provider.APIKey = key
	}

	cfg.Output.Verbose = verbose

	return cfg, nil
}

// loadProfileOrDefault reads the seller profile, falling back to the starter
// profile when no path is given.
func loadProfileOrDefault(path string) (*model.SellerProfile, error) {
	if path == "" {
		return model.DefaultProfile(), nil
	}
	return model.LoadProfile(path)
}
