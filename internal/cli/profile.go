package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rsamoilov/buyerscope/internal/model"
)

// profileCmd represents the profile command
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage seller profiles",
	Long: `A seller profile describes what you sell and which departments and
titles are in scope for buyer-group consideration. Scan, batch and
analyze all take a profile via --profile.`,
}

var profileInitCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Write a starter seller profile to edit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("profile already exists: %s", path)
		}

		yamlData, err := yaml.Marshal(model.DefaultProfile())
		if err != nil {
			return fmt.Errorf("marshal profile: %w", err)
		}

		header := "# Buyerscope seller profile. Edit the keywords to match your product.\n"
		if err := os.WriteFile(path, append([]byte(header), yamlData...), 0o644); err != nil {
			return fmt.Errorf("write profile: %w", err)
		}

		fmt.Printf("✓ Created starter profile: %s\n", path)
		return nil
	},
}

var profileCheckCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Validate a seller profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := model.LoadProfile(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("✓ Profile is valid: %s (%s, %s)\n",
			profile.ProductName, profile.SolutionCategory, profile.DealSizeBand)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileInitCmd)
	profileCmd.AddCommand(profileCheckCmd)
}
