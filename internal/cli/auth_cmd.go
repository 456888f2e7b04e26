package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/holoterm/holoterm/internal/auth"
)

// authCmd represents the auth command group
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Bridge API key management",
	Long: `Manage the API key used for the computation and search services.

The key is stored in the operating system keyring. The HOLOTERM_API_KEY
environment variable overrides the stored key for one session.`,
}

var authSetKeyCmd = &cobra.Command{
	Use:   "set-key",
	Short: "Store the bridge API key",
	Long:  `Prompt for the bridge API key and store it in the system keyring. Input is hidden.`,
	RunE:  runAuthSetKey,
}

var authClearKeyCmd = &cobra.Command{
	Use:   "clear-key",
	Short: "Remove the stored bridge API key",
	RunE:  runAuthClearKey,
}

func init() {
	authCmd.AddCommand(authSetKeyCmd)
	authCmd.AddCommand(authClearKeyCmd)

	rootCmd.AddCommand(authCmd)
}

func runAuthSetKey(cmd *cobra.Command, args []string) error {
	fmt.Print("API key: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("reading key: %w", err)
	}

	key := strings.TrimSpace(string(raw))
	if key == "" {
		return fmt.Errorf("no key entered")
	}

	if err := auth.NewKeyStore().Set(key); err != nil {
		return err
	}

	fmt.Println("API key stored in the system keyring.")
	return nil
}

func runAuthClearKey(cmd *cobra.Command, args []string) error {
	if err := auth.NewKeyStore().Clear(); err != nil {
		return err
	}

	fmt.Println("API key removed.")
	return nil
}
