package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/vibepad/internal/core/domain"
)

var apikeyCmd = &cobra.Command{
	Use:   "apikey",
	Short: "Manage the Anthropic API key",
	Long: `Store, show or remove the Anthropic API key.

The key is kept in the system keyring when one is available, and in the
config file otherwise. It is only stored; vibepad does not send it anywhere.`,
}

var apikeySetCmd = &cobra.Command{
	Use:   "set [key]",
	Short: "Store the API key",
	Long: `Store the API key. Without an argument the key is read from the terminal
without echo, or from stdin when it is not a terminal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAPIKeySet,
}

var apikeyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored API key, masked",
	Args:  cobra.NoArgs,
	RunE:  runAPIKeyShow,
}

var apikeyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored API key",
	Args:  cobra.NoArgs,
	RunE:  runAPIKeyClear,
}

func init() {
	apikeyCmd.AddCommand(apikeySetCmd)
	apikeyCmd.AddCommand(apikeyShowCmd)
	apikeyCmd.AddCommand(apikeyClearCmd)
	rootCmd.AddCommand(apikeyCmd)
}

func runAPIKeySet(cmd *cobra.Command, args []string) error {
	if credentialsService == nil {
		return errNotConfigured("credentials")
	}

	var key string
	if len(args) == 1 {
		key = args[0]
	} else {
		cmd.Print("Enter your Anthropic API key: ")
		var err error
		key, err = readSecret(cmd.InOrStdin())
		cmd.Println()
		if err != nil {
			return fmt.Errorf("read API key: %w", err)
		}
	}

	if err := credentialsService.Save(key); err != nil {
		if errors.Is(err, domain.ErrAPIKeyRequired) || errors.Is(err, domain.ErrAPIKeyFormat) {
			return fmt.Errorf("%s", capitalise(err.Error()))
		}
		return fmt.Errorf("failed to save API key: %w", err)
	}

	cmd.Println("API key saved")
	return nil
}

func runAPIKeyShow(cmd *cobra.Command, _ []string) error {
	if credentialsService == nil {
		return errNotConfigured("credentials")
	}
	masked := credentialsService.Masked()
	if masked == "" {
		cmd.Println("No API key stored. Run 'vibepad apikey set' to add one.")
		return nil
	}
	cmd.Println(masked)
	return nil
}

func runAPIKeyClear(cmd *cobra.Command, _ []string) error {
	if credentialsService == nil {
		return errNotConfigured("credentials")
	}
	if err := credentialsService.Clear(); err != nil {
		return fmt.Errorf("failed to clear API key: %w", err)
	}
	cmd.Println("API key removed")
	return nil
}

// readSecret reads one line without echo when in is a terminal.
func readSecret(in io.Reader) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(secret)), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func capitalise(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
