// Command fedcred builds WS-Trust token request messages from a YAML
// configuration and a password held in the OS keyring, and optionally sends
// them to the configured federation endpoint.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DisplayNote/azure-activedirectory-library-for-dotnet/internal/config"
	"github.com/DisplayNote/azure-activedirectory-library-for-dotnet/internal/credstore"
	"github.com/DisplayNote/azure-activedirectory-library-for-dotnet/pkg/secret"
	"github.com/DisplayNote/azure-activedirectory-library-for-dotnet/pkg/transport"
	"github.com/DisplayNote/azure-activedirectory-library-for-dotnet/pkg/wstrust"
)

const keyringService = "fedcred"

var (
	cfgFile    string
	verbose    bool
	send       bool
	integrated bool

	rootCmd = &cobra.Command{
		Use:   "fedcred",
		Short: "Build and send WS-Trust token requests against a federation service",
		Long: `fedcred builds protocol-correct WS-Trust RequestSecurityToken messages for
an on-premises federation service (e.g. AD FS), using either a stored
username/password credential or OS-integrated authentication, as one leg of
an OAuth/OIDC token acquisition.`,
		// main prints the error itself; without these, cobra would print it
		// a second time along with the usage text.
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	requestCmd = &cobra.Command{
		Use:   "request",
		Short: "Build a token request envelope; print it or send it with --send",
		RunE:  runRequest,
	}

	secretCmd = &cobra.Command{
		Use:   "secret",
		Short: "Manage the password stored in the OS keyring",
	}

	secretSetCmd = &cobra.Command{
		Use:   "set",
		Short: "Store the password for the configured username (read from stdin)",
		RunE:  runSecretSet,
	}

	secretClearCmd = &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored password for the configured username",
		RunE:  runSecretClear,
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "fedcred.yaml", "path to the YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	requestCmd.Flags().BoolVar(&send, "send", false, "POST the request to the configured endpoint and print the raw response")
	requestCmd.Flags().BoolVar(&integrated, "integrated", false, "use OS-integrated authentication instead of a stored password")

	secretCmd.AddCommand(secretSetCmd, secretClearCmd)
	rootCmd.AddCommand(requestCmd, secretCmd)
}

func runRequest(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	cred, err := resolveCredential(cfg)
	if err != nil {
		return err
	}

	envelope, err := wstrust.BuildTokenRequestMessage(cfg.Authority.Audience, cfg.Endpoint(), cred)
	if err != nil {
		return err
	}
	defer envelope.Wipe()

	if !send {
		os.Stdout.Write(envelope.Bytes())
		fmt.Println()
		return nil
	}

	client := transport.NewClient(cfg.TransportClientConfig(), slog.Default())
	response, err := client.RequestToken(cmd.Context(), cfg.Endpoint(), envelope.Bytes())
	if err != nil {
		return err
	}

	os.Stdout.Write(response)
	fmt.Println()
	return nil
}

func resolveCredential(cfg *config.Config) (wstrust.Credential, error) {
	if integrated {
		return wstrust.Integrated{}, nil
	}

	if cfg.Authority.Username == "" {
		return nil, fmt.Errorf("authority.username is required unless --integrated is set")
	}

	password, err := credstore.New(keyringService).Get(cfg.Authority.Username)
	if err != nil {
		return nil, err
	}

	return wstrust.UsernamePassword{
		Username: cfg.Authority.Username,
		Password: password,
	}, nil
}

func runSecretSet(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if cfg.Authority.Username == "" {
		return fmt.Errorf("authority.username is required")
	}

	fmt.Fprintf(os.Stderr, "Password for %s: ", cfg.Authority.Username)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")

	if err := credstore.New(keyringService).Set(cfg.Authority.Username, secret.FromString(line)); err != nil {
		return err
	}

	slog.Info("credential stored", "username", cfg.Authority.Username)
	return nil
}

func runSecretClear(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if cfg.Authority.Username == "" {
		return fmt.Errorf("authority.username is required")
	}

	if err := credstore.New(keyringService).Clear(cfg.Authority.Username); err != nil {
		return err
	}

	slog.Info("credential cleared", "username", cfg.Authority.Username)
	return nil
}
