package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/takak2166/feishudocs/internal/action"
)

var (
	flagAccessToken string
	flagAppID       string
	flagAppSecret   string
	flagFolderToken string
	flagBaseURL     string
)

var rootCmd = &cobra.Command{
	Use:   "feishudocs",
	Short: "Manage documents in a Feishu drive folder",
	Long: `feishudocs manages the documents inside a designated Feishu drive
folder: list them, create new ones, append text, read content and
outlines, and run an end-to-end self-test.

Credentials come from --access-token (personal) or --app-id/--app-secret
(tenant exchange), with FEISHU_ACCESS_TOKEN, FEISHU_APP_ID,
FEISHU_APP_SECRET and FEISHU_AI_FOLDER_TOKEN as environment fallbacks.
Every command prints a JSON envelope: {ok, action, data, error}.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAccessToken, "access-token", "", "personal access token")
	rootCmd.PersistentFlags().StringVar(&flagAppID, "app-id", "", "app id for tenant credential exchange")
	rootCmd.PersistentFlags().StringVar(&flagAppSecret, "app-secret", "", "app secret for tenant credential exchange")
	rootCmd.PersistentFlags().StringVar(&flagFolderToken, "folder-token", "", "drive folder token")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "API base URL override")
	_ = rootCmd.PersistentFlags().MarkHidden("base-url")
}

func baseParams() action.Params {
	return action.Params{
		AccessToken: flagAccessToken,
		AppID:       flagAppID,
		AppSecret:   flagAppSecret,
		FolderToken: flagFolderToken,
	}
}

// runAction executes one action and prints the envelope. The envelope
// is the whole output contract, so failures exit nonzero without any
// extra error text.
func runAction(cmd *cobra.Command, name string, p action.Params) error {
	runner := &action.Runner{BaseURL: flagBaseURL}
	result := runner.Run(context.Background(), name, p)
	cmd.Println(result.JSON())
	if !result.OK {
		os.Exit(1)
	}
	return nil
}
