package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/VOLLPilates/assetforge/internal/manifest"
	"github.com/VOLLPilates/assetforge/internal/output"
	"github.com/VOLLPilates/assetforge/internal/runner"
	"github.com/VOLLPilates/assetforge/internal/utils"
)

var (
	manifestPath string
	rootDir      string
	timeout      time.Duration
	userAgent    string
	debug        bool
)

var AssetforgeVersion = "dev"

var rootCmd = &cobra.Command{
	Use:     "assetforge",
	Short:   "Assetforge fetches and transcodes the site's static image assets",
	Version: AssetforgeVersion,
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		utils.InitLogger(debug)
		m, err := loadManifest()
		if err != nil {
			output.PrintError(fmt.Sprintf("Failed to load manifest: %v", err))
			os.Exit(1)
		}
		client := utils.NewAssetHTTPClient(utils.HTTPClientConfig{
			Timeout:   timeout,
			UserAgent: userAgent,
		})
		results, failures := runner.Run(m, runner.Options{Root: rootDir, Client: client})
		fmt.Println(runner.Summary(results))
		if failures > 0 {
			output.PrintError(fmt.Sprintf("Completed with %d failure(s)", failures))
			os.Exit(2)
		}
		output.PrintSuccess("Completed")
	},
}

func loadManifest() (*manifest.Manifest, error) {
	if manifestPath == "" {
		return manifest.LoadEmbedded()
	}
	return manifest.Load(manifestPath)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&manifestPath, "manifest", "m", "", "Path to a YAML asset manifest (defaults to the embedded one)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.Flags().StringVarP(&rootDir, "root", "r", ".", "Directory the asset roots are created under")
	rootCmd.Flags().DurationVarP(&timeout, "timeout", "t", utils.DefaultTimeout, "Per-download timeout (eg. 30s, 2m)")
	rootCmd.Flags().StringVarP(&userAgent, "user-agent", "a", utils.ToolUserAgent, "User agent")

	rootCmd.AddCommand(newJobsCmd())
}
