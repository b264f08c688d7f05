package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vietdv277/regauth/internal/aws"
	"github.com/vietdv277/regauth/internal/config"
	"github.com/vietdv277/regauth/internal/logger"
	"github.com/vietdv277/regauth/pkg/provider"
)

var (
	// Global flags
	profile     string
	region      string
	configFile  string
	logLevel    string
	endpointURL string
)

var (
	newClient   = aws.NewClient
	destination = aws.DefaultDestination

	destFs afero.Fs = afero.NewOsFs()
)

var rootCmd = &cobra.Command{
	Use:   "regauth <bucket_name> <object_key>",
	Short: "Fetch the container registry auth file from S3",
	Long: `regauth downloads a single object from S3 and writes it to
/root/.dockercfg so the container runtime can authenticate against
its image registry. It is meant to run once at instance bootstrap.

The region is read from the EC2 instance identity document unless
--region (or REGAUTH_REGION) is given. The S3 endpoint is derived
from the region and every request is signed with SigV4.

Examples:
  regauth my-bucket docker/auth.json
  regauth --region eu-central-1 my-bucket auth.json
  regauth status                # Show instance region and identity`,
	Args:          validateArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runFetch,
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

	//Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "AWS profile to use")
	rootCmd.PersistentFlags().StringVarP(&region, "region", "r", "", "AWS region to use instead of the instance identity document")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultPath, "Path to the config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&endpointURL, "endpoint-url", "", "Override the S3 endpoint derived from the region")
	_ = rootCmd.PersistentFlags().MarkHidden("endpoint-url")

	// Bind flags to viper
	_ = viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	_ = viper.BindPFlag("region", rootCmd.PersistentFlags().Lookup("region"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	// Read from environment variables
	viper.SetEnvPrefix("REGAUTH")
	viper.AutomaticEnv()

	cfg, err := config.Load(configFile)
	if err != nil {
		logger.Log.Warn().Err(err).Str("path", configFile).Msg("ignoring config file")
		cfg = config.Default()
	}

	// Priority: flag > REGAUTH_* env > config file
	if profile == "" {
		profile = viper.GetString("profile")
		if profile == "" {
			profile = cfg.Profile
		}
	}

	if region == "" {
		region = viper.GetString("region")
		if region == "" {
			region = cfg.Region
		}
	}

	if logLevel == "" {
		logLevel = viper.GetString("log_level")
		if logLevel == "" {
			logLevel = cfg.LogLevel
		}
	}

	logger.SetLevel(logLevel)
}

func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: expected <bucket_name> <object_key>, got %d argument(s)", provider.ErrInvalidArguments, len(args))
	}

	if strings.TrimSpace(args[0]) == "" {
		return fmt.Errorf("%w: bucket name must not be empty", provider.ErrInvalidArguments)
	}

	if strings.TrimSpace(args[1]) == "" {
		return fmt.Errorf("%w: object key must not be empty", provider.ErrInvalidArguments)
	}

	return nil
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	bucket, key := args[0], args[1]

	client, err := newClient(ctx, clientOptions()...)
	if err != nil {
		return err
	}

	resolved, err := client.Region(ctx)
	if err != nil {
		return err
	}

	logger.Log.Debug().
		Str("region", resolved).
		Str("endpoint", client.Endpoint(resolved)).
		Msg("resolved S3 endpoint")

	api, err := client.ObjectAPI(ctx)
	if err != nil {
		return err
	}

	downloader := aws.NewDownloader(api,
		aws.WithFilesystem(destFs),
		aws.WithDestination(destination),
	)

	obj, err := downloader.Download(ctx, bucket, key)
	if err != nil {
		return err
	}

	logger.Log.Info().
		Str("object", fmt.Sprintf("s3://%s/%s", obj.Bucket, obj.Key)).
		Str("path", obj.Path).
		Int64("bytes", obj.Size).
		Msg("registry auth file written")

	return nil
}

func clientOptions() []aws.ClientOption {
	return []aws.ClientOption{
		aws.WithProfile(GetProfile()),
		aws.WithRegion(GetRegion()),
		aws.WithEndpointURL(endpointURL),
	}
}

// GetProfile returns the AWS profile
func GetProfile() string {
	return profile
}

// GetRegion returns the AWS region override, empty when it comes from the instance
func GetRegion() string {
	return region
}
