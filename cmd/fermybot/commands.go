package main

import (
	"os"

	"github.com/spf13/cobra"
)

type serveOptions struct {
	port        string
	metricsAddr string
	envFile     string
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "fermybot",
		Short:         "Slack slash command responder",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCommand())
	return root
}

func newServeCommand() *cobra.Command {
	opts := serveOptions{
		port:    os.Getenv("PORT"),
		envFile: ".env",
	}
	if opts.port == "" {
		opts.port = "8080"
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the slash command endpoints over HTTP",
		Long: `Serve /slack/spyderbat, /slack/incr and /debug through the functions framework.

Configuration is read from the environment (REDIS_URL, LOG_LEVEL,
LOG_DEVELOPMENT), after loading variables from --env-file when it exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.port, "port", opts.port, "port to listen on")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "address for the Prometheus /metrics listener (disabled when empty)")
	cmd.Flags().StringVar(&opts.envFile, "env-file", opts.envFile, "dotenv file to load before reading configuration")
	return cmd
}
