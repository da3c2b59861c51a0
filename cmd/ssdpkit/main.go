package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ssdpkit/pkg/ssdp"
)

// Version is set via ldflags during release builds.
var Version = "dev"

const banner = "\n\033[38;5;51m   ██████╗  ██████╗ ███████╗███████╗██████╗ ██████╗ ██╗  ██╗██╗████████╗\033[0m\n" +
	"\033[38;5;45m  ██╔════╝ ██╔═══██╗██╔════╝██╔════╝██╔══██╗██╔══██╗██║ ██╔╝██║╚══██╔══╝\033[0m\n" +
	"\033[38;5;39m  ██║  ███╗██║   ██║███████╗███████╗██║  ██║██████╔╝█████╔╝ ██║   ██║   \033[0m\n" +
	"\033[38;5;33m  ██║   ██║██║   ██║╚════██║╚════██║██║  ██║██╔═══╝ ██╔═██╗ ██║   ██║   \033[0m\n" +
	"\033[38;5;27m  ╚██████╔╝╚██████╔╝███████║███████║██████╔╝██║     ██║  ██╗██║   ██║   \033[0m\n" +
	"\033[38;5;21m   ╚═════╝  ╚═════╝ ╚══════╝╚══════╝╚═════╝ ╚═╝     ╚═╝  ╚═╝╚═╝   ╚═╝   \033[0m\n\n" +
	"\033[38;5;46mSSDP discovery toolkit\033[0m\n"

var cfgFile string

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "ssdpkit",
		Short:   "Send, listen for, and answer SSDP announcements and searches",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return bindConfig(cmd)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file to read (none by default)")
	root.PersistentFlags().String("ipv4-addr", ssdp.DefaultIPv4MulticastAddr, "IPv4 multicast group")
	root.PersistentFlags().String("ipv6-addr", ssdp.DefaultIPv6MulticastAddr, "IPv6 multicast group")
	root.PersistentFlags().Uint16("port", ssdp.DefaultPort, "SSDP port")
	root.PersistentFlags().Int("ttl", ssdp.DefaultMulticastTTL, "multicast TTL / hop limit")
	root.PersistentFlags().String("mode", "any", "IP mode: v4, v6, or any")

	root.AddCommand(notifyCmd(), searchCmd(), listenCmd())
	return root
}

func bindConfig(cmd *cobra.Command) error {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return v.BindPFlags(cmd.Flags())
}

func configFromFlags(cmd *cobra.Command) (ssdp.Config, error) {
	cfg := ssdp.DefaultConfig()

	ipv4, err := cmd.Flags().GetString("ipv4-addr")
	if err != nil {
		return cfg, err
	}
	cfg.IPv4Addr = ipv4

	ipv6, err := cmd.Flags().GetString("ipv6-addr")
	if err != nil {
		return cfg, err
	}
	cfg.IPv6Addr = ipv6

	port, err := cmd.Flags().GetUint16("port")
	if err != nil {
		return cfg, err
	}
	cfg.Port = port

	ttl, err := cmd.Flags().GetInt("ttl")
	if err != nil {
		return cfg, err
	}
	cfg.TTL = ttl

	mode, err := cmd.Flags().GetString("mode")
	if err != nil {
		return cfg, err
	}
	switch mode {
	case "v4":
		cfg.Mode = ssdp.V4Only
	case "v6":
		cfg.Mode = ssdp.V6Only
	default:
		cfg.Mode = ssdp.Any
	}

	return cfg, nil
}

func main() {
	fmt.Print(banner)
	if err := rootCmd().Execute(); err != nil {
		ssdp.Log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
