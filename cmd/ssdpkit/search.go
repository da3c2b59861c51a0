package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ssdpkit/pkg/ssdp"
)

func searchCmd() *cobra.Command {
	var st string
	var mx uint8

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Send an M-SEARCH request and print the responses received within MX+1 seconds",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromFlags(cmd)
			if err != nil {
				return err
			}

			stVal, err := parseSTFlag(st)
			if err != nil {
				return err
			}

			mxVal, err := ssdp.NewMX(mx)
			if err != nil {
				return err
			}

			req := ssdp.SearchRequest{ST: stVal, MX: mxVal}
			responses, err := req.Multicast(context.Background(), cfg)
			if err != nil {
				return fmt.Errorf("sending search: %w", err)
			}

			ssdp.Log.WithField("count", len(responses)).Info(ssdp.MSearchBox + "responses received")
			for _, r := range responses {
				ssdp.Log.Infof("  %s  USN=%s  LOCATION=%s  SERVER=%s", r.From, r.USN.Format(), r.Location, r.Server)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&st, "st", "ssdp:all", "search target: ssdp:all or prefix:value")
	cmd.Flags().Uint8Var(&mx, "mx", 3, "maximum wait for responses, in seconds [1, 120]")

	return cmd
}

func parseSTFlag(v string) (ssdp.ST, error) {
	if v == "ssdp:all" {
		return ssdp.STAll(), nil
	}
	field, ok := ssdp.ParseFieldMap([]byte(v))
	if !ok {
		return ssdp.ST{}, fmt.Errorf("invalid --st value %q, expected ssdp:all or prefix:value", v)
	}
	return ssdp.STTarget(field), nil
}
