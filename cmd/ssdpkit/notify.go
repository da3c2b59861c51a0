package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ssdpkit/pkg/ssdp"
)

func notifyCmd() *cobra.Command {
	var nt, usnFirst, usnSecond, location, server string
	var nts string
	var maxAge int

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Send a NOTIFY announcement to the SSDP multicast groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromFlags(cmd)
			if err != nil {
				return err
			}

			ntField, ok := ssdp.ParseFieldMap([]byte(nt))
			if !ok {
				return fmt.Errorf("invalid --nt value %q, expected prefix:value", nt)
			}

			ntsVal, err := parseNTSFlag(nts)
			if err != nil {
				return err
			}

			usn, err := buildUSN(usnFirst, usnSecond)
			if err != nil {
				return err
			}

			msg := ssdp.NotifyMessage{
				NT:             ntField,
				NTS:            ntsVal,
				USN:            usn,
				Location:       location,
				Server:         server,
				CacheControlMA: maxAge,
			}

			if err := msg.Multicast(cfg); err != nil {
				return fmt.Errorf("sending notify: %w", err)
			}

			ssdp.Log.WithField("nt", nt).Info(ssdp.NotifyBox + "sent")
			return nil
		},
	}

	cmd.Flags().StringVar(&nt, "nt", "upnp:rootdevice", "notification type (prefix:value)")
	cmd.Flags().StringVar(&nts, "nts", "alive", "notification sub-type: alive, update, or byebye")
	cmd.Flags().StringVar(&usnFirst, "usn", "", "unique service name first component (prefix:value)")
	cmd.Flags().StringVar(&usnSecond, "usn2", "", "unique service name second component (prefix:value), optional")
	cmd.Flags().StringVar(&location, "location", "", "device description URL (required)")
	cmd.Flags().StringVar(&server, "server", "", "SERVER header value")
	cmd.Flags().IntVar(&maxAge, "max-age", 1800, "CACHE-CONTROL max-age in seconds")
	cmd.MarkFlagRequired("usn")
	cmd.MarkFlagRequired("location")

	return cmd
}

func parseNTSFlag(v string) (ssdp.NTS, error) {
	switch v {
	case "alive":
		return ssdp.NTSAlive, nil
	case "update":
		return ssdp.NTSUpdate, nil
	case "byebye":
		return ssdp.NTSByeBye, nil
	default:
		return 0, fmt.Errorf("invalid --nts value %q, must be alive, update, or byebye", v)
	}
}

func buildUSN(first, second string) (ssdp.USN, error) {
	firstField, ok := ssdp.ParseFieldMap([]byte(first))
	if !ok {
		return ssdp.USN{}, fmt.Errorf("invalid --usn value %q, expected prefix:value", first)
	}

	if second == "" {
		return ssdp.NewUSN(firstField, nil), nil
	}

	secondField, ok := ssdp.ParseFieldMap([]byte(second))
	if !ok {
		return ssdp.USN{}, fmt.Errorf("invalid --usn2 value %q, expected prefix:value", second)
	}

	return ssdp.NewUSN(firstField, &secondField), nil
}
