package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"ssdpkit/pkg/ssdp"
)

func listenCmd() *cobra.Command {
	var respondUSNFirst, respondUSNSecond, respondLocation, respondServer string
	var maxAge int

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Observe NOTIFY announcements and M-SEARCH requests, optionally answering searches",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromFlags(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-sigCh
				ssdp.Log.Info(ssdp.WarnBox + "shutting down")
				cancel()
			}()

			notifyListener := &ssdp.NotifyListener{
				Handler: func(n ssdp.NotifyMessage, from net.Addr) {
					ssdp.Log.Infof("%s%s  NT=%s  NTS=%s  USN=%s  LOCATION=%s",
						ssdp.NotifyBox, from, n.NT, n.NTS, n.USN.Format(), n.Location)
				},
			}

			var searchListener *ssdp.SearchListener
			if respondUSNFirst != "" {
				usn, err := buildUSN(respondUSNFirst, respondUSNSecond)
				if err != nil {
					return err
				}
				searchListener = &ssdp.SearchListener{
					MaxAge: maxAge,
					Handler: func(st ssdp.ST, mx ssdp.MX, from net.Addr) (ssdp.SearchResponse, bool) {
						ssdp.Log.Infof("%s%s  ST=%s  MX=%d", ssdp.MSearchBox, from, st, mx)
						return ssdp.SearchResponse{
							Location: respondLocation,
							Server:   respondServer,
							ST:       st,
							USN:      usn,
						}, true
					},
				}
			} else {
				searchListener = &ssdp.SearchListener{
					MaxAge: maxAge,
					Handler: func(st ssdp.ST, mx ssdp.MX, from net.Addr) (ssdp.SearchResponse, bool) {
						ssdp.Log.Infof("%s%s  ST=%s  MX=%d", ssdp.MSearchBox, from, st, mx)
						return ssdp.SearchResponse{}, false
					},
				}
			}

			errCh := make(chan error, 2)
			go func() { errCh <- notifyListener.Listen(ctx, cfg) }()
			go func() { errCh <- searchListener.Listen(ctx, cfg) }()

			err = <-errCh
			if err != nil && err != context.Canceled {
				return fmt.Errorf("listen: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&respondUSNFirst, "respond-usn", "", "if set, answer M-SEARCH requests with this USN first component")
	cmd.Flags().StringVar(&respondUSNSecond, "respond-usn2", "", "USN second component for search responses")
	cmd.Flags().StringVar(&respondLocation, "respond-location", "", "LOCATION header for search responses")
	cmd.Flags().StringVar(&respondServer, "respond-server", "", "SERVER header for search responses")
	cmd.Flags().IntVar(&maxAge, "max-age", 1800, "CACHE-CONTROL max-age advertised in search responses")

	return cmd
}
