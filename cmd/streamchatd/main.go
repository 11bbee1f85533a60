// Command streamchatd bridges one Twitch IRC channel to any number of
// local JSON-line subscribers.
package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/museun/streamchat/broker"
	"github.com/museun/streamchat/colorstore"
	"github.com/museun/streamchat/commands"
	"github.com/museun/streamchat/config"
	"github.com/museun/streamchat/daemon"
	"github.com/museun/streamchat/upstream"
)

func main() {
	var (
		printConfigPath bool
		addressOverride string
		limitOverride   int
	)

	root := &cobra.Command{
		Use:   "streamchatd",
		Short: "Bridge one Twitch IRC channel to local JSON-line subscribers",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.NewEntry(logrus.StandardLogger())

			cfg, path, err := config.LoadDaemon()
			if errors.Is(err, config.ErrDefaultCreated) {
				fmt.Fprintf(os.Stderr, "wrote default config to %s, please edit it\n", path)
				os.Exit(2)
			} else if err != nil {
				return err
			}

			if printConfigPath {
				fmt.Println(path)
				return nil
			}
			if addressOverride != "" {
				cfg.Address = addressOverride
			}
			if limitOverride > 0 {
				cfg.Limit = limitOverride
			}

			dataDir, err := config.DataDir()
			if err != nil {
				return err
			}
			store := colorstore.Open(dataDir+"/streamchat_colors.json", log)
			defer store.Close()

			processor := commands.NewProcessor()
			processor.Add("color", commands.ColorHandler(store))

			b := broker.New(cfg.Limit, log)
			if err := b.Listen(cfg.Address); err != nil {
				return err
			}
			defer b.Close()

			stop := make(chan struct{})
			go func() {
				if err := b.Run(stop); err != nil {
					log.WithError(err).Error("broker: run loop exited")
				}
			}()
			defer close(stop)

			transports := []broker.Transport{b}

			if cfg.LogPath != "" {
				ft, err := broker.NewFileTransport(cfg.LogPath, cfg.LogFormatted)
				if err != nil {
					return err
				}
				defer ft.Close()
				transports = append(transports, ft)
			}

			if cfg.WebSocketAddress != "" {
				ws := broker.NewWebSocketTransport(log)
				mux := http.NewServeMux()
				mux.Handle("/", ws.Handler())
				server := &http.Server{Addr: cfg.WebSocketAddress, Handler: mux}
				go func() {
					if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
						log.WithError(err).Error("websocket transport: server exited")
					}
				}()
				defer server.Close()
				transports = append(transports, ws)
			}

			session := upstream.New(cfg.Nick, cfg.OAuthToken, cfg.Channel, upstream.WithLogger(log))
			d := daemon.New(session, store, processor, transports, log)

			if err := d.Connect(); err != nil {
				log.WithError(err).Error("upstream: registration failed")
				os.Exit(1)
			}

			if err := d.Run(); err != nil {
				log.WithError(err).Error("upstream: session ended")
				os.Exit(1)
			}
			return nil
		},
	}

	root.Flags().BoolVar(&printConfigPath, "config", false, "print the config file path and exit")
	root.Flags().StringVar(&addressOverride, "address", "", "override the bind address")
	root.Flags().IntVar(&limitOverride, "limit", 0, "override the intake/backlog capacity")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
