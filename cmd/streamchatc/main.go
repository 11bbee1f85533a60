// Command streamchatc connects to a streamchatd broker and renders the
// chat stream to the terminal.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/museun/streamchat/client"
	"github.com/museun/streamchat/config"
	"github.com/museun/streamchat/ircwire"
	"github.com/museun/streamchat/render"
)

func main() {
	var (
		printConfigPath bool
		addressOverride string
		bufferOverride  int
		nickMaxOverride int
	)

	root := &cobra.Command{
		Use:   "streamchatc",
		Short: "Render a streamchatd broker's chat stream to the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := config.LoadClient()
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
			if bufferOverride > 0 {
				cfg.BufferMax = bufferOverride
			}
			if nickMaxOverride > 0 {
				cfg.NickMax = nickMaxOverride
			}

			conn, err := client.Connect(cfg.Address)
			if err != nil {
				return err
			}
			defer conn.Close()

			size, _ := client.TerminalSize()
			layout := render.Config{
				Width:   size.Cols,
				NickMax: cfg.NickMax,
				Left: render.Fringe{
					Glyph: cfg.LeftFringe.Fringe,
					Color: ircwire.ParseRGB(cfg.LeftFringe.Color),
				},
				Right: render.Fringe{
					Glyph: cfg.RightFringe.Fringe,
					Color: ircwire.ParseRGB(cfg.RightFringe.Color),
				},
			}

			useColor := client.UseColor()
			client.EnterAltScreen(os.Stdout)
			defer client.ExitAltScreen(os.Stdout)

			scrollback := client.NewScrollback(cfg.BufferMax)

			stop := make(chan struct{})
			defer close(stop)
			resized := client.PollResize(client.TerminalSize, stop)

			messages := client.Stream(conn)
			for {
				select {
				case msg, ok := <-messages:
					if !ok {
						return nil
					}
					client.Print(os.Stdout, layout, msg, useColor)
					scrollback.Push(msg)
				case size, ok := <-resized:
					if !ok {
						continue
					}
					layout.Width = size.Cols
					client.RedrawAll(os.Stdout, layout, scrollback, useColor)
				}
			}
		},
	}

	root.Flags().BoolVar(&printConfigPath, "config", false, "print the config file path and exit")
	root.Flags().StringVar(&addressOverride, "address", "", "override the broker address")
	root.Flags().IntVar(&bufferOverride, "buffer", 0, "override the scrollback buffer size")
	root.Flags().IntVar(&nickMaxOverride, "nick-max", 0, "override the nick truncation width")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
