package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matt-g-everett/ledseq/asset"
	"github.com/matt-g-everett/ledseq/component"
	"github.com/matt-g-everett/ledseq/stream"
)

func inspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [asset]",
		Short: "Compile a sequence against the configured lights and report on it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInspect,
	}
	cmd.Flags().Bool("simulate", false, "Play the sequence at the configured frame rate without streaming.")
	return cmd
}

type named interface {
	Name() string
}

func runInspect(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	config, err := stream.LoadConfig(configPath)
	if err != nil {
		return err
	}

	path := config.Sequence.Asset
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("no asset given and sequence.asset is not set in %s", configPath)
	}
	show, err := asset.Load(path, component.Default())
	if err != nil {
		return err
	}

	for i, item := range show.Items {
		cmd.Printf("%d. %s\n", i+1, item.Name)
		for _, c := range item.Components {
			if n, ok := c.(named); ok {
				cmd.Printf("     %s\n", n.Name())
			}
		}
		if item.Marker != "" {
			cmd.Printf("     marker %s\n", item.Marker)
		}
	}

	p, lights := newPlayer(config, show)
	seq := show.CreateSequence(p)
	cmd.Printf("steps: %d, duration: %s\n", seq.Len(), seq.Duration())

	if simulate, _ := cmd.Flags().GetBool("simulate"); !simulate {
		return nil
	}

	show.OnMarker = func(marker string) {
		cmd.Printf("%10s  marker %s\n", p.Motions().Now(), marker)
	}
	streamer := stream.NewStreamer(config, p, lights, discard{})
	if err := p.Play(); err != nil {
		return err
	}
	limit := int(seq.Duration()/config.FrameInterval()) + 2
	for i := 0; p.IsPlaying() && i < limit; i++ {
		if err := streamer.Tick(); err != nil {
			return err
		}
	}
	status := streamer.Status()
	cmd.Printf("frames: %d, state: %s, modified: %t\n", status.Frame, status.State, status.Modified)
	return nil
}

type discard struct{}

func (discard) Publish(string, []byte) error { return nil }
