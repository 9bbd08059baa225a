package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matt-g-everett/ledseq/api"
	"github.com/matt-g-everett/ledseq/asset"
	"github.com/matt-g-everett/ledseq/component"
	"github.com/matt-g-everett/ledseq/motion"
	"github.com/matt-g-everett/ledseq/player"
	"github.com/matt-g-everett/ledseq/scene"
	"github.com/matt-g-everett/ledseq/stream"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Stream the configured sequence over MQTT",
		Args:  cobra.NoArgs,
		RunE:  runShow,
	}
	cmd.Flags().Bool("debug", false, "Log MQTT client internals.")
	return cmd
}

type app struct {
	config   *stream.Config
	client   mqtt.Client
	streamer *stream.Streamer
}

func newApp(config *stream.Config) *app {
	a := new(app)
	a.config = config
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	if topic := a.config.Mqtt.Topics.Control; topic != "" {
		if err := a.streamer.Subscribe(client, topic); err != nil {
			log.Printf("Failed to subscribe to %s: %v", topic, err)
		}
	}
}

func (a *app) handleConnectionLost(client mqtt.Client, err error) {
	log.Printf("Connection lost: %v", err)
}

// newPlayer builds the lights and a player with every light registered under
// its id.
func newPlayer(config *stream.Config, show *asset.Asset) (*player.Player, []*scene.Light) {
	lights := config.BuildLights()
	p := player.New(show, motion.NewRunner(), player.Config{
		CacheCompiledSequence: !config.Sequence.Editor,
	})
	for _, l := range lights {
		p.SetReferenceValue(l.Name, l)
	}
	return p, lights
}

func runShow(cmd *cobra.Command, args []string) error {
	mqtt.ERROR = log.New(os.Stdout, "", 0)
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		mqtt.DEBUG = log.New(os.Stdout, "", 0)
	}

	configPath, _ := cmd.Flags().GetString("config")
	config, err := stream.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if config.Sequence.Asset == "" {
		return errors.New("sequence.asset is required")
	}
	log.Printf("Config: %s, %d lights, %d pixels at %v fps",
		configPath, len(config.Lights), config.Strip.Pixels, config.Strip.FrameRate)

	show, err := asset.Load(config.Sequence.Asset, component.Default())
	if err != nil {
		return err
	}
	p, lights := newPlayer(config, show)

	a := newApp(config)
	options := mqtt.NewClientOptions().
		AddBroker(config.Mqtt.URL).
		SetClientID(config.Mqtt.ClientID).
		SetUsername(config.Mqtt.Username).
		SetPassword(config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect).
		SetConnectionLostHandler(a.handleConnectionLost)
	a.client = mqtt.NewClient(options)
	a.streamer = stream.NewStreamer(config, p, lights, stream.NewMQTTPublisher(a.client))

	if token := a.client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	defer a.client.Disconnect(250)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.streamer.Run(ctx)
	})
	g.Go(func() error {
		return api.NewApi(a.streamer, config.API.Static).Serve(ctx, config.API.Listen)
	})
	if config.Sequence.Autoplay {
		g.Go(func() error {
			if err := a.streamer.Submit(ctx, stream.Play); err != nil {
				log.Printf("Autoplay failed: %v", err)
			}
			return nil
		})
	}
	return g.Wait()
}
