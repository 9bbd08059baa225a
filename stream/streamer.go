package stream

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/eclipse/paho.mqtt.golang"

	"github.com/matt-g-everett/ledseq/player"
	"github.com/matt-g-everett/ledseq/scene"
)

// ErrStopped is returned by Submit once the update loop has exited.
var ErrStopped = errors.New("stream loop stopped")

// Publisher sends a rendered frame to a topic.
type Publisher interface {
	Publish(topic string, payload []byte) error
}

// MQTTPublisher publishes frames to an ledrx device over MQTT.
type MQTTPublisher struct {
	client mqtt.Client
	qos    byte
}

func NewMQTTPublisher(client mqtt.Client) *MQTTPublisher {
	p := new(MQTTPublisher)
	p.client = client
	p.qos = 2
	return p
}

func (p *MQTTPublisher) Publish(topic string, payload []byte) error {
	token := p.client.Publish(topic, p.qos, false, payload)
	token.Wait()
	return token.Error()
}

// Status is a snapshot of the loop, safe to read from any goroutine.
type Status struct {
	State    string `json:"state"`
	Modified bool   `json:"modified"`
	Frame    uint64 `json:"frame"`
}

type request struct {
	cmd   Command
	reply chan error
}

// Streamer drives a player from a single loop and streams the resulting
// frames. The player and the lights are only touched by the loop.
type Streamer struct {
	player    *player.Player
	lights    []*scene.Light
	frame     *Frame
	publisher Publisher
	topic     string
	rate      float64
	interval  time.Duration
	ticks     uint64

	requests chan request
	done     chan struct{}

	mu     sync.Mutex
	status Status
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config *Config, p *player.Player, lights []*scene.Light, publisher Publisher) *Streamer {
	s := new(Streamer)
	s.player = p
	s.lights = lights
	s.frame = NewFrame(config.Strip.Pixels)
	s.publisher = publisher
	s.topic = config.Mqtt.Topics.Stream
	s.rate = config.Strip.FrameRate
	s.interval = config.FrameInterval()
	s.requests = make(chan request)
	s.done = make(chan struct{})
	s.status.State = p.State().String()
	return s
}

// Step advances playback by dt, renders the lights and publishes the frame.
func (s *Streamer) Step(dt time.Duration) error {
	s.player.Motions().Update(dt)
	s.player.Advance()

	s.frame.Render(s.lights)
	b, err := s.frame.MarshalBinary()
	if err != nil {
		return fmt.Errorf("marshal frame: %w", err)
	}

	s.mu.Lock()
	s.status.Frame++
	s.mu.Unlock()
	s.updateStatus()

	return s.publisher.Publish(s.topic, b)
}

// Tick steps by one frame. Frame lengths are rounded so that n ticks always
// advance playback by n/frameRate, with no drift from the rounding.
func (s *Streamer) Tick() error {
	second := float64(time.Second)
	prev := time.Duration(math.Round(float64(s.ticks) * second / s.rate))
	s.ticks++
	next := time.Duration(math.Round(float64(s.ticks) * second / s.rate))
	return s.Step(next - prev)
}

// Run steps the player once per frame interval until ctx is done, applying
// submitted commands between frames. It must only be called once.
func (s *Streamer) Run(ctx context.Context) error {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Println("Stream loop stopped")
			return nil
		case req := <-s.requests:
			req.reply <- s.apply(req.cmd)
		case <-ticker.C:
			if err := s.Tick(); err != nil {
				log.Printf("Failed to stream frame: %v", err)
			}
		}
	}
}

// Submit hands cmd to the loop and waits for its result.
func (s *Streamer) Submit(ctx context.Context, cmd Command) error {
	req := request{cmd: cmd, reply: make(chan error, 1)}
	select {
	case s.requests <- req:
	case <-s.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-req.reply:
		return err
	case <-s.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Streamer) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Streamer) apply(cmd Command) error {
	log.Printf("Command: %s", cmd)

	var err error
	switch cmd {
	case Play:
		err = s.player.Play()
	case Complete:
		s.player.Complete()
	case Cancel:
		s.player.Cancel()
	case Preview:
		s.player.PlayPreview()
	case Restore:
		s.player.CancelAndRestoreValues()
	default:
		err = fmt.Errorf("unknown command %d", int(cmd))
	}
	s.updateStatus()
	return err
}

func (s *Streamer) updateStatus() {
	state := s.player.State().String()
	modified := s.player.IsModified()

	s.mu.Lock()
	s.status.State = state
	s.status.Modified = modified
	s.mu.Unlock()
}
