package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
)

// Command is a playback request handled by the update loop.
type Command int

const (
	Play Command = iota
	Complete
	Cancel
	Preview
	Restore
)

var commandNames = map[Command]string{
	Play:     "play",
	Complete: "complete",
	Cancel:   "cancel",
	Preview:  "preview",
	Restore:  "restore",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// ParseCommand looks a command up by name, ignoring case.
func ParseCommand(name string) (Command, error) {
	name = strings.ToLower(name)
	for c, n := range commandNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown command %q", name)
}

// ControlMessage is the JSON payload accepted on the control topic.
type ControlMessage struct {
	Type string `json:"type"`
}

const controlTimeout = 5 * time.Second

// Subscribe listens for control messages on topic.
func (s *Streamer) Subscribe(client mqtt.Client, topic string) error {
	token := client.Subscribe(topic, 1, s.handleControlMessage)
	token.Wait()
	if err := token.Error(); err != nil {
		return err
	}
	log.Printf("Subscribed to %s", topic)
	return nil
}

func (s *Streamer) handleControlMessage(client mqtt.Client, msg mqtt.Message) {
	log.Printf("Received msg %d on %s: %s", msg.MessageID(), msg.Topic(), msg.Payload())

	var message ControlMessage
	if err := json.Unmarshal(msg.Payload(), &message); err != nil {
		log.Printf("Ignoring control message: %v", err)
		return
	}
	cmd, err := ParseCommand(message.Type)
	if err != nil {
		log.Printf("Ignoring control message: %v", err)
		return
	}

	// The client's router must not block while the loop is publishing.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), controlTimeout)
		defer cancel()
		if err := s.Submit(ctx, cmd); err != nil {
			log.Printf("Control %s failed: %v", cmd, err)
		}
	}()
}
