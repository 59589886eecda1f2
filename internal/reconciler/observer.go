package reconciler

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/wheelparty/chaoswheel/internal/models"
	"github.com/wheelparty/chaoswheel/internal/services/room"
	"github.com/wheelparty/chaoswheel/internal/transport"
)

const defaultPollInterval = 5 * time.Second

// SnapshotSource provides authoritative room snapshots
type SnapshotSource interface {
	GetSnapshot(ctx context.Context, input *room.GetSnapshotInput) (*room.GetSnapshotOutput, error)
}

// Config holds the observer's collaborators
type Config struct {
	RoomID     string
	Snapshots  SnapshotSource
	Subscriber transport.Subscriber

	// PollInterval is how often the observer re-snapshots to reconcile
	// any events the push feed dropped. Defaults to 5 seconds.
	PollInterval time.Duration
}

// Observer maintains a live projection of one room: an initial snapshot,
// pushed events folded in as they arrive, and a periodic snapshot poll as
// a backstop for dropped messages. Deduplication by event sequence makes
// the push and poll paths safe to overlap.
type Observer struct {
	roomID       string
	snapshots    SnapshotSource
	subscriber   transport.Subscriber
	pollInterval time.Duration

	mu    sync.RWMutex
	state State

	updates chan State
}

// New creates an observer for a room
func New(cfg *Config) (*Observer, error) {
	if cfg == nil || cfg.RoomID == "" {
		return nil, errors.New("config and room ID cannot be empty")
	}
	if cfg.Snapshots == nil {
		return nil, errors.New("snapshot source is required")
	}
	if cfg.Subscriber == nil {
		return nil, errors.New("subscriber is required")
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}

	return &Observer{
		roomID:       cfg.RoomID,
		snapshots:    cfg.Snapshots,
		subscriber:   cfg.Subscriber,
		pollInterval: cfg.PollInterval,
		state:        NewState(cfg.RoomID),
		updates:      make(chan State, 16),
	}, nil
}

// Current returns the latest projection
func (o *Observer) Current() State {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.state
}

// Updates returns a channel of projection states. Slow consumers miss
// intermediate states, never the latest: Current always has it.
func (o *Observer) Updates() <-chan State {
	return o.updates
}

// Run drives the observer until the context is cancelled. The first
// snapshot must succeed; after that, snapshot and subscription failures
// are logged and retried on the poll interval.
func (o *Observer) Run(ctx context.Context) error {
	if err := o.resync(ctx); err != nil {
		return err
	}

	msgs, cancel, err := o.subscriber.Subscribe(ctx, o.roomID)
	if err != nil {
		return err
	}
	defer func() { cancel() }()

	ticker := time.NewTicker(o.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case msg, ok := <-msgs:
			if !ok {
				// Feed dropped; re-establish and resync on return
				cancel()
				msgs, cancel, err = o.subscriber.Subscribe(ctx, o.roomID)
				if err != nil {
					return err
				}
				if err := o.resync(ctx); err != nil {
					log.Printf("room %s: resync after reconnect failed: %v", o.roomID, err)
				}
				continue
			}
			o.consume(msg)

		case <-ticker.C:
			if err := o.resync(ctx); err != nil {
				log.Printf("room %s: snapshot poll failed: %v", o.roomID, err)
			}
		}
	}
}

func (o *Observer) consume(msg transport.Message) {
	o.mu.Lock()
	switch {
	case msg.Event != nil:
		o.state = o.state.Apply(msg.Event)
	case msg.Room != nil:
		o.state = o.mergeRoom(o.state, msg.Room)
	}
	state := o.state
	o.mu.Unlock()

	o.publish(state)
}

func (o *Observer) resync(ctx context.Context) error {
	snapshot, err := o.snapshots.GetSnapshot(ctx, &room.GetSnapshotInput{RoomID: o.roomID})
	if err != nil {
		return err
	}

	o.mu.Lock()
	o.state = o.state.WithSnapshot(snapshot)
	state := o.state
	o.mu.Unlock()

	o.publish(state)
	return nil
}

// mergeRoom folds a pushed room update into the projection: durable room
// fields are authoritative, roster, votes and reactions stay as folded.
func (o *Observer) mergeRoom(s State, r *models.Room) State {
	next := s
	next.Name = r.Name
	next.Phase = r.Phase
	next.HostParticipantID = r.HostParticipantID
	next.SeedCommitment = r.SeedCommitment
	next.RevealedSeed = r.RevealedSeed
	next.Modifier = r.ChaosModifier
	next.WinnerOptionID = r.WinnerOptionID
	next.CountdownSeconds = r.CountdownSeconds
	next.Options = r.Options
	return next
}

func (o *Observer) publish(state State) {
	select {
	case o.updates <- state:
	default:
	}
}
