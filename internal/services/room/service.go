package room

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/wheelparty/chaoswheel/internal/commitment"
	"github.com/wheelparty/chaoswheel/internal/common/clock"
	"github.com/wheelparty/chaoswheel/internal/common/uuid"
	"github.com/wheelparty/chaoswheel/internal/lottery"
	"github.com/wheelparty/chaoswheel/internal/models"
	eventRepo "github.com/wheelparty/chaoswheel/internal/repositories/event"
	participantRepo "github.com/wheelparty/chaoswheel/internal/repositories/participant"
	roomRepo "github.com/wheelparty/chaoswheel/internal/repositories/room"
	seedRepo "github.com/wheelparty/chaoswheel/internal/repositories/seed"
	voteRepo "github.com/wheelparty/chaoswheel/internal/repositories/vote"
	"github.com/wheelparty/chaoswheel/internal/transport"
)

const (
	defaultMinOptions       = 2
	defaultMaxOptions       = 12
	defaultMaxCountdownSecs = 20
)

// Config holds the service's collaborators and tunables
type Config struct {
	RoomRepo        roomRepo.Repository
	ParticipantRepo participantRepo.Repository
	VoteRepo        voteRepo.Repository
	SeedRepo        seedRepo.Repository
	EventRepo       eventRepo.Repository
	Publisher       transport.Publisher
	Generator       commitment.Generator
	Clock           clock.Clock
	UUID            uuid.UUID

	// MinOptions and MaxOptions bound the option count at room creation
	MinOptions int
	MaxOptions int

	// MaxCountdownSeconds bounds the auto-reveal countdown at lock time
	MaxCountdownSeconds int
}

// service implements the Service interface
type service struct {
	roomRepo        roomRepo.Repository
	participantRepo participantRepo.Repository
	voteRepo        voteRepo.Repository
	seedRepo        seedRepo.Repository
	eventRepo       eventRepo.Repository
	publisher       transport.Publisher
	generator       commitment.Generator
	clock           clock.Clock
	uuid            uuid.UUID

	minOptions          int
	maxOptions          int
	maxCountdownSeconds int
}

// New creates a new room service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.RoomRepo == nil || cfg.ParticipantRepo == nil || cfg.VoteRepo == nil ||
		cfg.SeedRepo == nil || cfg.EventRepo == nil {
		return nil, errors.New("all repositories are required")
	}
	if cfg.Publisher == nil {
		return nil, errors.New("publisher is required")
	}
	if cfg.Generator == nil {
		return nil, errors.New("generator is required")
	}
	if cfg.Clock == nil {
		cfg.Clock = &clock.DefaultClock{}
	}
	if cfg.UUID == nil {
		cfg.UUID = uuid.New()
	}
	if cfg.MinOptions == 0 {
		cfg.MinOptions = defaultMinOptions
	}
	if cfg.MaxOptions == 0 {
		cfg.MaxOptions = defaultMaxOptions
	}
	if cfg.MaxCountdownSeconds == 0 {
		cfg.MaxCountdownSeconds = defaultMaxCountdownSecs
	}

	return &service{
		roomRepo:            cfg.RoomRepo,
		participantRepo:     cfg.ParticipantRepo,
		voteRepo:            cfg.VoteRepo,
		seedRepo:            cfg.SeedRepo,
		eventRepo:           cfg.EventRepo,
		publisher:           cfg.Publisher,
		generator:           cfg.Generator,
		clock:               cfg.Clock,
		uuid:                cfg.UUID,
		minOptions:          cfg.MinOptions,
		maxOptions:          cfg.MaxOptions,
		maxCountdownSeconds: cfg.MaxCountdownSeconds,
	}, nil
}

// CreateRoom creates a room in the open phase with its host and options
func (s *service) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, errors.New("input and room name cannot be empty")
	}

	if len(input.OptionLabels) < s.minOptions || len(input.OptionLabels) > s.maxOptions {
		return nil, ErrInvalidOptions
	}

	now := s.clock.Now()
	roomID := s.uuid.NewUUID()
	hostID := s.uuid.NewUUID()

	options := make([]*models.Option, 0, len(input.OptionLabels))
	for i, label := range input.OptionLabels {
		options = append(options, &models.Option{
			ID:         s.uuid.NewUUID(),
			RoomID:     roomID,
			Label:      strings.TrimSpace(label),
			OrderIndex: i,
		})
	}

	hostNickname := strings.TrimSpace(input.HostNickname)
	if hostNickname == "" {
		hostNickname = "Host"
	}

	room := &models.Room{
		ID:                roomID,
		Name:              strings.TrimSpace(input.Name),
		Phase:             models.RoomPhaseOpen,
		HostParticipantID: hostID,
		Options:           options,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	host := &models.Participant{
		ID:         hostID,
		RoomID:     roomID,
		Nickname:   hostNickname,
		Role:       models.RoleHost,
		CreatedAt:  now,
		LastSeenAt: now,
	}

	if err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: room}); err != nil {
		return nil, err
	}

	if err := s.participantRepo.SaveParticipant(ctx, &participantRepo.SaveParticipantInput{
		Participant: host,
	}); err != nil {
		return nil, err
	}

	if err := s.appendEvent(ctx, roomID, models.EventRoomCreated, models.EventPayload{
		Name: room.Name,
	}); err != nil {
		return nil, err
	}
	if err := s.appendEvent(ctx, roomID, models.EventParticipantJoined, models.EventPayload{
		ParticipantID: host.ID,
		Nickname:      host.Nickname,
		Role:          host.Role,
	}); err != nil {
		return nil, err
	}

	return &CreateRoomOutput{
		Room: room,
		Host: host,
	}, nil
}

// JoinRoom adds a participant to a room
func (s *service) JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error) {
	if input == nil || input.RoomID == "" || strings.TrimSpace(input.Nickname) == "" {
		return nil, errors.New("input, room ID and nickname cannot be empty")
	}

	if _, err := s.getRoom(ctx, input.RoomID); err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = models.RolePlayer
	}
	if role != models.RolePlayer && role != models.RoleSpectator {
		return nil, fmt.Errorf("cannot join with role %q", input.Role)
	}

	now := s.clock.Now()
	participant := &models.Participant{
		ID:         s.uuid.NewUUID(),
		RoomID:     input.RoomID,
		Nickname:   strings.TrimSpace(input.Nickname),
		Role:       role,
		CreatedAt:  now,
		LastSeenAt: now,
	}

	if err := s.participantRepo.SaveParticipant(ctx, &participantRepo.SaveParticipantInput{
		Participant: participant,
	}); err != nil {
		return nil, err
	}

	if err := s.appendEvent(ctx, input.RoomID, models.EventParticipantJoined, models.EventPayload{
		ParticipantID: participant.ID,
		Nickname:      participant.Nickname,
		Role:          participant.Role,
	}); err != nil {
		return nil, err
	}

	return &JoinRoomOutput{
		Participant: participant,
	}, nil
}

// CastVote records a participant's vote while the room is open
func (s *service) CastVote(ctx context.Context, input *CastVoteInput) (*CastVoteOutput, error) {
	if input == nil || input.RoomID == "" || input.ParticipantID == "" || input.OptionID == "" {
		return nil, errors.New("input, room ID, participant ID and option ID cannot be empty")
	}

	room, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	if room.Phase != models.RoomPhaseOpen {
		return nil, ErrVotingClosed
	}

	participant, err := s.participantRepo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
		ParticipantID: input.ParticipantID,
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}
	if participant.RoomID != input.RoomID {
		return nil, ErrParticipantNotFound
	}
	if participant.Role == models.RoleSpectator {
		return nil, ErrSpectatorVote
	}

	if room.OptionByID(input.OptionID) == nil {
		return nil, ErrOptionNotFound
	}

	// HSET on the room's vote hash makes a repeat vote last-write-wins
	if err := s.voteRepo.SetVote(ctx, &voteRepo.SetVoteInput{
		RoomID:        input.RoomID,
		ParticipantID: input.ParticipantID,
		OptionID:      input.OptionID,
	}); err != nil {
		return nil, err
	}

	if err := s.appendEvent(ctx, input.RoomID, models.EventVotePlaced, models.EventPayload{
		ParticipantID: input.ParticipantID,
		OptionID:      input.OptionID,
	}); err != nil {
		return nil, err
	}

	return &CastVoteOutput{}, nil
}

// SendReaction appends an ephemeral reaction event. Reactions are never
// persisted as state; they exist only on the event feed.
func (s *service) SendReaction(ctx context.Context, input *SendReactionInput) (*SendReactionOutput, error) {
	if input == nil || input.RoomID == "" || input.Emoji == "" {
		return nil, errors.New("input, room ID and emoji cannot be empty")
	}

	if _, err := s.getRoom(ctx, input.RoomID); err != nil {
		return nil, err
	}

	if err := s.appendEvent(ctx, input.RoomID, models.EventReactionSent, models.EventPayload{
		ParticipantID: input.ParticipantID,
		Emoji:         input.Emoji,
	}); err != nil {
		return nil, err
	}

	return &SendReactionOutput{}, nil
}

// LockRoom closes voting and commits a fresh seed. The seed row is durably
// stored before the room phase flips, so a crash in between leaves the room
// open and the lock simply retryable.
func (s *service) LockRoom(ctx context.Context, input *LockRoomInput) (*LockRoomOutput, error) {
	if input == nil || input.RoomID == "" || input.CallerID == "" {
		return nil, errors.New("input, room ID and caller ID cannot be empty")
	}

	if input.CountdownSeconds < 0 || input.CountdownSeconds > s.maxCountdownSeconds {
		return nil, ErrInvalidCountdown
	}

	room, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	if room.HostParticipantID != input.CallerID {
		return nil, ErrNotHost
	}

	if room.Phase != models.RoomPhaseOpen {
		return nil, ErrIllegalTransition
	}

	secret, err := s.generator.NewSecret()
	if err != nil {
		return nil, fmt.Errorf("failed to generate seed: %w", err)
	}
	hash := commitment.Hash(secret)

	now := s.clock.Now()
	if err := s.seedRepo.UpsertSeed(ctx, &seedRepo.UpsertSeedInput{
		Record: &seedRepo.Record{
			RoomID:    input.RoomID,
			Secret:    secret,
			Hash:      hash,
			CreatedAt: now,
		},
	}); err != nil {
		return nil, err
	}

	room.Phase = models.RoomPhaseLocked
	room.SeedCommitment = hash
	room.RevealedSeed = ""
	room.ChaosModifier = ""
	room.WinnerOptionID = ""
	room.CountdownSeconds = input.CountdownSeconds
	room.UpdatedAt = now

	if err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: room}); err != nil {
		return nil, err
	}
	s.publishRoom(ctx, room)

	if err := s.appendEvent(ctx, input.RoomID, models.EventPhaseSet, models.EventPayload{
		Phase:            models.RoomPhaseLocked,
		At:               now,
		CountdownSeconds: input.CountdownSeconds,
	}); err != nil {
		return nil, err
	}
	if err := s.appendEvent(ctx, input.RoomID, models.EventSeedCommit, models.EventPayload{
		SeedHash: hash,
	}); err != nil {
		return nil, err
	}

	return &LockRoomOutput{
		SeedCommitment:   hash,
		CountdownSeconds: input.CountdownSeconds,
	}, nil
}

// RevealRoom verifies the committed seed, runs the draw and records the
// winner. Safe under duplicate and concurrent invocation: the first
// successful reveal is authoritative and later calls observe its result.
func (s *service) RevealRoom(ctx context.Context, input *RevealRoomInput) (*RevealRoomOutput, error) {
	if input == nil || input.RoomID == "" || input.CallerID == "" {
		return nil, errors.New("input, room ID and caller ID cannot be empty")
	}

	room, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	if room.HostParticipantID != input.CallerID {
		return nil, ErrNotHost
	}

	if room.Phase != models.RoomPhaseLocked && room.Phase != models.RoomPhaseResults {
		return nil, ErrIllegalTransition
	}

	// Duplicate host click or retried request: expose the recorded result,
	// never run the draw twice for one lock cycle
	if room.WinnerOptionID != "" && room.RevealedSeed != "" {
		return &RevealRoomOutput{
			WinnerOptionID: room.WinnerOptionID,
			Modifier:       room.ChaosModifier,
			RevealedSeed:   room.RevealedSeed,
		}, nil
	}

	record, err := s.seedRepo.GetSeed(ctx, &seedRepo.GetSeedInput{RoomID: input.RoomID})
	if err != nil {
		if errors.Is(err, seedRepo.ErrSeedNotFound) {
			return nil, fmt.Errorf("%w: seed record missing", ErrIntegrityFailure)
		}
		return nil, err
	}

	// Two checks, failing closed: the stored pair must match the room's
	// published commitment, and the stored secret must hash to the stored
	// commitment. A mismatch never falls back to a new seed.
	if room.SeedCommitment != "" && record.Hash != room.SeedCommitment {
		return nil, fmt.Errorf("%w: stored hash diverges from published commitment", ErrIntegrityFailure)
	}
	if err := commitment.Verify(record.Secret, record.Hash); err != nil {
		return nil, fmt.Errorf("%w: stored secret does not hash to commitment", ErrIntegrityFailure)
	}

	claimed, err := s.seedRepo.ClaimReveal(ctx, &seedRepo.ClaimRevealInput{RoomID: input.RoomID})
	if err != nil {
		return nil, err
	}
	if !claimed {
		// Lost the race; the winner observes the claimant's result
		refreshed, err := s.getRoom(ctx, input.RoomID)
		if err != nil {
			return nil, err
		}
		if refreshed.WinnerOptionID != "" && refreshed.RevealedSeed != "" {
			return &RevealRoomOutput{
				WinnerOptionID: refreshed.WinnerOptionID,
				Modifier:       refreshed.ChaosModifier,
				RevealedSeed:   refreshed.RevealedSeed,
			}, nil
		}
		return nil, ErrRevealInProgress
	}

	votes, err := s.voteRepo.GetVotesByRoom(ctx, &voteRepo.GetVotesByRoomInput{RoomID: input.RoomID})
	if err != nil {
		return nil, err
	}

	voteCounts := make(map[string]int)
	for _, optionID := range votes {
		voteCounts[optionID]++
	}

	outcome, err := lottery.Compute(lottery.Input{
		Seed:       record.Secret,
		OptionIDs:  room.OptionIDs(),
		VoteCounts: voteCounts,
	})
	if err != nil {
		return nil, err
	}

	// Winner, modifier, seed and phase land in one room write, so no
	// observer can see RESULTS without a durable winner
	now := s.clock.Now()
	room.Phase = models.RoomPhaseResults
	room.RevealedSeed = record.Secret
	room.ChaosModifier = outcome.Modifier
	room.WinnerOptionID = outcome.WinnerOptionID
	room.UpdatedAt = now

	if err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: room}); err != nil {
		return nil, err
	}

	if err := s.seedRepo.MarkRevealed(ctx, &seedRepo.MarkRevealedInput{
		RoomID:     input.RoomID,
		RevealedAt: now,
	}); err != nil {
		log.Printf("room %s: failed to mark seed revealed: %v", input.RoomID, err)
	}

	s.publishRoom(ctx, room)

	if err := s.appendEvent(ctx, input.RoomID, models.EventPhaseSet, models.EventPayload{
		Phase: models.RoomPhaseRevealing,
		At:    now,
	}); err != nil {
		return nil, err
	}
	if err := s.appendEvent(ctx, input.RoomID, models.EventSeedReveal, models.EventPayload{
		Seed: record.Secret,
	}); err != nil {
		return nil, err
	}
	if err := s.appendEvent(ctx, input.RoomID, models.EventResultFinal, models.EventPayload{
		WinnerOptionID: outcome.WinnerOptionID,
		Modifier:       outcome.Modifier,
		Seed:           record.Secret,
		Weights:        outcome.Weights,
	}); err != nil {
		return nil, err
	}
	if err := s.appendEvent(ctx, input.RoomID, models.EventPhaseSet, models.EventPayload{
		Phase: models.RoomPhaseResults,
		At:    now,
	}); err != nil {
		return nil, err
	}

	return &RevealRoomOutput{
		WinnerOptionID: outcome.WinnerOptionID,
		Modifier:       outcome.Modifier,
		RevealedSeed:   record.Secret,
		Weights:        outcome.Weights,
	}, nil
}

// Rematch resets the room for another round. The next lock commits a
// fresh secret unrelated to the previous cycle's.
func (s *service) Rematch(ctx context.Context, input *RematchInput) (*RematchOutput, error) {
	if input == nil || input.RoomID == "" || input.CallerID == "" {
		return nil, errors.New("input, room ID and caller ID cannot be empty")
	}

	room, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	if room.HostParticipantID != input.CallerID {
		return nil, ErrNotHost
	}

	if err := s.voteRepo.DeleteVotesByRoom(ctx, &voteRepo.DeleteVotesByRoomInput{
		RoomID: input.RoomID,
	}); err != nil {
		return nil, err
	}
	if err := s.seedRepo.DeleteSeed(ctx, &seedRepo.DeleteSeedInput{
		RoomID: input.RoomID,
	}); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	room.Phase = models.RoomPhaseOpen
	room.SeedCommitment = ""
	room.RevealedSeed = ""
	room.ChaosModifier = ""
	room.WinnerOptionID = ""
	room.CountdownSeconds = 0
	room.UpdatedAt = now

	if err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: room}); err != nil {
		return nil, err
	}
	s.publishRoom(ctx, room)

	if err := s.appendEvent(ctx, input.RoomID, models.EventPhaseSet, models.EventPayload{
		Phase: models.RoomPhaseOpen,
		At:    now,
		Reset: true,
	}); err != nil {
		return nil, err
	}

	return &RematchOutput{}, nil
}

// GetSnapshot reads the room, roster and vote map in one logical read
func (s *service) GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*GetSnapshotOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	room, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	participants, err := s.participantRepo.GetParticipantsByRoom(ctx, &participantRepo.GetParticipantsByRoomInput{
		RoomID: input.RoomID,
	})
	if err != nil {
		return nil, err
	}

	votes, err := s.voteRepo.GetVotesByRoom(ctx, &voteRepo.GetVotesByRoomInput{
		RoomID: input.RoomID,
	})
	if err != nil {
		return nil, err
	}

	return &GetSnapshotOutput{
		Room:         room,
		Participants: participants,
		Votes:        votes,
	}, nil
}

// GetEvents reads the room's event log past a known sequence number
func (s *service) GetEvents(ctx context.Context, input *GetEventsInput) (*GetEventsOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	if _, err := s.getRoom(ctx, input.RoomID); err != nil {
		return nil, err
	}

	events, err := s.eventRepo.GetEvents(ctx, &eventRepo.GetEventsInput{
		RoomID:   input.RoomID,
		AfterSeq: input.AfterSeq,
	})
	if err != nil {
		return nil, err
	}

	return &GetEventsOutput{Events: events}, nil
}

func (s *service) getRoom(ctx context.Context, roomID string) (*models.Room, error) {
	room, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{RoomID: roomID})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

// appendEvent appends a durable event and pushes it to observers. The push
// is best-effort: observers reconcile through snapshot polling if it drops.
func (s *service) appendEvent(ctx context.Context, roomID string, eventType models.EventType, payload models.EventPayload) error {
	stored, err := s.eventRepo.AppendEvent(ctx, &eventRepo.AppendEventInput{
		Event: &models.Event{
			ID:        s.uuid.NewUUID(),
			RoomID:    roomID,
			Type:      eventType,
			Payload:   payload,
			CreatedAt: s.clock.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to append %s event: %w", eventType, err)
	}

	if err := s.publisher.PublishEvent(ctx, stored); err != nil {
		log.Printf("room %s: failed to publish %s event: %v", roomID, eventType, err)
	}

	return nil
}

func (s *service) publishRoom(ctx context.Context, room *models.Room) {
	if err := s.publisher.PublishRoomUpdate(ctx, room); err != nil {
		log.Printf("room %s: failed to publish room update: %v", room.ID, err)
	}
}
