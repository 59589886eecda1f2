package reconciler

import (
	"time"

	"github.com/wheelparty/chaoswheel/internal/models"
	"github.com/wheelparty/chaoswheel/internal/services/room"
)

// maxReactions bounds the reaction feed kept in a projection. Older
// reactions fall off; they are ephemeral and never part of durable state.
const maxReactions = 30

// Member is a projected roster entry
type Member struct {
	Nickname string                 `json:"nickname"`
	Role     models.ParticipantRole `json:"role"`
}

// Reaction is a projected ephemeral reaction
type Reaction struct {
	ParticipantID string    `json:"participantId,omitempty"`
	Emoji         string    `json:"emoji"`
	At            time.Time `json:"at"`
}

// State is a client-side projection of one room, built by folding the
// room's event feed over a snapshot. It is a value type: Apply and
// ApplyRoom return new states and never mutate their receiver's maps or
// slices, so an old State stays valid after newer events arrive.
type State struct {
	RoomID            string            `json:"roomId"`
	Name              string            `json:"name"`
	Phase             models.RoomPhase  `json:"phase"`
	HostParticipantID string            `json:"hostParticipantId"`
	SeedCommitment    string            `json:"seedCommitment,omitempty"`
	RevealedSeed      string            `json:"revealedSeed,omitempty"`
	Modifier          models.Modifier   `json:"modifier,omitempty"`
	WinnerOptionID    string            `json:"winnerOptionId,omitempty"`
	Weights           []int             `json:"weights,omitempty"`
	CountdownSeconds  int               `json:"countdownSeconds,omitempty"`
	LockedAt          time.Time         `json:"lockedAt,omitzero"`
	Options           []*models.Option  `json:"options"`
	Members           map[string]Member `json:"members"`
	Votes             map[string]string `json:"votes"`
	Reactions         []Reaction        `json:"reactions,omitempty"`

	// LastSeq is the highest event sequence folded in; events at or below
	// it are duplicates and ignored
	LastSeq int64 `json:"lastSeq"`
}

// NewState returns an empty projection for a room
func NewState(roomID string) State {
	return State{
		RoomID:  roomID,
		Members: map[string]Member{},
		Votes:   map[string]string{},
	}
}

// WithSnapshot overwrites the durable fields of the projection from an
// authoritative snapshot. Reactions and LastSeq survive: reactions are not
// part of durable state, and the event cursor must not move backwards.
func (s State) WithSnapshot(snapshot *room.GetSnapshotOutput) State {
	next := s

	r := snapshot.Room
	next.RoomID = r.ID
	next.Name = r.Name
	next.Phase = r.Phase
	next.HostParticipantID = r.HostParticipantID
	next.SeedCommitment = r.SeedCommitment
	next.RevealedSeed = r.RevealedSeed
	next.Modifier = r.ChaosModifier
	next.WinnerOptionID = r.WinnerOptionID
	next.CountdownSeconds = r.CountdownSeconds
	next.Options = r.Options

	members := make(map[string]Member, len(snapshot.Participants))
	for _, p := range snapshot.Participants {
		members[p.ID] = Member{Nickname: p.Nickname, Role: p.Role}
	}
	next.Members = members

	votes := make(map[string]string, len(snapshot.Votes))
	for participantID, optionID := range snapshot.Votes {
		votes[participantID] = optionID
	}
	next.Votes = votes

	return next
}

// Apply folds one event into the projection and returns the new state.
// Duplicate and out-of-order deliveries are ignored by sequence number.
func (s State) Apply(event *models.Event) State {
	if event == nil || event.RoomID != s.RoomID {
		return s
	}
	if event.Seq != 0 && event.Seq <= s.LastSeq {
		return s
	}

	next := s
	if event.Seq != 0 {
		next.LastSeq = event.Seq
	}
	p := event.Payload

	switch event.Type {
	case models.EventRoomCreated:
		next.Name = p.Name
		next.Phase = models.RoomPhaseOpen

	case models.EventParticipantJoined:
		members := make(map[string]Member, len(s.Members)+1)
		for id, m := range s.Members {
			members[id] = m
		}
		members[p.ParticipantID] = Member{Nickname: p.Nickname, Role: p.Role}
		next.Members = members
		if p.Role == models.RoleHost && next.HostParticipantID == "" {
			next.HostParticipantID = p.ParticipantID
		}

	case models.EventVotePlaced:
		votes := make(map[string]string, len(s.Votes)+1)
		for id, optionID := range s.Votes {
			votes[id] = optionID
		}
		votes[p.ParticipantID] = p.OptionID
		next.Votes = votes

	case models.EventReactionSent:
		reactions := make([]Reaction, 0, len(s.Reactions)+1)
		reactions = append(reactions, s.Reactions...)
		reactions = append(reactions, Reaction{
			ParticipantID: p.ParticipantID,
			Emoji:         p.Emoji,
			At:            event.CreatedAt,
		})
		if len(reactions) > maxReactions {
			reactions = reactions[len(reactions)-maxReactions:]
		}
		next.Reactions = reactions

	case models.EventPhaseSet:
		next.Phase = p.Phase
		if p.Phase == models.RoomPhaseLocked {
			next.LockedAt = p.At
			next.CountdownSeconds = p.CountdownSeconds
		} else {
			// Only a locked room has a pending auto-reveal instant
			next.LockedAt = time.Time{}
			next.CountdownSeconds = 0
		}
		if p.Phase == models.RoomPhaseOpen && p.Reset {
			next.SeedCommitment = ""
			next.RevealedSeed = ""
			next.Modifier = ""
			next.WinnerOptionID = ""
			next.Weights = nil
			next.Votes = map[string]string{}
			next.Reactions = nil
		}

	case models.EventSeedCommit:
		next.SeedCommitment = p.SeedHash

	case models.EventSeedReveal:
		next.RevealedSeed = p.Seed

	case models.EventResultFinal:
		next.WinnerOptionID = p.WinnerOptionID
		next.Modifier = p.Modifier
		next.RevealedSeed = p.Seed
		next.Weights = p.Weights
		// A recorded winner always means results, even if the closing
		// phase event was dropped
		next.Phase = models.RoomPhaseResults
	}

	return next
}

// ApplyAll folds a batch of events in order
func (s State) ApplyAll(events []*models.Event) State {
	next := s
	for _, event := range events {
		next = next.Apply(event)
	}
	return next
}

// DerivedPhase resolves the phase a client should render. A recorded
// winner dominates whatever phase field was last seen; otherwise the raw
// stored phase is trusted as-is, since every event and snapshot that
// builds a projection carries one.
func (s State) DerivedPhase() models.RoomPhase {
	if s.WinnerOptionID != "" {
		return models.RoomPhaseResults
	}
	return s.Phase
}

// VoteCounts tallies votes per option ID
func (s State) VoteCounts() map[string]int {
	counts := make(map[string]int, len(s.Options))
	for _, optionID := range s.Votes {
		counts[optionID]++
	}
	return counts
}

// AutoRevealDue reports whether the lock countdown has elapsed without a
// result. The countdown is advisory: the reveal itself still goes through
// the service, which guarantees at most one draw per lock cycle.
func (s State) AutoRevealDue(now time.Time) bool {
	if s.Phase != models.RoomPhaseLocked || s.WinnerOptionID != "" {
		return false
	}
	if s.CountdownSeconds <= 0 || s.LockedAt.IsZero() {
		return false
	}
	return !now.Before(s.LockedAt.Add(time.Duration(s.CountdownSeconds) * time.Second))
}
