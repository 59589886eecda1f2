package reconciler

import (
	"fmt"
	"testing"
	"time"

	"github.com/wheelparty/chaoswheel/internal/models"
	"github.com/wheelparty/chaoswheel/internal/services/room"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(roomID string, seq int64, eventType models.EventType, payload models.EventPayload) *models.Event {
	return &models.Event{
		ID:        fmt.Sprintf("event-%d", seq),
		RoomID:    roomID,
		Seq:       seq,
		Type:      eventType,
		Payload:   payload,
		CreatedAt: time.Date(2025, 6, 7, 19, 30, 0, 0, time.UTC).Add(time.Duration(seq) * time.Second),
	}
}

func TestStateFoldFullRound(t *testing.T) {
	roomID := "room-1"
	lockedAt := time.Date(2025, 6, 7, 19, 31, 0, 0, time.UTC)

	state := NewState(roomID).ApplyAll([]*models.Event{
		event(roomID, 1, models.EventRoomCreated, models.EventPayload{Name: "Friday Dinner"}),
		event(roomID, 2, models.EventParticipantJoined, models.EventPayload{
			ParticipantID: "host-1", Nickname: "Alice", Role: models.RoleHost,
		}),
		event(roomID, 3, models.EventParticipantJoined, models.EventPayload{
			ParticipantID: "player-1", Nickname: "Bob", Role: models.RolePlayer,
		}),
		event(roomID, 4, models.EventVotePlaced, models.EventPayload{
			ParticipantID: "player-1", OptionID: "opt-a",
		}),
		event(roomID, 5, models.EventPhaseSet, models.EventPayload{
			Phase: models.RoomPhaseLocked, At: lockedAt, CountdownSeconds: 5,
		}),
		event(roomID, 6, models.EventSeedCommit, models.EventPayload{SeedHash: "deadbeef"}),
		event(roomID, 7, models.EventPhaseSet, models.EventPayload{Phase: models.RoomPhaseRevealing}),
		event(roomID, 8, models.EventSeedReveal, models.EventPayload{Seed: "abc123"}),
		event(roomID, 9, models.EventResultFinal, models.EventPayload{
			WinnerOptionID: "opt-a",
			Modifier:       models.ModifierLucky7,
			Seed:           "abc123",
			Weights:        []int{9, 1},
		}),
		event(roomID, 10, models.EventPhaseSet, models.EventPayload{Phase: models.RoomPhaseResults}),
	})

	assert.Equal(t, "Friday Dinner", state.Name)
	assert.Equal(t, models.RoomPhaseResults, state.Phase)
	assert.Equal(t, "host-1", state.HostParticipantID)
	assert.Len(t, state.Members, 2)
	assert.Equal(t, Member{Nickname: "Bob", Role: models.RolePlayer}, state.Members["player-1"])
	assert.Equal(t, "opt-a", state.Votes["player-1"])
	assert.Equal(t, "deadbeef", state.SeedCommitment)
	assert.Equal(t, "abc123", state.RevealedSeed)
	assert.Equal(t, "opt-a", state.WinnerOptionID)
	assert.Equal(t, models.ModifierLucky7, state.Modifier)
	assert.Equal(t, []int{9, 1}, state.Weights)
	// Leaving LOCKED discards the pending auto-reveal instant
	assert.True(t, state.LockedAt.IsZero())
	assert.Zero(t, state.CountdownSeconds)
	assert.Equal(t, int64(10), state.LastSeq)
}

func TestStateIgnoresDuplicatesAndOtherRooms(t *testing.T) {
	state := NewState("room-1").
		Apply(event("room-1", 1, models.EventVotePlaced, models.EventPayload{
			ParticipantID: "p1", OptionID: "opt-a",
		}))

	// Replayed event must not overwrite a later vote
	state = state.Apply(event("room-1", 2, models.EventVotePlaced, models.EventPayload{
		ParticipantID: "p1", OptionID: "opt-b",
	}))
	state = state.Apply(event("room-1", 1, models.EventVotePlaced, models.EventPayload{
		ParticipantID: "p1", OptionID: "opt-a",
	}))
	assert.Equal(t, "opt-b", state.Votes["p1"])
	assert.Equal(t, int64(2), state.LastSeq)

	// Another room's event is a no-op
	state = state.Apply(event("room-2", 9, models.EventVotePlaced, models.EventPayload{
		ParticipantID: "p2", OptionID: "opt-c",
	}))
	assert.NotContains(t, state.Votes, "p2")
	assert.Equal(t, int64(2), state.LastSeq)

	assert.Equal(t, state, state.Apply(nil))
}

func TestStateApplyIsCopyOnWrite(t *testing.T) {
	before := NewState("room-1").Apply(event("room-1", 1, models.EventVotePlaced, models.EventPayload{
		ParticipantID: "p1", OptionID: "opt-a",
	}))

	after := before.Apply(event("room-1", 2, models.EventVotePlaced, models.EventPayload{
		ParticipantID: "p1", OptionID: "opt-b",
	}))

	assert.Equal(t, "opt-a", before.Votes["p1"])
	assert.Equal(t, "opt-b", after.Votes["p1"])
}

func TestStateReactionFeedIsBounded(t *testing.T) {
	state := NewState("room-1")
	for i := 1; i <= maxReactions+10; i++ {
		state = state.Apply(event("room-1", int64(i), models.EventReactionSent, models.EventPayload{
			ParticipantID: "p1",
			Emoji:         fmt.Sprintf("emoji-%d", i),
		}))
	}

	require.Len(t, state.Reactions, maxReactions)
	// Oldest dropped, newest kept
	assert.Equal(t, "emoji-11", state.Reactions[0].Emoji)
	assert.Equal(t, fmt.Sprintf("emoji-%d", maxReactions+10), state.Reactions[maxReactions-1].Emoji)
}

func TestStateResetClearsRoundState(t *testing.T) {
	roomID := "room-1"
	state := NewState(roomID).ApplyAll([]*models.Event{
		event(roomID, 1, models.EventVotePlaced, models.EventPayload{ParticipantID: "p1", OptionID: "opt-a"}),
		event(roomID, 2, models.EventReactionSent, models.EventPayload{ParticipantID: "p1", Emoji: "🔥"}),
		event(roomID, 3, models.EventPhaseSet, models.EventPayload{
			Phase: models.RoomPhaseLocked, At: time.Now(), CountdownSeconds: 5,
		}),
		event(roomID, 4, models.EventSeedCommit, models.EventPayload{SeedHash: "deadbeef"}),
		event(roomID, 5, models.EventResultFinal, models.EventPayload{
			WinnerOptionID: "opt-a", Modifier: models.ModifierDoubleDown, Seed: "abc123", Weights: []int{4, 1},
		}),
		event(roomID, 6, models.EventPhaseSet, models.EventPayload{
			Phase: models.RoomPhaseOpen, Reset: true,
		}),
	})

	assert.Equal(t, models.RoomPhaseOpen, state.Phase)
	assert.Empty(t, state.SeedCommitment)
	assert.Empty(t, state.RevealedSeed)
	assert.Empty(t, state.WinnerOptionID)
	assert.Empty(t, state.Modifier)
	assert.Nil(t, state.Weights)
	assert.Zero(t, state.CountdownSeconds)
	assert.True(t, state.LockedAt.IsZero())
	assert.Empty(t, state.Votes)
	assert.Empty(t, state.Reactions)
}

func TestStateLeavingLockedClearsAutoRevealInstant(t *testing.T) {
	roomID := "room-1"
	lockedAt := time.Date(2025, 6, 7, 19, 31, 0, 0, time.UTC)

	state := NewState(roomID).Apply(event(roomID, 1, models.EventPhaseSet, models.EventPayload{
		Phase: models.RoomPhaseLocked, At: lockedAt, CountdownSeconds: 5,
	}))
	require.Equal(t, lockedAt, state.LockedAt)

	state = state.Apply(event(roomID, 2, models.EventPhaseSet, models.EventPayload{
		Phase: models.RoomPhaseRevealing,
	}))

	assert.True(t, state.LockedAt.IsZero())
	assert.Zero(t, state.CountdownSeconds)
	assert.False(t, state.AutoRevealDue(lockedAt.Add(time.Hour)))
}

func TestStateDerivedPhase(t *testing.T) {
	state := NewState("room-1")
	state.Phase = models.RoomPhaseLocked
	assert.Equal(t, models.RoomPhaseLocked, state.DerivedPhase())

	// A recorded winner dominates a stale phase field
	state.WinnerOptionID = "opt-a"
	assert.Equal(t, models.RoomPhaseResults, state.DerivedPhase())
}

func TestStateResultFinalForcesResultsPhase(t *testing.T) {
	state := NewState("room-1").
		Apply(event("room-1", 1, models.EventPhaseSet, models.EventPayload{Phase: models.RoomPhaseRevealing})).
		Apply(event("room-1", 2, models.EventResultFinal, models.EventPayload{
			WinnerOptionID: "opt-a", Modifier: models.ModifierHotStreakNerf, Seed: "abc123",
		}))

	assert.Equal(t, models.RoomPhaseResults, state.Phase)
}

func TestStateVoteCounts(t *testing.T) {
	roomID := "room-1"
	state := NewState(roomID).ApplyAll([]*models.Event{
		event(roomID, 1, models.EventVotePlaced, models.EventPayload{ParticipantID: "p1", OptionID: "opt-a"}),
		event(roomID, 2, models.EventVotePlaced, models.EventPayload{ParticipantID: "p2", OptionID: "opt-a"}),
		event(roomID, 3, models.EventVotePlaced, models.EventPayload{ParticipantID: "p3", OptionID: "opt-b"}),
		// p1 changes their vote
		event(roomID, 4, models.EventVotePlaced, models.EventPayload{ParticipantID: "p1", OptionID: "opt-b"}),
	})

	assert.Equal(t, map[string]int{"opt-a": 1, "opt-b": 2}, state.VoteCounts())
}

func TestStateAutoRevealDue(t *testing.T) {
	lockedAt := time.Date(2025, 6, 7, 19, 31, 0, 0, time.UTC)

	state := NewState("room-1").Apply(event("room-1", 1, models.EventPhaseSet, models.EventPayload{
		Phase: models.RoomPhaseLocked, At: lockedAt, CountdownSeconds: 5,
	}))

	assert.False(t, state.AutoRevealDue(lockedAt.Add(4*time.Second)))
	assert.True(t, state.AutoRevealDue(lockedAt.Add(5*time.Second)))
	assert.True(t, state.AutoRevealDue(lockedAt.Add(time.Minute)))

	// Zero countdown disables auto-reveal
	disabled := NewState("room-1").Apply(event("room-1", 1, models.EventPhaseSet, models.EventPayload{
		Phase: models.RoomPhaseLocked, At: lockedAt,
	}))
	assert.False(t, disabled.AutoRevealDue(lockedAt.Add(time.Hour)))

	// A recorded winner means there is nothing left to reveal
	done := state.Apply(event("room-1", 2, models.EventResultFinal, models.EventPayload{
		WinnerOptionID: "opt-a", Seed: "abc123",
	}))
	assert.False(t, done.AutoRevealDue(lockedAt.Add(time.Minute)))
}

func TestStateWithSnapshot(t *testing.T) {
	now := time.Date(2025, 6, 7, 19, 30, 0, 0, time.UTC)

	// Reactions and the event cursor survive a snapshot overwrite
	state := NewState("room-1").ApplyAll([]*models.Event{
		event("room-1", 1, models.EventReactionSent, models.EventPayload{Emoji: "🔥"}),
		event("room-1", 2, models.EventVotePlaced, models.EventPayload{ParticipantID: "stale", OptionID: "opt-a"}),
	})

	snapshot := &room.GetSnapshotOutput{
		Room: &models.Room{
			ID:                "room-1",
			Name:              "Friday Dinner",
			Phase:             models.RoomPhaseLocked,
			HostParticipantID: "host-1",
			SeedCommitment:    "deadbeef",
			CountdownSeconds:  5,
			Options: []*models.Option{
				{ID: "opt-a", RoomID: "room-1", Label: "Tacos"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		Participants: []*models.Participant{
			{ID: "host-1", RoomID: "room-1", Nickname: "Alice", Role: models.RoleHost},
		},
		Votes: map[string]string{"host-1": "opt-a"},
	}

	state = state.WithSnapshot(snapshot)

	assert.Equal(t, "Friday Dinner", state.Name)
	assert.Equal(t, models.RoomPhaseLocked, state.Phase)
	assert.Equal(t, "deadbeef", state.SeedCommitment)
	assert.Equal(t, map[string]string{"host-1": "opt-a"}, state.Votes)
	assert.Equal(t, Member{Nickname: "Alice", Role: models.RoleHost}, state.Members["host-1"])
	assert.Len(t, state.Reactions, 1)
	assert.Equal(t, int64(2), state.LastSeq)

	// An event already covered by the cursor stays ignored after resync
	state = state.Apply(event("room-1", 2, models.EventVotePlaced, models.EventPayload{
		ParticipantID: "stale", OptionID: "opt-b",
	}))
	assert.NotContains(t, state.Votes, "stale")
}
