package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arlo/stride/internal/api"
	"github.com/arlo/stride/internal/database"
	"github.com/arlo/stride/internal/database/repository"
)

type fakeCoach struct {
	reply string
	err   error
	turns []api.ChatTurn
}

func (f *fakeCoach) CoachReply(_ context.Context, turns []api.ChatTurn) (string, error) {
	f.turns = turns
	return f.reply, f.err
}

func newCoachService(t *testing.T, client CoachClient) (*CoachService, string) {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.RunMigrations(db))
	require.NoError(t, database.SeedDefaults(ctx, db))

	demo, err := repository.NewUserRepo(db).ByEmail(ctx, database.DemoEmail)
	require.NoError(t, err)

	return &CoachService{Chat: repository.NewChatRepo(db), Client: client}, demo.ID
}

func TestSendPersistsBothTurns(t *testing.T) {
	t.Parallel()
	coach := &fakeCoach{reply: "Great question. Start with form, not weight."}
	svc, userID := newCoachService(t, coach)
	ctx := context.Background()

	msgs, err := svc.Send(ctx, userID, "how heavy should I squat?")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Equal(t, "user", msgs[0].Role)
	require.Equal(t, "coach", msgs[1].Role)
	require.Equal(t, coach.reply, msgs[1].Body)

	// the request includes the just-sent user turn
	require.NotEmpty(t, coach.turns)
	last := coach.turns[len(coach.turns)-1]
	require.Equal(t, "user", last.Role)

	history, err := svc.History(ctx, userID)
	require.NoError(t, err)
	require.Len(t, history, 2)
}

func TestSendDegradesOffline(t *testing.T) {
	t.Parallel()
	coach := &fakeCoach{err: errors.New("connection refused")}
	svc, userID := newCoachService(t, coach)

	msgs, err := svc.Send(context.Background(), userID, "hello?")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Equal(t, offlineReply, msgs[1].Body)
}

func TestHistoryOrderedOldestFirst(t *testing.T) {
	t.Parallel()
	coach := &fakeCoach{reply: "ok"}
	svc, userID := newCoachService(t, coach)
	ctx := context.Background()

	_, err := svc.Send(ctx, userID, "first")
	require.NoError(t, err)
	_, err = svc.Send(ctx, userID, "second")
	require.NoError(t, err)

	history, err := svc.History(ctx, userID)
	require.NoError(t, err)
	require.Len(t, history, 4)
	require.Equal(t, "first", history[0].Body)
	require.Equal(t, "second", history[2].Body)
}
