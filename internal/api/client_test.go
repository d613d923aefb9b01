package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arlo/stride/internal/database/repository"
)

func TestCoachReply(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/coach/chat", r.URL.Path)
		var req ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 1)
		require.Equal(t, "user", req.Messages[0].Role)
		_ = json.NewEncoder(w).Encode(ChatResponse{Reply: "Nice work today!"})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil)
	reply, err := c.CoachReply(context.Background(), []ChatTurn{{Role: "user", Content: "done my workout"}})
	require.NoError(t, err)
	require.Equal(t, "Nice work today!", reply)
}

func TestCoachReplyErrorStatus(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil)
	_, err := c.CoachReply(context.Background(), nil)
	require.Error(t, err)
}

func TestSyncProfile(t *testing.T) {
	t.Parallel()
	var got SyncProfileRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/profile", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil)
	err := c.SyncProfile(context.Background(), repository.Profile{
		UserID:             "u1",
		Goal:               "run a 10k",
		OnboardingComplete: true,
	})
	require.NoError(t, err)
	require.Equal(t, "u1", got.UserID)
	require.True(t, got.OnboardingComplete)
}

func TestUnreachableBackend(t *testing.T) {
	t.Parallel()
	c := New("http://127.0.0.1:1", 200*time.Millisecond, nil)
	_, err := c.CoachReply(context.Background(), nil)
	require.Error(t, err)
}
