// Package api holds the typed request/response contracts to the
// companion backend and a thin HTTP client over them. The backend
// implementation lives elsewhere; this client only knows the shapes.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/arlo/stride/internal/database/repository"
)

// ChatTurn is one message in a coach conversation.
type ChatTurn struct {
	Role    string `json:"role"` // "user" or "coach"
	Content string `json:"content"`
}

// ChatRequest asks the coach for a reply to the conversation so far.
type ChatRequest struct {
	Messages []ChatTurn `json:"messages"`
}

// ChatResponse carries the coach's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// SyncProfileRequest mirrors the profile fields the backend keeps.
type SyncProfileRequest struct {
	UserID             string `json:"user_id"`
	FullName           string `json:"full_name"`
	Goal               string `json:"goal"`
	FitnessLevel       string `json:"fitness_level"`
	WeeklyTarget       int    `json:"weekly_target"`
	OnboardingComplete bool   `json:"onboarding_complete"`
}

// Client talks to the companion backend.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

func New(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// CoachReply sends the conversation and returns the coach's reply.
func (c *Client) CoachReply(ctx context.Context, turns []ChatTurn) (string, error) {
	var resp ChatResponse
	if err := c.post(ctx, "/v1/coach/chat", ChatRequest{Messages: turns}, &resp); err != nil {
		return "", err
	}
	return resp.Reply, nil
}

// SyncProfile pushes the local profile to the backend.
func (c *Client) SyncProfile(ctx context.Context, p repository.Profile) error {
	req := SyncProfileRequest{
		UserID:             p.UserID,
		FullName:           p.FullName,
		Goal:               p.Goal,
		FitnessLevel:       p.FitnessLevel,
		WeeklyTarget:       p.WeeklyTarget,
		OnboardingComplete: p.OnboardingComplete,
	}
	return c.post(ctx, "/v1/profile", req, nil)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s: unexpected status %d", path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
