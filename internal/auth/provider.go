package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/arlo/stride/internal/database"
	"github.com/arlo/stride/internal/database/repository"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// State is the observable auth/profile snapshot. Profile is nil while
// unauthenticated or still loading.
type State struct {
	Authenticated bool
	Loading       bool
	Profile       *repository.Profile
	User          *repository.User
}

// ProfileSync pushes a completed profile to the companion backend.
// Failures are logged, never surfaced; the local store is the source
// of truth for this client.
type ProfileSync interface {
	SyncProfile(ctx context.Context, p repository.Profile) error
}

// Provider owns the auth/profile state cell. It is the single writer;
// everyone else observes snapshots via Subscribe. Operational errors
// (bad credentials, expired session, IO) resolve to a defined
// unauthenticated state; subscribers only ever see the flags.
type Provider struct {
	users    *repository.UserRepo
	profiles *repository.ProfileRepo
	sessions *repository.SessionRepo
	secret   []byte
	syncer   ProfileSync
	log      *slog.Logger

	mu      sync.Mutex
	state   State
	subs    map[int]chan State
	nextSub int
}

func NewProvider(users *repository.UserRepo, profiles *repository.ProfileRepo, sessions *repository.SessionRepo, secret []byte, syncer ProfileSync, log *slog.Logger) *Provider {
	if log == nil {
		log = slog.Default()
	}
	return &Provider{
		users:    users,
		profiles: profiles,
		sessions: sessions,
		secret:   secret,
		syncer:   syncer,
		log:      log,
		state:    State{Loading: true},
		subs:     make(map[int]chan State),
	}
}

// Snapshot returns the current state.
func (p *Provider) Snapshot() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Subscribe registers an observer. The channel is buffered; a slow
// observer misses intermediate snapshots, never blocks the writer.
func (p *Provider) Subscribe() (int, <-chan State) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.nextSub
	p.nextSub++
	ch := make(chan State, 8)
	p.subs[id] = ch
	return id, ch
}

func (p *Provider) Unsubscribe(id int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if ch, ok := p.subs[id]; ok {
		delete(p.subs, id)
		close(ch)
	}
}

func (p *Provider) setState(s State) {
	p.mu.Lock()
	p.state = s
	for _, ch := range p.subs {
		select {
		case ch <- s:
		default:
		}
	}
	p.mu.Unlock()
}

// Start restores the persisted session in the background. The state
// stays Loading until the check resolves one way or the other.
func (p *Provider) Start(ctx context.Context) {
	go func() {
		if err := p.restore(ctx); err != nil {
			p.log.Warn("session restore failed", "err", err)
			p.setState(State{})
		}
	}()
}

func (p *Provider) restore(ctx context.Context) error {
	sess, err := p.sessions.Latest(ctx)
	if err != nil {
		return err
	}
	if sess == nil {
		p.setState(State{})
		return nil
	}
	if time.Now().After(sess.ExpiresAt) {
		p.setState(State{})
		return nil
	}
	userID, err := ParseToken(p.secret, sess.Token)
	if err != nil {
		p.setState(State{})
		return nil
	}
	user, err := p.users.ByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		p.setState(State{})
		return nil
	}
	profile, err := p.profiles.ByUserID(ctx, userID)
	if err != nil {
		return err
	}
	p.log.Info("session restored", "user", user.Email)
	p.setState(State{Authenticated: true, Profile: profile, User: user})
	return nil
}

// Login verifies credentials against the local store, persists a fresh
// session token and publishes the authenticated state.
func (p *Provider) Login(ctx context.Context, email, password string) error {
	user, err := p.users.ByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}

	now := database.Now()
	token, err := MintToken(p.secret, user.ID, user.Email, now)
	if err != nil {
		return err
	}
	sess := repository.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: now.Add(sessionTTL),
	}
	if err := p.sessions.Save(ctx, sess); err != nil {
		return err
	}

	profile, err := p.profiles.ByUserID(ctx, user.ID)
	if err != nil {
		return err
	}
	p.log.Info("logged in", "user", user.Email)
	p.setState(State{Authenticated: true, Profile: profile, User: user})
	return nil
}

// DemoLogin signs in with the seeded demo account. It is the same
// credential path as Login, just with the well-known credentials.
func (p *Provider) DemoLogin(ctx context.Context) error {
	return p.Login(ctx, database.DemoEmail, database.DemoPassword)
}

// Logout clears the persisted session and publishes the
// unauthenticated state.
func (p *Provider) Logout(ctx context.Context) error {
	p.mu.Lock()
	user := p.state.User
	p.mu.Unlock()
	if user != nil {
		if err := p.sessions.DeleteForUser(ctx, user.ID); err != nil {
			return err
		}
	}
	p.setState(State{})
	return nil
}

// CompleteOnboarding stores the profile with the onboarding flag set
// and publishes the updated state. The backend sync is best-effort.
func (p *Provider) CompleteOnboarding(ctx context.Context, profile repository.Profile) error {
	p.mu.Lock()
	user := p.state.User
	p.mu.Unlock()
	if user == nil {
		return errors.New("not authenticated")
	}
	profile.UserID = user.ID
	profile.OnboardingComplete = true
	if err := p.profiles.Upsert(ctx, profile); err != nil {
		return err
	}
	if p.syncer != nil {
		if err := p.syncer.SyncProfile(ctx, profile); err != nil {
			p.log.Warn("profile sync failed", "err", err)
		}
	}
	p.setState(State{Authenticated: true, Profile: &profile, User: user})
	return nil
}
