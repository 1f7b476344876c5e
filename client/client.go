// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

package client

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"golang.org/x/time/rate"

	"github.com/Present-Inc/PresentAPIClient-sub000/config"
	"github.com/Present-Inc/PresentAPIClient-sub000/internal/cache"
	"github.com/Present-Inc/PresentAPIClient-sub000/internal/logging"
	"github.com/Present-Inc/PresentAPIClient-sub000/session"
)

// responseWorkers is the size of the response-processing pool. Continuations
// run on these goroutines, never on the goroutine that performed the I/O.
const responseWorkers = 2

// Client talks to the Present API. Construct one with New and reuse it; the
// Client is safe for concurrent use.
type Client struct {
	cfg       *config.Config
	baseURL   string
	userAgent string

	transport *breakerTransport
	session   *session.Context
	relations *cache.Relations
	limiter   *rate.Limiter

	mu       sync.Mutex
	inflight map[string]*PendingRequest
	respCh   chan func()
	closed   bool
	wg       sync.WaitGroup

	// Typed per-family services.
	Users        *UsersService
	Videos       *VideosService
	Comments     *CommentsService
	Likes        *LikesService
	Views        *ViewsService
	Friendships  *FriendshipsService
	Activities   *ActivitiesService
	UserContexts *UserContextsService
}

// Option customizes a Client at construction time.
type Option func(*options)

type options struct {
	httpClient *http.Client
	store      session.Store
}

// WithHTTPClient substitutes the underlying HTTP client. The configured API
// timeout is not applied to a substituted client.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// WithSessionStore substitutes the session persistence backend, bypassing
// the configured store factory.
func WithSessionStore(store session.Store) Option {
	return func(o *options) { o.store = store }
}

// New creates a Client from cfg. Pass config.Default() for the stock
// production setup.
func New(cfg *config.Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	store := o.store
	if store == nil {
		var err error
		store, err = session.NewStore(cfg.Session.Store, cfg.SessionDir())
		if err != nil {
			return nil, fmt.Errorf("create session store: %w", err)
		}
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.API.Timeout}
	}

	c := &Client{
		cfg:       cfg,
		baseURL:   strings.TrimRight(cfg.API.BaseURL, "/"),
		userAgent: cfg.API.UserAgent,
		transport: newBreakerTransport(httpClient, cfg.Breaker),
		session:   session.NewContext(store, cfg.API.Version),
		relations: cache.NewRelations(),
		inflight:  make(map[string]*PendingRequest),
		respCh:    make(chan func(), 64),
	}

	if cfg.RateLimit.Enabled {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
	}

	c.Users = &UsersService{c: c}
	c.Videos = &VideosService{c: c}
	c.Comments = &CommentsService{c: c}
	c.Likes = &LikesService{c: c}
	c.Views = &ViewsService{c: c}
	c.Friendships = &FriendshipsService{c: c}
	c.Activities = &ActivitiesService{c: c}
	c.UserContexts = &UserContextsService{c: c}

	for i := 0; i < responseWorkers; i++ {
		c.wg.Add(1)
		go c.responseLoop()
	}

	logging.Debug().Str("base_url", c.baseURL).Msg("client created")
	return c, nil
}

// Session returns the client's session context.
func (c *Client) Session() *session.Context {
	return c.session
}

// Relations returns the viewer-relative relation cache.
func (c *Client) Relations() *cache.Relations {
	return c.relations
}

// CancelAll cancels every in-flight request. Their continuations are
// suppressed.
func (c *Client) CancelAll() {
	c.mu.Lock()
	pending := make([]*PendingRequest, 0, len(c.inflight))
	for _, p := range c.inflight {
		pending = append(pending, p)
	}
	c.mu.Unlock()

	for _, p := range pending {
		p.Cancel()
	}
	if len(pending) > 0 {
		logging.Debug().Int("count", len(pending)).Msg("cancelled in-flight requests")
	}
}

// Close cancels all in-flight requests, stops the response workers and
// closes the session store. The Client must not be used afterwards.
func (c *Client) Close() error {
	c.CancelAll()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	close(c.respCh)
	c.mu.Unlock()

	c.wg.Wait()
	return c.session.Store().Close()
}

func (c *Client) responseLoop() {
	defer c.wg.Done()
	for fn := range c.respCh {
		fn()
	}
}

// submitResponse hands a completion function to the response workers. After
// Close the function is dropped; every remaining request was cancelled and
// its delivery suppressed anyway.
func (c *Client) submitResponse(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.respCh <- fn
}

func (c *Client) register(p *PendingRequest) {
	c.mu.Lock()
	c.inflight[p.id] = p
	c.mu.Unlock()
}

func (c *Client) unregister(id string) {
	c.mu.Lock()
	delete(c.inflight, id)
	c.mu.Unlock()
}
