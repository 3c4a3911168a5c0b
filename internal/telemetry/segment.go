package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/vovashkil/netbox-api-scripts/internal/build"
	"github.com/vovashkil/netbox-api-scripts/internal/common"
)

const (
	trackingKey = "OWZlODlmNDEtNDYzMi00ZDgzLTljYz"
	url         = "https://api.segment.io/v1/track"
)

var _ Client = (*SegmentClient)(nil)

// Doer interface for testing purposes
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// SegmentClient client, all methods communicate with segment.
type SegmentClient struct {
	doer      Doer
	sessionID uuid.UUID
	cfg       Config
	attrs     map[string]string
}

// Option for configuring the SegmentClient, primarily exists for testing
type Option func(*SegmentClient)

// WithSessionID overrides the default, randomized, session id.
func WithSessionID(sessionID uuid.UUID) Option {
	return func(c *SegmentClient) {
		c.sessionID = sessionID
	}
}

// WithHTTPClient overrides the default http client.
func WithHTTPClient(doer Doer) Option {
	return func(c *SegmentClient) {
		c.doer = doer
	}
}

// NewSegmentClient returns a SegmentClient reporting under the analytics ID in cfg.
func NewSegmentClient(cfg Config, opts ...Option) *SegmentClient {
	cli := &SegmentClient{
		doer:      &http.Client{Timeout: 10 * time.Second},
		sessionID: uuid.New(),
		cfg:       cfg,
		attrs:     map[string]string{},
	}

	for _, opt := range opts {
		opt(cli)
	}

	return cli
}

func (s *SegmentClient) Start(ctx context.Context, et EventType) error {
	return s.send(ctx, Start, et, nil)
}

func (s *SegmentClient) Success(ctx context.Context, et EventType) error {
	return s.send(ctx, Success, et, nil)
}

func (s *SegmentClient) Failure(ctx context.Context, et EventType, err error) error {
	return s.send(ctx, Failed, et, err)
}

func (s *SegmentClient) Attr(key, val string) {
	s.attrs[key] = val
}

func (s *SegmentClient) User() string {
	return s.cfg.AnalyticsID.String()
}

func (s *SegmentClient) Wrap(ctx context.Context, et EventType, f func() error) error {
	attemptSuccessFailure := true

	if err := s.Start(ctx, et); err != nil {
		pterm.Debug.Printfln("unable to send telemetry start data: %s", err)
		attemptSuccessFailure = false
	}

	if err := f(); err != nil {
		if attemptSuccessFailure {
			if errTel := s.Failure(ctx, et, err); errTel != nil {
				pterm.Debug.Printfln("unable to send telemetry failure data: %s", errTel)
			}
		}
		return err
	}

	if attemptSuccessFailure {
		if err := s.Success(ctx, et); err != nil {
			pterm.Debug.Printfln("unable to send telemetry success data: %s", err)
		}
	}

	return nil
}

func (s *SegmentClient) send(ctx context.Context, es EventState, et EventType, ee error) error {
	properties := map[string]string{
		"deployment_method": common.AppName,
		"session_id":        s.sessionID.String(),
		"state":             string(es),
		"os":                runtime.GOOS,
		"build":             build.Version,
		"script_version":    build.Version,
	}
	for k, v := range s.attrs {
		properties[k] = v
	}
	if ee != nil {
		properties["error"] = ee.Error()
	}

	b := body{
		ID:         s.User(),
		Event:      string(et),
		Properties: properties,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		WriteKey:   trackingKey,
	}

	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("unable to create request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(data))
	if err != nil {
		return fmt.Errorf("unable to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.doer.Do(req)
	if err != nil {
		return fmt.Errorf("unable to post: %w", err)
	}
	defer resp.Body.Close()

	return nil
}

type body struct {
	ID         string            `json:"anonymousId"`
	Event      string            `json:"event"`
	Properties map[string]string `json:"properties"`
	Timestamp  string            `json:"timestamp"`
	WriteKey   string            `json:"writeKey"`
}
