package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"quoridor/communication"
	"quoridor/game"
)

type Option func(c *Client)

// Client talks to a match server over HTTP, authenticating every request
// with the player's IDUL and secret.
type Client struct {
	baseURL string
	idul    string
	secret  string
	http    *http.Client
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

func NewClient(baseURL, idul, secret string, options ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		idul:    idul,
		secret:  secret,
		http:    http.DefaultClient,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *Client) Create(ctx context.Context) (string, game.Snapshot, error) {
	var resp communication.MatchResponse
	if err := c.do(ctx, http.MethodPost, "/parties", nil, &resp); err != nil {
		return "", game.Snapshot{}, err
	}
	return resp.ID, resp.State, nil
}

func (c *Client) Submit(ctx context.Context, id string, move game.GameMove) (communication.Outcome, error) {
	var resp communication.MoveResponse
	if err := c.do(ctx, http.MethodPut, "/parties/"+id, move, &resp); err != nil {
		return communication.Outcome{}, err
	}
	return resp.Outcome(), nil
}

func (c *Client) Fetch(ctx context.Context, id string) (game.Snapshot, error) {
	var resp communication.MatchResponse
	if err := c.do(ctx, http.MethodGet, "/parties/"+id, nil, &resp); err != nil {
		return game.Snapshot{}, err
	}
	return resp.State, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.idul, c.secret)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Trace().Msgf("%s %s", method, req.URL)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", communication.ErrServer, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	}
	return statusError(resp)
}

func statusError(resp *http.Response) error {
	var msg communication.ErrorResponse
	_ = json.NewDecoder(resp.Body).Decode(&msg)

	var kind error
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		kind = communication.ErrUnauthorized
	case http.StatusNotFound:
		kind = communication.ErrNotFound
	case http.StatusNotAcceptable:
		kind = communication.ErrRejected
	default:
		kind = communication.ErrServer
	}
	if msg.Message == "" {
		return fmt.Errorf("%w: status %d", kind, resp.StatusCode)
	}
	return fmt.Errorf("%w: %s", kind, msg.Message)
}
