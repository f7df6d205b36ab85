// Package truckscontrol speaks the Trucks Control fleet-telemetry protocol:
// credentialed XML requests over HTTP POST, with responses that may arrive
// ZIP- or gzip-compressed and may carry a structured error envelope.
package truckscontrol

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/frotawatch/frotawatch/pkg/util"
	"github.com/rs/zerolog/log"
)

const requestTimeout = 30 * time.Second

type Client struct {
	endpoint string
	login    string
	password string

	httpClient *http.Client
}

func NewClient(endpoint string, login string, password string) *Client {
	return &Client{
		endpoint: endpoint,
		login:    login,
		password: password,

		httpClient: &http.Client{},
	}
}

// Call sends one request document and returns the parsed response root.
// An upstream error envelope is a soft failure: it is logged and both
// return values are nil, letting callers treat "no data this cycle" as a
// normal condition. Transport and parse failures are hard errors.
func (c *Client) Call(ctx context.Context, source string, body string) (*Element, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(body))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "text/xml; charset=utf-8")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	text, err := DecodePayload(raw)
	if err != nil {
		return nil, err
	}

	if !strings.HasPrefix(strings.TrimSpace(text), "<") {
		return nil, fmt.Errorf("unexpected response body: %s", util.TrimString(strings.TrimSpace(text), 100))
	}

	root, err := ParseDocument(strings.NewReader(text))
	if err != nil {
		return nil, err
	}

	if root.Name == "ErrorRequest" {
		log.Warn().
			Str("source", source).
			Str("code", root.Field("codigo")).
			Str("message", root.Field("erro")).
			Msg("Upstream reported an application error")

		return nil, nil
	}

	return root, nil
}
