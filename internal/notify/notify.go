// Package notify tells the frontend that public content changed so it can
// rebuild its cached pages.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aTrapDeer/portfolio-backend/internal/auth"
	"github.com/aTrapDeer/portfolio-backend/internal/logging"
)

// Change describes one write to public content. ID is zero for list-wide changes.
type Change struct {
	Kind string `json:"kind"`
	ID   int    `json:"id,omitempty"`
}

type Notifier interface {
	Notify(ctx context.Context, c Change) error
}

// Nop is used when no revalidation URL is configured.
type Nop struct{}

func (Nop) Notify(context.Context, Change) error { return nil }

// Revalidator posts each Change to the frontend's revalidation endpoint with a
// signed bearer token.
type Revalidator struct {
	url    string
	signer *auth.Signer
	client *http.Client
}

func NewRevalidator(url string, signer *auth.Signer, client *http.Client) *Revalidator {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Revalidator{url: url, signer: signer, client: client}
}

func (r *Revalidator) Notify(ctx context.Context, c Change) error {
	token, err := r.signer.Sign(c.Kind)
	if err != nil {
		return fmt.Errorf("sign revalidation token: %w", err)
	}
	body, err := json.Marshal(c)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build revalidation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("trigger revalidation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("revalidation failed with status code %d", resp.StatusCode)
	}
	return nil
}

// Async runs a Notifier in the background so writes never wait on the
// frontend. Failures are only logged.
type Async struct {
	next    Notifier
	log     logging.Logger
	timeout time.Duration
	done    func()
}

func NewAsync(next Notifier, log logging.Logger) *Async {
	return &Async{next: next, log: log, timeout: 15 * time.Second}
}

// Notify returns immediately. The request context is not reused because the
// request usually finishes first; the request id is carried over for logs.
func (a *Async) Notify(ctx context.Context, c Change) error {
	bg := logging.WithRequestID(context.Background(), logging.RequestID(ctx))
	go func() {
		if a.done != nil {
			defer a.done()
		}
		ctx, cancel := context.WithTimeout(bg, a.timeout)
		defer cancel()
		if err := a.next.Notify(ctx, c); err != nil {
			a.log.Warn(ctx, "revalidation failed", "kind", c.Kind, "id", c.ID, "error", err)
			return
		}
		a.log.Debug(ctx, "revalidation triggered", "kind", c.Kind, "id", c.ID)
	}()
	return nil
}
