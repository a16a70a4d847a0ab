// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package recaptcha verifies reCAPTCHA v3 tokens against the Google
// siteverify endpoint and thresholds the returned trust score.
// Verification is optional infrastructure: with no secret configured,
// every submission passes.
package recaptcha

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Reason codes returned with a verification result.
const (
	ReasonNotConfigured = "recaptcha_not_configured"
	ReasonMissingToken  = "missing_token"
	ReasonOK            = "ok"
	ReasonLowScore      = "low_score_or_failed"
)

const defaultBaseURL = "https://www.google.com/recaptcha/api"

// Result is the outcome of one verification.
type Result struct {
	OK     bool
	Score  float64
	Reason string
}

// Verifier calls the siteverify endpoint. A zero MinScore is replaced
// with the 0.5 default.
type Verifier struct {
	secret   string
	minScore float64
	baseURL  string
	client   *http.Client
}

// New creates a verifier. secret may be empty, in which case Verify
// always succeeds with ReasonNotConfigured.
func New(secret string, minScore float64) *Verifier {
	if minScore <= 0 {
		minScore = 0.5
	}
	return &Verifier{
		secret:   secret,
		minScore: minScore,
		baseURL:  defaultBaseURL,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// WithBaseURL overrides the verification endpoint base URL. Used by tests.
func (v *Verifier) WithBaseURL(base string) *Verifier {
	v.baseURL = strings.TrimRight(base, "/")
	return v
}

// siteverifyResponse is the wire shape returned by the endpoint.
type siteverifyResponse struct {
	Success    bool     `json:"success"`
	Score      *float64 `json:"score,omitempty"`
	Action     string   `json:"action,omitempty"`
	ErrorCodes []string `json:"error-codes,omitempty"`
}

// Verify checks a client token. remoteIP is forwarded when known. A
// transport or decode failure returns an error — it is never treated as
// a silent pass — and is not retried.
func (v *Verifier) Verify(ctx context.Context, token, remoteIP string) (Result, error) {
	if v.secret == "" {
		return Result{OK: true, Reason: ReasonNotConfigured}, nil
	}
	if token == "" {
		return Result{Reason: ReasonMissingToken}, nil
	}

	form := url.Values{
		"secret":   {v.secret},
		"response": {token},
	}
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	endpoint := v.baseURL + "/siteverify"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return Result{}, fmt.Errorf("siteverify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("siteverify http: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("siteverify read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("siteverify status %d: %s", resp.StatusCode, string(body))
	}

	var sv siteverifyResponse
	if err := json.Unmarshal(body, &sv); err != nil {
		return Result{}, fmt.Errorf("siteverify unmarshal: %w", err)
	}

	score := 0.0
	if sv.Score != nil {
		score = *sv.Score
	}

	if sv.Success && score >= v.minScore {
		return Result{OK: true, Score: score, Reason: ReasonOK}, nil
	}
	return Result{Score: score, Reason: ReasonLowScore}, nil
}
