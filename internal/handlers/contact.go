// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"folio/internal/contact"
	"folio/internal/middleware"
	"folio/internal/recaptcha"
)

// dispatchTimeout bounds the detached notification send.
const dispatchTimeout = 30 * time.Second

// Verifier thresholds a bot-score token.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) (recaptcha.Result, error)
}

// Dispatcher sends the two contact notifications.
type Dispatcher interface {
	Dispatch(ctx context.Context, sub contact.Submission) error
}

// Contact handles contact form submissions: schema validation, honeypot
// short-circuit, bot-score verification, then notification dispatch.
type Contact struct {
	verifier   Verifier
	dispatcher Dispatcher // nil when no mail transport is configured

	// dispatchDone is closed-loop feedback for tests; production leaves it nil.
	dispatchDone chan struct{}
}

// NewContact creates the contact API handler. dispatcher may be nil, in
// which case accepted submissions are logged but no mail is sent.
func NewContact(verifier Verifier, dispatcher Dispatcher) *Contact {
	return &Contact{verifier: verifier, dispatcher: dispatcher}
}

// contactResponse is the JSON response body of the submission endpoint.
type contactResponse struct {
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// Submit processes POST /api/contact.
func (c *Contact) Submit(w http.ResponseWriter, r *http.Request) {
	var sub contact.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeJSON(w, http.StatusBadRequest, contactResponse{OK: false, Error: "invalid request body"})
		return
	}

	if err := sub.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, contactResponse{OK: false, Error: contact.FirstError(err)})
		return
	}

	// Bots fill the hidden website field. Answer success and do nothing:
	// no verification call, no mail.
	if sub.IsSpam() {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
		return
	}

	result, err := c.verifier.Verify(r.Context(), sub.RecaptchaToken, middleware.ClientIP(r))
	if err != nil {
		// An unreachable verification endpoint is never a pass. The
		// caller gets a generic failure, details stay in the log.
		slog.Error("recaptcha verify failed", "error", err, "request_id", middleware.GetRequestID(r.Context()))
		writeJSON(w, http.StatusBadRequest, contactResponse{OK: false, Error: "Bad request"})
		return
	}
	if !result.OK {
		writeJSON(w, http.StatusBadRequest, contactResponse{OK: false, Error: "recaptcha_failed", Reason: result.Reason})
		return
	}

	c.dispatch(sub, middleware.GetRequestID(r.Context()))

	writeJSON(w, http.StatusOK, contactResponse{OK: true})
}

// dispatch sends the notifications on a detached goroutine. Submission
// acknowledgment is decoupled from delivery: failures after the response
// is sent are only visible in the log.
func (c *Contact) dispatch(sub contact.Submission, requestID string) {
	if c.dispatcher == nil {
		slog.Warn("mail transport not configured, dropping notifications",
			"name", sub.Name,
			"request_id", requestID,
		)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()

		if err := c.dispatcher.Dispatch(ctx, sub); err != nil {
			slog.Error("notification dispatch failed", "error", err, "request_id", requestID)
		}
		if c.dispatchDone != nil {
			close(c.dispatchDone)
		}
	}()
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write json response failed", "error", err)
	}
}
