// Package notify turns a rendered email into something deliverable:
// either a JSON artifact an external workflow picks up, or a direct
// SMTP send.
package notify

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Payload is the handoff artifact for an external delivery workflow
// (e.g. a CI mail step). Field names are part of that contract.
type Payload struct {
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Timestamp string `json:"timestamp"`
}

func NewPayload(to, subject, body string, now time.Time) Payload {
	return Payload{
		To:        to,
		Subject:   subject,
		Body:      body,
		Timestamp: now.Format(time.RFC3339),
	}
}

// WriteFile drops the payload as indented JSON, creating the directory
// if needed.
func (p Payload) WriteFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write email payload: %w", err)
	}
	return nil
}
