package events

import (
	"encoding/json"
	"time"
)

const (
	TypeRunFinished = "run_finished"
	TypeNewPostings = "new_postings"
)

type Event struct {
	Type string          `json:"type"`
	At   time.Time       `json:"at"`
	Data json.RawMessage `json:"data,omitempty"`
}

func Make(typ string, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type: typ,
		At:   time.Now().UTC(),
		Data: raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}

// RunFinished summarizes one pipeline pass for SSE clients.
func RunFinished(matching, fresh int, err error) string {
	data := map[string]any{
		"matching": matching,
		"new":      fresh,
	}
	if err != nil {
		data["error"] = err.Error()
	}
	return Make(TypeRunFinished, data)
}
