package server

import "github.com/tatianab/tradewinds/internal/models"

// Frame types.
const (
	FrameInit    = "init"
	FrameCommand = "command"
	FrameLines   = "lines"
	FrameError   = "error"
)

// ClientFrame is a message from the browser or any other websocket client.
type ClientFrame struct {
	Type    string `json:"type"`
	Captain string `json:"captain,omitempty"`
	Ship    string `json:"ship,omitempty"`
	Text    string `json:"text,omitempty"`
}

// Status is the ledger summary sent with every batch of lines.
type Status struct {
	Player   string `json:"player"`
	Ship     string `json:"ship"`
	Credits  int    `json:"credits"`
	Days     int    `json:"days"`
	Cargo    int    `json:"cargo"`
	MaxCargo int    `json:"max_cargo"`
	Location string `json:"location"`
}

// ServerFrame is a reply to a ClientFrame.
type ServerFrame struct {
	Type    string        `json:"type"`
	Session string        `json:"session,omitempty"`
	Lines   []models.Line `json:"lines,omitempty"`
	Status  *Status       `json:"status,omitempty"`
	Error   string        `json:"error,omitempty"`
}
