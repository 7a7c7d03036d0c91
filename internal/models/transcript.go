package models

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// TranscriptEntry is one command and the narrative it produced.
type TranscriptEntry struct {
	Command string `yaml:"command"`
	Lines   []Line `yaml:"lines"`
}

// Transcript records a play session for later reading. It is never used to
// restore game state.
type Transcript struct {
	SessionID string            `yaml:"session_id"`
	Captain   string            `yaml:"captain"`
	Ship      string            `yaml:"ship"`
	StartedAt time.Time         `yaml:"started_at"`
	Entries   []TranscriptEntry `yaml:"entries"`
}

// Append adds a turn to the transcript.
func (t *Transcript) Append(command string, lines []Line) {
	t.Entries = append(t.Entries, TranscriptEntry{Command: command, Lines: lines})
}

func (t *Transcript) Save(dir string) error {
	if t.SessionID == "" {
		return errors.New("transcript has no session id")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create transcript dir")
	}

	data, err := yaml.Marshal(t)
	if err != nil {
		return errors.Wrap(err, "failed to marshal transcript")
	}

	// Write then rename so a crash never leaves a truncated transcript behind.
	path := filepath.Join(dir, t.SessionID+".yaml")
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write transcript")
	}
	return errors.Wrap(os.Rename(tmp, path), "failed to move transcript into place")
}

func LoadTranscript(dir, sessionID string) (*Transcript, error) {
	data, err := os.ReadFile(filepath.Join(dir, sessionID+".yaml"))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read transcript %s", sessionID)
	}
	var t Transcript
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, errors.Wrapf(err, "failed to parse transcript %s", sessionID)
	}
	return &t, nil
}

// ListTranscripts returns the session ids that have a transcript in dir.
func ListTranscripts(dir string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transcripts")
	}

	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".yaml") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".yaml"))
	}
	return ids, nil
}
