// Package autopilot lets a Gemini model play the game through the same text
// commands a human would type.
package autopilot

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"github.com/pkg/errors"
	"github.com/tatianab/tradewinds/internal/engine"
	"github.com/tatianab/tradewinds/internal/models"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"gopkg.in/yaml.v3"
)

//go:embed prompts/next_command.txt
var nextCommandPrompt string

var nextCommandTmpl = template.Must(template.New("next_command").Parse(nextCommandPrompt))

// Model is the part of *genai.GenerativeModel the pilot uses.
type Model interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Observation is what the pilot sees before choosing a command.
type Observation struct {
	Captain     string
	Ship        string
	Location    string
	Credits     int
	Days        int
	Cargo       int
	MaxCargo    int
	Inventory   []string
	Commodities string
	Recent      []string
	LastOutput  string
}

// Decision is the model's reply.
type Decision struct {
	Command string `yaml:"command"`
	Reason  string `yaml:"reason"`
}

type Pilot struct {
	model  Model
	logger *zap.Logger
}

func NewPilot(model Model, logger *zap.Logger) *Pilot {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pilot{model: model, logger: logger}
}

// Dial connects to Gemini. The returned close function releases the client.
func Dial(ctx context.Context, apiKey, modelName string, logger *zap.Logger) (*Pilot, func() error, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create gemini client")
	}
	return NewPilot(client.GenerativeModel(modelName), logger), client.Close, nil
}

// NextCommand asks the model for the next command to type.
func (p *Pilot) NextCommand(ctx context.Context, obs Observation) (Decision, error) {
	var buf bytes.Buffer
	if err := nextCommandTmpl.Execute(&buf, obs); err != nil {
		return Decision{}, errors.Wrap(err, "failed to render prompt")
	}

	resp, err := p.model.GenerateContent(ctx, genai.Text(buf.String()))
	if err != nil {
		return Decision{}, errors.Wrap(err, "gemini request failed")
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return Decision{}, errors.New("no content returned from Gemini")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return Decision{}, errors.New("unexpected response type from Gemini")
	}

	return parseDecision(string(text))
}

func parseDecision(reply string) (Decision, error) {
	clean := stripFences(reply)

	var d Decision
	if err := yaml.Unmarshal([]byte(clean), &d); err != nil {
		return Decision{}, errors.Wrapf(err, "failed to parse YAML, output was: %s", clean)
	}
	d.Command = strings.TrimSpace(d.Command)
	if d.Command == "" {
		return Decision{}, errors.Errorf("reply has no command: %s", clean)
	}
	return d, nil
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	for _, fence := range []string{"```yaml", "```yml", "```"} {
		s = strings.TrimPrefix(s, fence)
	}
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// Observe summarizes the engine for the prompt.
func Observe(eng *engine.Engine, last []models.Line, recent []string) Observation {
	u := eng.Universe()
	snap := eng.Snapshot()

	var hold []string
	for _, c := range u.Commodities {
		if qty := snap.Inventory[c.ID]; qty > 0 {
			hold = append(hold, fmt.Sprintf("%d x %s", qty, c.Name))
		}
	}

	var out strings.Builder
	for _, l := range last {
		out.WriteString(l.Text)
		out.WriteString("\n")
	}

	return Observation{
		Captain:     eng.PlayerName(),
		Ship:        eng.ShipName(),
		Location:    eng.LocationName(),
		Credits:     eng.Credits(),
		Days:        eng.DaysElapsed(),
		Cargo:       eng.CargoCount(),
		MaxCargo:    eng.MaxCargo(),
		Inventory:   hold,
		Commodities: strings.Join(u.CommodityNames(), ", "),
		Recent:      recent,
		LastOutput:  out.String(),
	}
}
