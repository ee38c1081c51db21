package ai

//go:generate mockgen -destination=mock/mock_client.go -package=aimock github.com/KirkDiggler/monster-codex/internal/clients/ai Client

import (
	"context"
	"encoding/json"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/KirkDiggler/monster-codex/internal/entities"
	"github.com/KirkDiggler/monster-codex/internal/errors"
	"github.com/KirkDiggler/monster-codex/internal/metrics"
)

// User-facing messages
const (
	MsgNotFound    = "該当するモンスターが見つかりませんでした。"
	MsgFetchFailed = "データの取得中にエラーが発生しました。"
)

// MaxQueryLength bounds the text forwarded to the model, in runes
const MaxQueryLength = 200

// Client resolves a name or question to a monster record
type Client interface {
	// LookupMonster asks the model once. No retries.
	// Returns errors.NotFound when the model has no such monster
	// Returns errors.Unavailable when the model fails or answers garbage
	LookupMonster(ctx context.Context, input *LookupMonsterInput) (*LookupMonsterOutput, error)
}

// LookupMonsterInput is the user's query
type LookupMonsterInput struct {
	Query string
}

// LookupMonsterOutput carries the generated record. It has no MonsterID;
// callers assign one before storing it.
type LookupMonsterOutput struct {
	Monster *entities.Monster
}

// Config configures the lookup client
type Config struct {
	Generator Generator
	Logger    *zap.Logger
}

// Validate validates the Config and sets defaults
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Generator == nil {
		vb.RequiredField("Generator")
	}
	if err := vb.Build(); err != nil {
		return err
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return nil
}

type client struct {
	generator Generator
	validate  *validator.Validate
	logger    *zap.Logger
}

// New creates a lookup client over a Generator
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &client{
		generator: cfg.Generator,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    cfg.Logger,
	}, nil
}

func (c *client) LookupMonster(ctx context.Context, input *LookupMonsterInput) (*LookupMonsterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	query := strings.TrimSpace(input.Query)
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("query", query, vb)
	errors.ValidateMaxLength("query", query, MaxQueryLength, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	provider := c.generator.Provider()
	logger := c.logger.With(zap.String("provider", provider), zap.String("query", query))

	text, err := c.generator.GenerateJSON(ctx, Prompt(query))
	if err != nil {
		if errors.IsCanceled(err) || errors.IsDeadlineExceeded(err) {
			return nil, err
		}
		metrics.RecordAILookup(provider, metrics.OutcomeError)
		logger.Error("ai lookup failed", zap.Error(err))
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, MsgFetchFailed)
	}

	monster, err := c.parse(text)
	if err != nil {
		outcome := metrics.OutcomeError
		if errors.IsNotFound(err) {
			outcome = metrics.OutcomeNotFound
			logger.Info("ai lookup found nothing")
		} else {
			logger.Warn("ai lookup returned unusable data", zap.Error(err))
		}
		metrics.RecordAILookup(provider, outcome)
		return nil, err
	}

	metrics.RecordAILookup(provider, metrics.OutcomeFound)
	logger.Info("ai lookup found monster", zap.String("name", monster.Name))
	return &LookupMonsterOutput{Monster: monster}, nil
}

// generatedMonster mirrors the schema. Numbers are decoded as floats because
// models do not reliably keep integer fields integral.
type generatedMonster struct {
	Name        string              `json:"name" validate:"required,max=100"`
	Title       string              `json:"title" validate:"max=200"`
	Species     string              `json:"species" validate:"max=200"`
	Description string              `json:"description" validate:"max=4000"`
	Elements    []string            `json:"elements" validate:"dive,required"`
	Ailments    []string            `json:"ailments" validate:"dive,required"`
	Weaknesses  []generatedWeakness `json:"weaknesses" validate:"dive"`
	Habitats    []string            `json:"habitats" validate:"dive,required"`
	ThreatLevel float64             `json:"threatLevel" validate:"min=1,max=10"`
	Size        generatedSize       `json:"size"`
	KeyDrops    []generatedDrop     `json:"keyDrops" validate:"dive"`
	Tips        []string            `json:"tips" validate:"dive,required"`
}

type generatedWeakness struct {
	Element string  `json:"element" validate:"required"`
	Stars   float64 `json:"stars" validate:"min=0,max=3"`
}

type generatedSize struct {
	Min float64 `json:"min" validate:"gte=0"`
	Max float64 `json:"max" validate:"gtefield=Min"`
}

type generatedDrop struct {
	Name   string  `json:"name" validate:"required"`
	Rarity float64 `json:"rarity" validate:"min=0,max=10"`
}

func (c *client) parse(text string) (*entities.Monster, error) {
	text = stripCodeFence(text)
	if text == "" {
		return nil, errors.NotFound(MsgNotFound)
	}

	var gm generatedMonster
	if err := json.Unmarshal([]byte(text), &gm); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, MsgFetchFailed)
	}

	gm.normalize()
	if gm.Name == "" {
		return nil, errors.NotFound(MsgNotFound)
	}

	if err := c.validate.Struct(&gm); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, MsgFetchFailed).
			WithMeta("name", gm.Name)
	}

	return gm.toEntity(), nil
}

// normalize trims text, drops blank list entries and forces numbers into range
func (g *generatedMonster) normalize() {
	g.Name = strings.TrimSpace(g.Name)
	g.Title = strings.TrimSpace(g.Title)
	g.Species = strings.TrimSpace(g.Species)
	g.Description = strings.TrimSpace(g.Description)
	g.Elements = compact(g.Elements)
	g.Ailments = compact(g.Ailments)
	g.Habitats = compact(g.Habitats)
	g.Tips = compact(g.Tips)

	weaknesses := g.Weaknesses[:0]
	for _, w := range g.Weaknesses {
		w.Element = strings.TrimSpace(w.Element)
		if w.Element == "" {
			continue
		}
		w.Stars = clampFloat(math.Round(w.Stars), 0, entities.MaxStars)
		weaknesses = append(weaknesses, w)
	}
	g.Weaknesses = weaknesses

	drops := g.KeyDrops[:0]
	for _, d := range g.KeyDrops {
		d.Name = strings.TrimSpace(d.Name)
		if d.Name == "" {
			continue
		}
		d.Rarity = clampFloat(math.Round(d.Rarity), 0, entities.MaxRarity)
		drops = append(drops, d)
	}
	g.KeyDrops = drops

	g.ThreatLevel = clampFloat(math.Round(g.ThreatLevel), entities.MinThreatLevel, entities.MaxThreatLevel)

	g.Size.Min = math.Max(0, g.Size.Min)
	g.Size.Max = math.Max(0, g.Size.Max)
	if g.Size.Max < g.Size.Min {
		g.Size.Min, g.Size.Max = g.Size.Max, g.Size.Min
	}
}

func (g *generatedMonster) toEntity() *entities.Monster {
	m := &entities.Monster{
		Name:        g.Name,
		Title:       g.Title,
		Species:     g.Species,
		Description: g.Description,
		Elements:    g.Elements,
		Ailments:    g.Ailments,
		Weaknesses:  make([]entities.Weakness, len(g.Weaknesses)),
		Habitats:    g.Habitats,
		ThreatLevel: int(g.ThreatLevel),
		Size: entities.SizeRange{
			Min: int(math.Round(g.Size.Min)),
			Max: int(math.Round(g.Size.Max)),
		},
		KeyDrops: make([]entities.DropItem, len(g.KeyDrops)),
		Tips:     g.Tips,
	}
	for i, w := range g.Weaknesses {
		m.Weaknesses[i] = entities.Weakness{Element: w.Element, Stars: int(w.Stars)}
	}
	for i, d := range g.KeyDrops {
		m.KeyDrops[i] = entities.DropItem{Name: d.Name, Rarity: int(d.Rarity)}
	}
	m.ClampRatings()
	return m
}

func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func clampFloat(v float64, lo, hi int) float64 {
	return math.Min(math.Max(v, float64(lo)), float64(hi))
}

// stripCodeFence removes a ```json fence some OpenAI-compatible servers add
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[nl+1:]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
