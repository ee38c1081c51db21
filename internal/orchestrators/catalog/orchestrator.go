// Package catalog implements the monster list, detail and lookup flows on
// top of the upstream catalog, the AI lookup client and the discovered archive.
package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=catalogmock github.com/KirkDiggler/monster-codex/internal/orchestrators/catalog Service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/KirkDiggler/monster-codex/internal/clients/ai"
	"github.com/KirkDiggler/monster-codex/internal/clients/mhapi"
	"github.com/KirkDiggler/monster-codex/internal/entities"
	"github.com/KirkDiggler/monster-codex/internal/errors"
	"github.com/KirkDiggler/monster-codex/internal/pkg/idgen"
	"github.com/KirkDiggler/monster-codex/internal/pkg/pagination"
	"github.com/KirkDiggler/monster-codex/internal/repositories/discovered"
	"github.com/KirkDiggler/monster-codex/internal/services/conversion"
)

// MsgMonsterNotFound is shown when a detail id resolves to nothing
const MsgMonsterNotFound = "モンスターが見つかりませんでした。"

// Service defines the catalog operations behind the list and detail views
type Service interface {
	// ListMonsters renders one list page for the given filter state
	ListMonsters(ctx context.Context, input *ListMonstersInput) (*ListMonstersOutput, error)

	// GetMonster resolves the detail view by id or name, checking the
	// catalog batch first and the discovered archive second
	// Returns errors.NotFound when neither knows the monster
	GetMonster(ctx context.Context, input *GetMonsterInput) (*GetMonsterOutput, error)

	// SearchMonster looks the query up in the catalog batch and falls back
	// to the AI lookup when no name contains it
	SearchMonster(ctx context.Context, input *SearchMonsterInput) (*SearchMonsterOutput, error)

	// AskMonster sends a free-text question straight to the AI lookup
	AskMonster(ctx context.Context, input *AskMonsterInput) (*AskMonsterOutput, error)

	// ListDiscovered returns archived AI discoveries, newest first
	ListDiscovered(ctx context.Context, input *ListDiscoveredInput) (*ListDiscoveredOutput, error)
}

// Config holds the dependencies for the catalog orchestrator
type Config struct {
	Client      mhapi.Client
	AI          ai.Client
	Archive     discovered.Repository
	IDGenerator idgen.Generator
	Logger      *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.AI == nil {
		vb.RequiredField("AI")
	}
	if c.Archive == nil {
		vb.RequiredField("Archive")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	if err := vb.Build(); err != nil {
		return err
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return nil
}

type orchestrator struct {
	client  mhapi.Client
	ai      ai.Client
	archive discovered.Repository
	idGen   idgen.Generator
	logger  *zap.Logger
}

// NewOrchestrator creates a new catalog orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client:  cfg.Client,
		ai:      cfg.AI,
		archive: cfg.Archive,
		idGen:   cfg.IDGenerator,
		logger:  cfg.Logger,
	}, nil
}

// ListMonsters fetches the window FetchPlan asks for and reconciles it. When
// the requested page lies past the last page in server mode the last page is
// fetched once more.
func (o *orchestrator) ListMonsters(ctx context.Context, input *ListMonstersInput) (*ListMonstersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	criteria, err := normalizeCriteria(input.Criteria)
	if err != nil {
		return nil, err
	}

	page := clampPage(input.Page)
	rec, err := o.fetchAndReconcile(ctx, criteria, page)
	if err != nil {
		return nil, err
	}

	if rec.Mode == ModeServer && rec.Page != page {
		o.logger.Debug("page out of range, fetching last page",
			zap.Int("requested", page),
			zap.Int("last", rec.Page))
		rec, err = o.fetchAndReconcile(ctx, criteria, rec.Page)
		if err != nil {
			return nil, err
		}
	}

	return &ListMonstersOutput{
		Monsters:   rec.Monsters,
		Page:       rec.Page,
		TotalPages: rec.TotalPages,
		TotalItems: rec.TotalItems,
		Mode:       rec.Mode,
		Truncated:  rec.Truncated,
		Summary:    pagination.Summary(rec.Page, PageSize, rec.TotalItems),
		Controls:   pagination.Pages(rec.Page, rec.TotalPages, input.Layout),
	}, nil
}

func (o *orchestrator) fetchAndReconcile(ctx context.Context, criteria Criteria, page int) (ReconcileOutput, error) {
	out, err := o.client.ListMonsters(ctx, FetchPlan(criteria, page))
	if err != nil {
		return ReconcileOutput{}, err
	}
	return Reconcile(ReconcileInput{
		Monsters:      conversion.ConvertMonsters(out.Monsters),
		UpstreamTotal: out.Total,
		Criteria:      criteria,
		Page:          page,
	}), nil
}

func (o *orchestrator) GetMonster(ctx context.Context, input *GetMonsterInput) (*GetMonsterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, errors.InvalidArgument("id is required")
	}

	batch, fetchErr := o.fetchBatch(ctx)
	if fetchErr != nil && (errors.IsCanceled(fetchErr) || errors.IsDeadlineExceeded(fetchErr)) {
		return nil, fetchErr
	}
	for _, m := range batch {
		if m.MonsterID == id || m.Name == id {
			return &GetMonsterOutput{Monster: m, Source: SourceCatalog}, nil
		}
	}

	got, err := o.archive.Get(ctx, &discovered.GetInput{Key: id})
	if err == nil {
		return &GetMonsterOutput{Monster: got.Entry.Monster, Source: SourceArchive}, nil
	}
	if !errors.IsNotFound(err) {
		o.logger.Warn("archive lookup failed", zap.String("id", id), zap.Error(err))
	}

	if fetchErr != nil {
		return nil, fetchErr
	}
	return nil, errors.NotFound(MsgMonsterNotFound).WithMeta("id", id)
}

func (o *orchestrator) SearchMonster(ctx context.Context, input *SearchMonsterInput) (*SearchMonsterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, errors.InvalidArgument("query is required")
	}

	batch, err := o.fetchBatch(ctx)
	switch {
	case err == nil:
		if m := findByName(batch, query); m != nil {
			return &SearchMonsterOutput{Monster: m, Source: SourceCatalog}, nil
		}
	case errors.IsCanceled(err) || errors.IsDeadlineExceeded(err):
		return nil, err
	default:
		o.logger.Warn("catalog unavailable, asking ai only", zap.String("query", query), zap.Error(err))
	}

	m, err := o.discover(ctx, query)
	if err != nil {
		return nil, err
	}
	return &SearchMonsterOutput{Monster: m, Source: SourceAI}, nil
}

func (o *orchestrator) AskMonster(ctx context.Context, input *AskMonsterInput) (*AskMonsterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return nil, errors.InvalidArgument("question is required")
	}

	m, err := o.discover(ctx, question)
	if err != nil {
		return nil, err
	}
	return &AskMonsterOutput{Monster: m}, nil
}

func (o *orchestrator) ListDiscovered(ctx context.Context, input *ListDiscoveredInput) (*ListDiscoveredOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Limit < 0 || input.Limit > MaxDiscoveredLimit {
		return nil, errors.InvalidArgumentf("limit must be between 0 and %d", MaxDiscoveredLimit)
	}

	out, err := o.archive.List(ctx, &discovered.ListInput{Limit: input.Limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list discovered monsters")
	}

	result := &ListDiscoveredOutput{Discoveries: make([]*Discovery, 0, len(out.Entries))}
	for _, e := range out.Entries {
		result.Discoveries = append(result.Discoveries, &Discovery{
			Monster:      e.Monster,
			Query:        e.Query,
			DiscoveredAt: e.DiscoveredAt,
		})
	}
	return result, nil
}

// discover runs the AI lookup, stamps the result with an id and archives it.
// An archive failure is logged and the monster is still returned.
func (o *orchestrator) discover(ctx context.Context, query string) (*entities.Monster, error) {
	out, err := o.ai.LookupMonster(ctx, &ai.LookupMonsterInput{Query: query})
	if err != nil {
		return nil, err
	}

	m := out.Monster
	if m.MonsterID == "" {
		m.MonsterID = o.idGen.Generate()
	}

	if _, err := o.archive.Save(ctx, &discovered.SaveInput{Monster: m, Query: query}); err != nil {
		o.logger.Error("failed to archive discovered monster",
			zap.String("name", m.Name),
			zap.String("monster_id", m.MonsterID),
			zap.Error(err))
	}
	return m, nil
}

func (o *orchestrator) fetchBatch(ctx context.Context) ([]*entities.Monster, error) {
	out, err := o.client.ListMonsters(ctx, &mhapi.ListMonstersInput{Limit: BatchSize, Offset: 0})
	if err != nil {
		return nil, err
	}
	return conversion.ConvertMonsters(out.Monsters), nil
}

// findByName prefers an exact name over the first name containing query
func findByName(monsters []*entities.Monster, query string) *entities.Monster {
	var partial *entities.Monster
	for _, m := range monsters {
		if m.Name == query {
			return m
		}
		if partial == nil && strings.Contains(m.Name, query) {
			partial = m
		}
	}
	return partial
}

func normalizeCriteria(c Criteria) (Criteria, error) {
	vb := errors.NewValidationBuilder()

	sortOpt, ok := entities.ParseSortOption(string(c.Sort))
	if !ok {
		vb.InvalidField("sort", "unknown sort option "+string(c.Sort))
	}
	if err := vb.Build(); err != nil {
		return Criteria{}, err
	}

	return Criteria{Search: c.Search, Element: entities.ParseElementFilter(c.Element), Sort: sortOpt}, nil
}
