package analysis

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"beauty-backend/internal/catalog"
	"beauty-backend/internal/shared/metrics"
	"beauty-backend/internal/shared/storage/object"
	"beauty-backend/internal/shared/telemetry"
	"beauty-backend/internal/vision"
)

// Service runs the selfie analysis pipeline: validate, call the vision
// provider, parse, store the image, persist the result.
type Service struct {
	Repo    Repo
	Vision  vision.Client
	Store   object.ObjectStore
	Catalog catalog.Repo
}

// NewService constructs a Service.
func NewService(repo Repo, visionClient vision.Client, store object.ObjectStore, catalogRepo catalog.Repo) *Service {
	return &Service{Repo: repo, Vision: visionClient, Store: store, Catalog: catalogRepo}
}

// Outcome is the result of one analyze call. Saved is nil for guests.
type Outcome struct {
	RawText string    `json:"analysis"`
	Result  Result    `json:"result"`
	Saved   *Analysis `json:"savedAnalysis"`
}

// Analyze runs the full pipeline for one selfie. Guests get the parsed
// result without persistence. Failed analyses are never persisted.
func (s *Service) Analyze(ctx context.Context, userID, image string) (Outcome, error) {
	start := metrics.NowMillis()
	metrics.IncAnalysisStarted()

	image = vision.NormalizeImage(image)
	if err := vision.ValidateImage(image); err != nil {
		metrics.IncAnalysisFailed()
		return Outcome{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	raw, err := s.Vision.AnalyzeFace(ctx, image)
	if err != nil {
		metrics.IncAnalysisFailed()
		if errors.Is(err, vision.ErrNoFace) {
			return Outcome{}, fmt.Errorf("%w: no face detected in the image", ErrAnalysisFailed)
		}
		if errors.Is(err, vision.ErrInvalidImage) {
			return Outcome{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
		}
		metrics.IncVisionRequestError()
		telemetry.Error("vision.request_failed", map[string]any{"error": err.Error()})
		return Outcome{}, fmt.Errorf("%w: %s", ErrUpstreamUnavailable, err.Error())
	}

	result, err := Parse(raw)
	if err != nil {
		metrics.IncAnalysisFailed()
		return Outcome{}, err
	}

	outcome := Outcome{RawText: raw, Result: result}
	if !isGuestUser(userID) {
		saved, err := s.persist(ctx, userID, image, raw, result)
		if err != nil {
			telemetry.Error("analysis.persist_failed", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		} else {
			outcome.Saved = &saved
		}
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(metrics.NowMillis() - start)
	return outcome, nil
}

func (s *Service) persist(ctx context.Context, userID, image, raw string, result Result) (Analysis, error) {
	imageKey := ""
	if s.Store != nil {
		reader := base64.NewDecoder(base64.StdEncoding, strings.NewReader(image))
		key, _, _, err := s.Store.Save(ctx, userID, "selfie.jpg", reader)
		if err != nil {
			return Analysis{}, fmt.Errorf("store selfie: %w", err)
		}
		imageKey = key
	}

	a := Analysis{
		ID:               uuid.NewString(),
		UserID:           userID,
		ImageKey:         imageKey,
		RawText:          raw,
		SkinType:         result.SkinType,
		SkinTone:         result.SkinTone,
		Undertone:        result.Undertone,
		Concerns:         result.Concerns,
		Recommendations:  result.Recommendations,
		FoundationShades: result.FoundationShades,
		Degraded:         result.Degraded,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, a); err != nil {
		return Analysis{}, err
	}
	return a, nil
}

// Get returns one analysis scoped to the user.
func (s *Service) Get(ctx context.Context, id, userID string) (Analysis, error) {
	if strings.TrimSpace(id) == "" {
		return Analysis{}, fmt.Errorf("%w: analysis id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, id, userID)
}

// List returns the user's analyses, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Analysis, error) {
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// RecommendForAnalysis runs the product matcher over the catalog using a
// stored analysis as the signal source.
func (s *Service) RecommendForAnalysis(ctx context.Context, id, userID string) ([]catalog.Match, error) {
	a, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return s.match(ctx, matchRequestFromAnalysis(a))
}

// RecommendationSet is a direct matcher result with the normalized tones it
// was computed for.
type RecommendationSet struct {
	SkinTone  string          `json:"skinTone"`
	Undertone string          `json:"undertone"`
	Products  []catalog.Match `json:"products"`
}

// Recommend runs the matcher from bare tone inputs. Out-of-enum values
// degrade to the documented defaults rather than failing.
func (s *Service) Recommend(ctx context.Context, skinTone, undertone string) (RecommendationSet, error) {
	if !catalog.ValidSkinTone(skinTone) {
		skinTone = DefaultSkinTone
	}
	if !catalog.ValidUndertone(undertone) {
		undertone = DefaultUndertone
	}
	req := catalog.MatchRequest{
		SkinTone:  skinTone,
		Undertone: undertone,
		Shades:    []string{skinTone},
		Preferences: []catalog.Preference{
			{Category: "foundation"},
		},
	}
	products, err := s.match(ctx, req)
	if err != nil {
		return RecommendationSet{}, err
	}
	return RecommendationSet{SkinTone: skinTone, Undertone: undertone, Products: products}, nil
}

func (s *Service) match(ctx context.Context, req catalog.MatchRequest) ([]catalog.Match, error) {
	products, err := s.Catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.MatchProducts(products, req), nil
}

func matchRequestFromAnalysis(a Analysis) catalog.MatchRequest {
	shades := append([]string{}, a.FoundationShades...)
	shades = append(shades, a.SkinTone)

	prefs := make([]catalog.Preference, 0, len(a.Recommendations))
	for _, rec := range a.Recommendations {
		prefs = append(prefs, catalog.Preference{
			Category:    rec.Category,
			Ingredients: rec.Ingredients,
		})
	}
	return catalog.MatchRequest{
		SkinTone:    a.SkinTone,
		Undertone:   a.Undertone,
		Shades:      shades,
		Concerns:    a.Concerns,
		Preferences: prefs,
	}
}

func isGuestUser(userID string) bool {
	return userID == "" || strings.HasPrefix(userID, "guest:")
}
