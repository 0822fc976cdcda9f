package analysis

import (
	"context"
	"errors"
	"testing"

	"beauty-backend/internal/catalog"
	"beauty-backend/internal/vision"
)

type stubVision struct {
	text string
	err  error
}

func (s stubVision) AnalyzeFace(ctx context.Context, imageBase64 string) (string, error) {
	return s.text, s.err
}

func newTestService(v vision.Client) (*Service, *MemoryRepo) {
	repo := NewMemoryRepo()
	svc := NewService(repo, v, nil, catalog.NewMemoryRepo(catalog.SeedProducts()))
	return svc, repo
}

const serviceAssessment = `Skin Tone: Deep
Undertone: Warm
Main concern: dryness around the cheeks`

func TestAnalyzePersistsForAuthenticatedUser(t *testing.T) {
	svc, repo := newTestService(stubVision{text: serviceAssessment})

	outcome, err := svc.Analyze(context.Background(), "user-1", "aGVsbG8=")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if outcome.Saved == nil {
		t.Fatal("expected saved analysis for authenticated user")
	}
	if outcome.Result.SkinTone != "Deep" || outcome.Result.Undertone != "Warm" {
		t.Fatalf("unexpected result %+v", outcome.Result)
	}

	stored, err := repo.GetByID(context.Background(), outcome.Saved.ID, "user-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.RawText != serviceAssessment {
		t.Fatalf("raw text not persisted: %q", stored.RawText)
	}
}

func TestAnalyzeGuestIsNotPersisted(t *testing.T) {
	svc, repo := newTestService(stubVision{text: serviceAssessment})

	outcome, err := svc.Analyze(context.Background(), "guest:g-1", "aGVsbG8=")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if outcome.Saved != nil {
		t.Fatal("guest analysis must not be persisted")
	}
	if outcome.Result.SkinTone != "Deep" {
		t.Fatalf("unexpected result %+v", outcome.Result)
	}

	if list, _ := repo.ListByUser(context.Background(), "guest:g-1", 10, 0); len(list) != 0 {
		t.Fatalf("expected empty repo, got %d rows", len(list))
	}
}

func TestAnalyzeNoFaceIsNeverPersisted(t *testing.T) {
	svc, repo := newTestService(stubVision{err: vision.ErrNoFace})

	_, err := svc.Analyze(context.Background(), "user-1", "aGVsbG8=")
	if !errors.Is(err, ErrAnalysisFailed) {
		t.Fatalf("expected ErrAnalysisFailed, got %v", err)
	}
	if list, _ := repo.ListByUser(context.Background(), "user-1", 10, 0); len(list) != 0 {
		t.Fatal("failed analysis must not be persisted")
	}
}

func TestAnalyzeFailureMarkerInText(t *testing.T) {
	svc, _ := newTestService(stubVision{text: "Unable to analyze the supplied image."})

	_, err := svc.Analyze(context.Background(), "user-1", "aGVsbG8=")
	if !errors.Is(err, ErrAnalysisFailed) {
		t.Fatalf("expected ErrAnalysisFailed, got %v", err)
	}
}

func TestAnalyzeUpstreamError(t *testing.T) {
	svc, _ := newTestService(stubVision{err: errors.New("connection refused")})

	_, err := svc.Analyze(context.Background(), "user-1", "aGVsbG8=")
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestAnalyzeRejectsMalformedImage(t *testing.T) {
	svc, _ := newTestService(stubVision{text: serviceAssessment})

	_, err := svc.Analyze(context.Background(), "user-1", "not base64!!!")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRecommendForAnalysisUsesStoredSignals(t *testing.T) {
	svc, repo := newTestService(stubVision{text: serviceAssessment})

	a := Analysis{
		ID:       "a-1",
		UserID:   "user-1",
		SkinTone: "Medium",
		Concerns: []string{"dryness"},
		Recommendations: []Recommendation{
			{Category: "moisturizer", Ingredients: []string{"Hyaluronic Acid"}},
		},
	}
	if err := repo.Create(context.Background(), a); err != nil {
		t.Fatalf("Create: %v", err)
	}

	matches, err := svc.RecommendForAnalysis(context.Background(), "a-1", "user-1")
	if err != nil {
		t.Fatalf("RecommendForAnalysis: %v", err)
	}
	if len(matches) == 0 || len(matches) > catalog.MaxMatches {
		t.Fatalf("unexpected match count %d", len(matches))
	}
	if matches[0].MatchScore == 0 {
		t.Fatal("expected top match to have a positive score")
	}
	seen := map[int64]bool{}
	for _, m := range matches {
		if seen[m.ID] {
			t.Fatalf("duplicate product id %d", m.ID)
		}
		seen[m.ID] = true
	}
}

func TestRecommendForAnalysisWrongUser(t *testing.T) {
	svc, repo := newTestService(stubVision{text: serviceAssessment})

	if err := repo.Create(context.Background(), Analysis{ID: "a-1", UserID: "user-1"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err := svc.RecommendForAnalysis(context.Background(), "a-1", "user-2")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRecommendSelectsFoundationByToneTags(t *testing.T) {
	// None of the names carry a tone word, so the shade family and
	// undertone tags are the only signal separating the foundations.
	foundations := []catalog.Product{
		{ID: 1, Name: "Velvet Base", Category: "Foundation", ShadeFamily: "Fair", Undertone: "Cool"},
		{ID: 2, Name: "Satin Base", Category: "Foundation", ShadeFamily: "Deep", Undertone: "Warm"},
		{ID: 3, Name: "Dewy Base", Category: "Foundation", ShadeFamily: "Tan", Undertone: "Warm"},
		{ID: 4, Name: "Second Skin Base", Category: "Foundation", ShadeFamily: "Medium", Undertone: "Neutral"},
	}
	svc := NewService(NewMemoryRepo(), stubVision{text: serviceAssessment}, nil, catalog.NewMemoryRepo(foundations))

	set, err := svc.Recommend(context.Background(), "Medium", "Neutral")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(set.Products) == 0 {
		t.Fatal("expected products")
	}
	if set.Products[0].ID != 4 {
		t.Fatalf("expected foundation tagged Medium/Neutral first, got id %d", set.Products[0].ID)
	}
	if set.Products[0].MatchScore <= set.Products[1].MatchScore {
		t.Fatalf("expected tagged foundation to outscore the rest, got %d vs %d",
			set.Products[0].MatchScore, set.Products[1].MatchScore)
	}
}

func TestRecommendNormalizesTones(t *testing.T) {
	svc, _ := newTestService(stubVision{text: serviceAssessment})

	set, err := svc.Recommend(context.Background(), "Olive", "Golden")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if set.SkinTone != DefaultSkinTone || set.Undertone != DefaultUndertone {
		t.Fatalf("expected defaults, got %q/%q", set.SkinTone, set.Undertone)
	}
	if len(set.Products) == 0 {
		t.Fatal("expected products")
	}
}
