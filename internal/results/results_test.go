package results

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/saturation-search/pkg/types"
)

// --- test helpers ---

func testStore(t *testing.T) (*Store, string) {
	t.Helper()
	tmpDir := t.TempDir()

	store, err := NewStore(types.ResultsConfig{
		ResultsDir: tmpDir,
		MaxResults: 20,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	return store, tmpDir
}

func sampleRun() Run {
	articles := []types.ArticleRecord{
		{
			Title:    "Water quality trends in the Nechako River",
			Abstract: "Long-term monitoring of water quality downstream of the reservoir.",
			Authors:  []string{"Smith, Jane", "Lee, Ming"},
			Year:     2015, Journal: "Journal of Hydrology",
			DOI: "10.1234/nechako.2015", SourceDB: "openalex",
		},
		{
			Title:    "Salmon populations of Stuart Lake",
			Abstract: "Sockeye salmon abundance surveys across three decades.",
			Year:     2018, SourceDB: "crossref",
		},
		{
			Title:    "Forestry employment in Vanderhoof",
			Abstract: "Community impacts of mill closures on local employment.",
			Year:     2010, SourceDB: "openalex",
		},
	}

	decisions := []types.ScreeningDecision{
		{ArticleID: 0, Decision: types.DecisionIncluded, Theme: types.ThemeEnvironment, ConfidenceScore: 0.91, GeoRelevanceScore: 0.9, LocationMatches: types.LocationMatches{Total: 4}},
		{ArticleID: 1, Decision: types.DecisionIncluded, Theme: types.ThemeEnvironment, ConfidenceScore: 0.84, GeoRelevanceScore: 0.6, LocationMatches: types.LocationMatches{Total: 2}},
		{ArticleID: 2, Decision: types.DecisionManualReview, Theme: types.ThemeCommunity, ConfidenceScore: 0.55, GeoRelevanceScore: 0.4, LocationMatches: types.LocationMatches{Total: 1}, ManualReviewReasons: []string{"low confidence score: 0.55"}},
	}

	return Run{
		Query:    "nechako watershed",
		Articles: articles,
		DedupReport: types.DeduplicationReport{
			TotalInput:        5,
			UniqueCount:       3,
			DuplicatesRemoved: 2,
			Matches: []types.DuplicateMatch{
				{IDA: 0, IDB: 3, Type: types.MatchDOIExact, Confidence: 1.0, Reason: "identical DOI"},
				{IDA: 1, IDB: 4, Type: types.MatchTitleSimilarity, Confidence: 0.97, Reason: "title similarity 0.97"},
			},
		},
		Decisions: decisions,
		ScreenReport: types.ScreeningReport{
			TotalArticles: 3, Included: 2, ManualReview: 1,
		},
	}
}

// --- SaveRun / Retrieve ---

func TestSaveRunAndRetrieve(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()

	runID, err := store.SaveRun(ctx, sampleRun())
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if runID == 0 {
		t.Fatal("runID = 0, want non-zero")
	}

	results, err := store.Retrieve(ctx, QueryOptions{RunID: runID})
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}

	r0 := results[0]
	if r0.Article.Title != "Water quality trends in the Nechako River" {
		t.Errorf("Title = %q", r0.Article.Title)
	}
	if len(r0.Article.Authors) != 2 || r0.Article.Authors[0] != "Smith, Jane" {
		t.Errorf("Authors = %v", r0.Article.Authors)
	}
	if r0.Decision != types.DecisionIncluded || r0.Theme != types.ThemeEnvironment {
		t.Errorf("Decision/Theme = %s/%s", r0.Decision, r0.Theme)
	}
	if r0.ConfidenceScore != 0.91 {
		t.Errorf("ConfidenceScore = %v", r0.ConfidenceScore)
	}
}

func TestRetrieveFullText(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()

	if _, err := store.SaveRun(ctx, sampleRun()); err != nil {
		t.Fatal(err)
	}

	results, err := store.Retrieve(ctx, QueryOptions{Query: "salmon"})
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	if results[0].Article.Title != "Salmon populations of Stuart Lake" {
		t.Errorf("Title = %q", results[0].Article.Title)
	}
}

func TestRetrieveDecisionFilter(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()

	if _, err := store.SaveRun(ctx, sampleRun()); err != nil {
		t.Fatal(err)
	}

	included, err := store.Retrieve(ctx, QueryOptions{Decision: types.DecisionIncluded})
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(included) != 2 {
		t.Errorf("included = %d, want 2", len(included))
	}

	manual, err := store.Retrieve(ctx, QueryOptions{Decision: types.DecisionManualReview})
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(manual) != 1 || manual[0].Article.Title != "Forestry employment in Vanderhoof" {
		t.Errorf("manual = %+v", manual)
	}
}

func TestRetrieveThemeAndSourceFilters(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()

	if _, err := store.SaveRun(ctx, sampleRun()); err != nil {
		t.Fatal(err)
	}

	community, err := store.Retrieve(ctx, QueryOptions{Theme: types.ThemeCommunity})
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(community) != 1 {
		t.Errorf("community = %d, want 1", len(community))
	}

	openalex, err := store.Retrieve(ctx, QueryOptions{SourceDB: "openalex"})
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(openalex) != 2 {
		t.Errorf("openalex = %d, want 2", len(openalex))
	}
}

func TestRetrieveDefaultsToLatestRun(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()

	if _, err := store.SaveRun(ctx, sampleRun()); err != nil {
		t.Fatal(err)
	}

	second := sampleRun()
	second.Articles = second.Articles[:1]
	second.Decisions = second.Decisions[:1]
	secondID, err := store.SaveRun(ctx, second)
	if err != nil {
		t.Fatal(err)
	}

	results, err := store.Retrieve(ctx, QueryOptions{})
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1 from latest run", len(results))
	}
	if results[0].RunID != secondID {
		t.Errorf("RunID = %d, want %d", results[0].RunID, secondID)
	}
}

func TestRetrieveEmptyStore(t *testing.T) {
	store, _ := testStore(t)
	if _, err := store.Retrieve(context.Background(), QueryOptions{}); err == nil {
		t.Error("expected error for empty store")
	}
}

func TestRetrieveMaxResults(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()

	if _, err := store.SaveRun(ctx, sampleRun()); err != nil {
		t.Fatal(err)
	}

	results, err := store.Retrieve(ctx, QueryOptions{MaxResults: 2})
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("len(results) = %d, want 2", len(results))
	}
}

// --- Export ---

func TestExportYAML(t *testing.T) {
	store, tmpDir := testStore(t)
	ctx := context.Background()

	if _, err := store.SaveRun(ctx, sampleRun()); err != nil {
		t.Fatal(err)
	}

	if err := store.ExportYAML(ctx, QueryOptions{Decision: types.DecisionIncluded}); err != nil {
		t.Fatalf("ExportYAML: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(tmpDir, indexDir, "export.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	var entries []ExportEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		t.Fatalf("parsing export: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Decision != types.DecisionIncluded {
		t.Errorf("Decision = %s", entries[0].Decision)
	}
	if entries[0].DOI != "10.1234/nechako.2015" {
		t.Errorf("DOI = %q", entries[0].DOI)
	}
}

func TestExportJSON(t *testing.T) {
	store, tmpDir := testStore(t)
	ctx := context.Background()

	if _, err := store.SaveRun(ctx, sampleRun()); err != nil {
		t.Fatal(err)
	}

	if err := store.ExportJSON(ctx, QueryOptions{}); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmpDir, indexDir, "export.json")); err != nil {
		t.Errorf("export.json not written: %v", err)
	}
}

// --- Reopening ---

func TestStoreReopenKeepsData(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := types.ResultsConfig{ResultsDir: tmpDir, MaxResults: 20}

	store, err := NewStore(cfg)
	if err != nil {
		t.Fatal(err)
	}
	runID, err := store.SaveRun(context.Background(), sampleRun())
	if err != nil {
		t.Fatal(err)
	}
	store.Close()

	reopened, err := NewStore(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	latest, err := reopened.LatestRunID(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if latest != runID {
		t.Errorf("latest = %d, want %d", latest, runID)
	}
}
