package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"recipe-study-backend/entities"
)

func TestCompositeScore(t *testing.T) {
	got := CompositeScore(80, 70, 90)
	if got != 78 {
		t.Fatalf("expected composite 78, got %v", got)
	}
	// recomputation is idempotent for the same inputs
	if again := CompositeScore(80, 70, 90); again != got {
		t.Fatalf("expected stable composite, got %v then %v", got, again)
	}
}

func TestCompositeScoreBounds(t *testing.T) {
	if v := CompositeScore(0, 0, 0); v != 0 {
		t.Fatalf("expected 0 for zero inputs, got %v", v)
	}
	if v := CompositeScore(100, 100, 100); v != 100 {
		t.Fatalf("expected 100 for max inputs, got %v", v)
	}
}

func TestLoadFromCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.csv")
	content := "recipeid,title,ingredients,instructions,images,HSI,ESI,PPI,composite_score\n" +
		"1,Gulyás,marhahús,Főzzük.,/img/1.jpg,80,70,90,0\n" +
		"bad,Rossz,x,y,z,10,10,10,10\n" +
		"2,,x,y,z,10,10,10,10\n" +
		"3,Lecsó,paprika,Pirítjuk.,/img/3.jpg,85,90,70,83\n" +
		"4,Túlpontozott,x,y,z,150,10,10,10\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	c, err := LoadFromCSV(path)
	if err != nil {
		t.Fatalf("LoadFromCSV error: %v", err)
	}
	if c.Size() != 2 {
		t.Fatalf("expected 2 usable rows, got %d", c.Size())
	}

	r, ok := c.ByID(1)
	if !ok {
		t.Fatalf("recipe 1 missing")
	}
	// composite is recomputed from the indices, not trusted from the file
	if r.Composite != 78 {
		t.Fatalf("expected recomputed composite 78, got %v", r.Composite)
	}
	if r.Title != "Gulyás" {
		t.Fatalf("unexpected title %q", r.Title)
	}
}

func TestLoadFromCSVMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.csv")
	if err := os.WriteFile(path, []byte("recipeid,title\n1,Gulyás\n"), 0644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	c, err := LoadFromCSV(path)
	if err != nil {
		t.Fatalf("LoadFromCSV error: %v", err)
	}
	if c.Size() != 0 {
		t.Fatalf("expected empty catalog, got %d rows", c.Size())
	}
}

func TestLoadOrSampleFallsBack(t *testing.T) {
	c := LoadOrSample(filepath.Join(t.TempDir(), "missing.csv"))
	if c.Size() == 0 {
		t.Fatalf("expected sample recipes, got empty catalog")
	}
	for _, r := range c.Recipes() {
		if r.Composite != CompositeScore(r.HealthScore, r.EnvScore, r.PopScore) {
			t.Fatalf("sample recipe %d composite not recomputed", r.RecipeID)
		}
	}
}

func TestRecipesReturnsCopy(t *testing.T) {
	c := New([]entities.Recipe{{RecipeID: 1, Title: "A"}})
	got := c.Recipes()
	got[0].Title = "changed"
	if r, _ := c.ByID(1); r.Title != "A" {
		t.Fatalf("catalog mutated through Recipes()")
	}
}
