package config

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	migration "recipe-study-backend/cmd/database/migrate"
	"recipe-study-backend/domain"
	"recipe-study-backend/pkg/catalog"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "study.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := migration.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	recipeCatalog := catalog.SampleCatalog()
	if err := catalog.Seed(db, recipeCatalog); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}

	app, err := NewApp(db, recipeCatalog)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, cookie string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			t.Fatalf("decode %s %s response %q: %v", method, path, raw, err)
		}
	}
	return resp, env
}

func sessionCookie(t *testing.T, resp *http.Response) string {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == "session_id" {
			return c.Name + "=" + c.Value
		}
	}
	t.Fatalf("no session cookie issued")
	return ""
}

func TestStudyFlow(t *testing.T) {
	app := newTestApp(t)

	// register with complete demographics and all mandatory consents
	resp, env := doJSON(t, app, fiber.MethodPost, "/register", "", map[string]interface{}{
		"age_group":                "25-34",
		"education":                "university",
		"cooking_frequency":        "weekly",
		"sustainability_awareness": 4,
		"consent_participation":    true,
		"consent_data":             true,
		"consent_publication":      true,
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("register status %d: %s", resp.StatusCode, env.Error)
	}
	cookie := sessionCookie(t, resp)

	// study page: five ranked recipes, no arm label anywhere
	resp, env = doJSON(t, app, fiber.MethodGet, "/study", cookie, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("study status %d: %s", resp.StatusCode, env.Error)
	}
	var studyRes domain.StudyResponse
	if err := json.Unmarshal(env.Data, &studyRes); err != nil {
		t.Fatalf("decode study response: %v", err)
	}
	if studyRes.Total != 5 || len(studyRes.Recipes) != 5 {
		t.Fatalf("expected 5 recipes, got %d", len(studyRes.Recipes))
	}
	for i, r := range studyRes.Recipes {
		if r.Rank != i+1 {
			t.Fatalf("recipe %d has rank %d", i, r.Rank)
		}
	}
	if strings.Contains(string(env.Data), "\"version\"") {
		t.Fatalf("study response leaks the assigned arm: %s", env.Data)
	}

	// rate all five shown recipes with 4
	for i, r := range studyRes.Recipes {
		resp, env = doJSON(t, app, fiber.MethodPost, "/rate_recipe", cookie, map[string]interface{}{
			"recipe_id":         r.RecipeID,
			"rating":            4,
			"interaction_order": i + 1,
		})
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("rate_recipe status %d: %s", resp.StatusCode, env.Error)
		}
	}

	// closing questionnaire; the clarity answer is dropped server-side for
	// the baseline arm
	resp, env = doJSON(t, app, fiber.MethodPost, "/questionnaire", cookie, map[string]interface{}{
		"system_usability":          4,
		"recommendation_quality":    4,
		"trust_level":               4,
		"explanation_clarity":       4,
		"sustainability_importance": 4,
		"overall_satisfaction":      4,
		"additional_comments":       "loved the gulyás",
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("questionnaire status %d: %s", resp.StatusCode, env.Error)
	}

	// admin dashboard reflects the completed participant
	resp, env = doJSON(t, app, fiber.MethodGet, "/admin/stats", "", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("admin stats status %d: %s", resp.StatusCode, env.Error)
	}
	var stats domain.StudyStatsResponse
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalParticipants != 1 || stats.CompletedParticipants != 1 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if stats.CompletionRate != 1 {
		t.Fatalf("expected completion rate 1, got %v", stats.CompletionRate)
	}
	if stats.TotalInteractions != 5 {
		t.Fatalf("expected 5 interactions, got %d", stats.TotalInteractions)
	}

	// the participant landed in exactly one arm; that arm must show the
	// completion and the 4.0 rating average
	var active *domain.VersionStats
	for i := range stats.Versions {
		if stats.Versions[i].Participants > 0 {
			if active != nil {
				t.Fatalf("participant counted in more than one arm: %+v", stats.Versions)
			}
			active = &stats.Versions[i]
		}
	}
	if active == nil {
		t.Fatalf("participant missing from version breakdown")
	}
	if active.Completed != 1 || active.CompletionRate != 1 {
		t.Fatalf("unexpected arm stats: %+v", active)
	}
	if active.AverageRating != 4.0 || active.RatingCount != 5 {
		t.Fatalf("expected rating average 4.0 over 5 rows, got %+v", active)
	}
}

func TestStudyRequiresSession(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, fiber.MethodGet, "/study", "", nil)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, fiber.MethodPost, "/rate_recipe", "", map[string]interface{}{
		"recipe_id": 1,
		"rating":    4,
	})
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", resp.StatusCode)
	}
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(t)

	// consent withheld
	resp, env := doJSON(t, app, fiber.MethodPost, "/register", "", map[string]interface{}{
		"age_group":                "25-34",
		"education":                "university",
		"cooking_frequency":        "weekly",
		"sustainability_awareness": 4,
		"consent_participation":    true,
		"consent_data":             false,
		"consent_publication":      true,
	})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for withheld consent, got %d (%s)", resp.StatusCode, env.Error)
	}

	// missing demographic field
	resp, env = doJSON(t, app, fiber.MethodPost, "/register", "", map[string]interface{}{
		"age_group":                "25-34",
		"sustainability_awareness": 4,
		"consent_participation":    true,
		"consent_data":             true,
		"consent_publication":      true,
	})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing demographics, got %d (%s)", resp.StatusCode, env.Error)
	}
}
