package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herodex/herodex/internal/application/handlers"
	"github.com/herodex/herodex/internal/domain/entities"
	"github.com/herodex/herodex/internal/domain/mocks"
	"github.com/herodex/herodex/internal/domain/services"
)

func testProfile() *entities.HeroProfile {
	return &entities.HeroProfile{
		Name:              "Bolt",
		Superpowers:       "speed",
		Hometown:          "Metro",
		Backstory:         "Struck by lightning.",
		PersonalityTraits: "restless",
		Appearance:        "Yellow suit",
	}
}

func newTestServer(t *testing.T, store *mocks.HeroStore, llm *mocks.GenerationClient, fetcher *mocks.ImageFetcher) *Server {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	roster := services.NewRosterService(store, llm, fetcher)
	chapters := services.NewChapterService(store, llm)

	return NewServer(
		handlers.NewCreateHandler(roster),
		handlers.NewChapterHandler(chapters),
		handlers.NewRosterHandler(roster, chapters),
		t.TempDir(),
		log,
	)
}

func doRequest(t *testing.T, server *Server, method, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	var body map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestServer_ListHeroes(t *testing.T) {
	store := mocks.NewHeroStore()
	store.Catalog = []entities.Hero{{ID: "h1", HeroProfile: *testProfile()}}
	server := newTestServer(t, store, &mocks.GenerationClient{}, &mocks.ImageFetcher{})

	rec, body := doRequest(t, server, http.MethodGet, "/api/heroes")
	assert.Equal(t, http.StatusOK, rec.Code)

	heroes := body["heroes"].([]any)
	require.Len(t, heroes, 1)
	assert.Equal(t, "h1", heroes[0].(map[string]any)["id"])
}

func TestServer_CreateHero(t *testing.T) {
	store := mocks.NewHeroStore()
	llm := &mocks.GenerationClient{Profile: testProfile(), ImageURL: "https://img.example/p.png"}
	server := newTestServer(t, store, llm, &mocks.ImageFetcher{Data: []byte{0x89, 'P', 'N', 'G', 0, 0}})

	rec, body := doRequest(t, server, http.MethodPost, "/api/heroes")
	assert.Equal(t, http.StatusCreated, rec.Code)

	hero := body["hero"].(map[string]any)
	assert.Equal(t, "Bolt", hero["name"])
	assert.NotContains(t, body, "warning")
	assert.Len(t, store.Catalog, 1)
}

func TestServer_CreateHero_ImageWarning(t *testing.T) {
	store := mocks.NewHeroStore()
	llm := &mocks.GenerationClient{Profile: testProfile(), ImageURL: "https://img.example/p.png"}
	fetcher := &mocks.ImageFetcher{Err: assert.AnError}
	server := newTestServer(t, store, llm, fetcher)

	rec, body := doRequest(t, server, http.MethodPost, "/api/heroes")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, body, "warning")

	require.Len(t, store.Catalog, 1)
	assert.Empty(t, store.Catalog[0].ImagePath)
}

func TestServer_CreateHero_MalformedGeneration(t *testing.T) {
	store := mocks.NewHeroStore()
	llm := &mocks.GenerationClient{ProfileErr: entities.ErrMalformedGeneration}
	server := newTestServer(t, store, llm, &mocks.ImageFetcher{})

	rec, body := doRequest(t, server, http.MethodPost, "/api/heroes")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, body, "error")
	assert.Empty(t, store.Catalog)
}

func TestServer_ShowHero(t *testing.T) {
	store := mocks.NewHeroStore()
	store.Catalog = []entities.Hero{{ID: "h1", HeroProfile: *testProfile()}}
	store.Logs["h1"] = "summary 1\n\n"
	server := newTestServer(t, store, &mocks.GenerationClient{}, &mocks.ImageFetcher{})

	rec, body := doRequest(t, server, http.MethodGet, "/api/heroes/h1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "summary 1\n\n", body["story_so_far"])
}

func TestServer_ShowHero_NotFound(t *testing.T) {
	server := newTestServer(t, mocks.NewHeroStore(), &mocks.GenerationClient{}, &mocks.ImageFetcher{})

	rec, _ := doRequest(t, server, http.MethodGet, "/api/heroes/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_GenerateChapter(t *testing.T) {
	store := mocks.NewHeroStore()
	store.Catalog = []entities.Hero{{ID: "h1", HeroProfile: *testProfile()}}
	llm := &mocks.GenerationClient{Texts: []string{"full chapter", "short summary"}}
	server := newTestServer(t, store, llm, &mocks.ImageFetcher{})

	rec, body := doRequest(t, server, http.MethodPost, "/api/heroes/h1/chapters")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "full chapter", body["chapter"])
	assert.Equal(t, "short summary", body["summary"])
	assert.Equal(t, "short summary\n\n", store.Logs["h1"])
}

func TestServer_GenerateChapter_MissingCredential(t *testing.T) {
	store := mocks.NewHeroStore()
	store.Catalog = []entities.Hero{{ID: "h1", HeroProfile: *testProfile()}}
	llm := &mocks.GenerationClient{TextErr: entities.ErrMissingCredential}
	server := newTestServer(t, store, llm, &mocks.ImageFetcher{})

	rec, _ := doRequest(t, server, http.MethodPost, "/api/heroes/h1/chapters")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
