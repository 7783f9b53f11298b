package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lessonlabs/slidekit/pkg/deck"
	"github.com/lessonlabs/slidekit/pkg/generator"
	"github.com/lessonlabs/slidekit/pkg/provider"
	"github.com/lessonlabs/slidekit/pkg/session"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	bundle *generator.Bundle
	err    error

	// block, when set, holds every run until the channel is closed.
	block chan struct{}
}

func (f *fakeGenerator) Generate(ctx context.Context, req generator.Request) (*generator.Bundle, error) {
	if f.block != nil {
		<-f.block
	}

	if f.err != nil {
		return nil, f.err
	}

	return f.bundle, nil
}

func testBundle() *generator.Bundle {
	return &generator.Bundle{
		Deck: &deck.Deck{
			Topic: "supply and demand",

			Slides: []deck.Slide{
				{
					Kind:            deck.KindIntro,
					Title:           "Intro",
					Content:         "One. Two. Three.",
					NarrationScript: "Welcome.",
				},
				{
					Kind:            deck.KindDeepDive,
					Title:           "Curves",
					Content:         "One. Two. Three.",
					NarrationScript: "As you can see in the diagram.",
					VisualPrompt:    "diagram of supply curve",
				},
			},
		},

		Images: map[int]generator.Asset{
			1: {Content: []byte("png-bytes"), ContentType: "image/png"},
		},

		Audio: map[int]generator.Asset{
			0: {Content: []byte{0x01, 0x02, 0x03, 0x04}, ContentType: provider.ContentTypePCM},
		},
	}
}

func testServer(t *testing.T, g lessonGenerator) *httptest.Server {
	t.Helper()

	h := &Handler{
		generator: g,
		sessions:  session.NewStore(),
	}

	r := chi.NewRouter()
	r.Route("/v1", h.Attach)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return server
}

func createLesson(t *testing.T, server *httptest.Server, body string) LessonResponse {
	t.Helper()

	resp, err := http.Post(server.URL+"/v1/lessons", "application/json", strings.NewReader(body))
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var result LessonResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	return result
}

func getLesson(t *testing.T, server *httptest.Server, id string) LessonResponse {
	t.Helper()

	resp, err := http.Get(server.URL + "/v1/lessons/" + id)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result LessonResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	return result
}

func waitForState(t *testing.T, server *httptest.Server, id string, state session.State) LessonResponse {
	t.Helper()

	var result LessonResponse

	require.Eventually(t, func() bool {
		result = getLesson(t, server, id)
		return result.State == state
	}, 2*time.Second, 10*time.Millisecond)

	return result
}

func TestLessonCreateValidation(t *testing.T) {
	server := testServer(t, &fakeGenerator{bundle: testBundle()})

	tests := []struct {
		name string
		body string
	}{
		{name: "empty topic", body: `{"topic": "  "}`},
		{name: "invalid accent", body: `{"topic": "t", "accent": "martian"}`},
		{name: "invalid quality", body: `{"topic": "t", "quality": "ultra"}`},
		{name: "malformed body", body: `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(server.URL+"/v1/lessons", "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)

			defer resp.Body.Close()

			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestLessonFlow(t *testing.T) {
	server := testServer(t, &fakeGenerator{bundle: testBundle()})

	created := createLesson(t, server, `{"topic": "supply and demand"}`)
	require.NotEmpty(t, created.ID)

	lesson := waitForState(t, server, created.ID, session.StateReady)

	require.Len(t, lesson.Deck, 2)

	require.Empty(t, lesson.Deck[0].ImageURL)
	require.NotEmpty(t, lesson.Deck[0].AudioURL)
	require.NotEmpty(t, lesson.Deck[1].ImageURL)
	require.Empty(t, lesson.Deck[1].AudioURL)

	resp, err := http.Get(server.URL + lesson.Deck[1].ImageURL)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "image/png", resp.Header.Get("Content-Type"))
}

func TestLessonAudioContainer(t *testing.T) {
	server := testServer(t, &fakeGenerator{bundle: testBundle()})

	created := createLesson(t, server, `{"topic": "t"}`)
	lesson := waitForState(t, server, created.ID, session.StateReady)

	resp, err := http.Get(server.URL + lesson.Deck[0].AudioURL)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "audio/wav", resp.Header.Get("Content-Type"))

	data := make([]byte, 4)
	_, err = resp.Body.Read(data)
	require.NoError(t, err)
	require.Equal(t, "RIFF", string(data))
}

func TestLessonMissingAsset(t *testing.T) {
	server := testServer(t, &fakeGenerator{bundle: testBundle()})

	created := createLesson(t, server, `{"topic": "t"}`)
	waitForState(t, server, created.ID, session.StateReady)

	for _, path := range []string{
		fmt.Sprintf("/v1/lessons/%s/slides/0/image", created.ID),
		fmt.Sprintf("/v1/lessons/%s/slides/1/audio", created.ID),
		fmt.Sprintf("/v1/lessons/%s/slides/99/image", created.ID),
		"/v1/lessons/missing/slides/0/image",
	} {
		resp, err := http.Get(server.URL + path)
		require.NoError(t, err)

		resp.Body.Close()

		require.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}
}

func TestLessonGenericFailure(t *testing.T) {
	server := testServer(t, &fakeGenerator{err: errors.New("backend exploded")})

	created := createLesson(t, server, `{"topic": "t"}`)
	lesson := waitForState(t, server, created.ID, session.StateError)

	require.Equal(t, session.ReasonGeneric, lesson.Reason)
}

func TestLessonCredentialsFailure(t *testing.T) {
	server := testServer(t, &fakeGenerator{err: fmt.Errorf("generate deck: %w", generator.ErrCredentials)})

	created := createLesson(t, server, `{"topic": "t"}`)
	lesson := waitForState(t, server, created.ID, session.StateError)

	require.Equal(t, session.ReasonCredentials, lesson.Reason)
}

func TestLessonResubmit(t *testing.T) {
	server := testServer(t, &fakeGenerator{bundle: testBundle()})

	created := createLesson(t, server, `{"topic": "first topic"}`)
	waitForState(t, server, created.ID, session.StateReady)

	resp, err := http.Post(server.URL+"/v1/lessons/"+created.ID, "application/json", strings.NewReader(`{"topic": "second topic"}`))
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	lesson := waitForState(t, server, created.ID, session.StateReady)
	require.Equal(t, "second topic", lesson.Topic)
}

func TestLessonResubmitConflict(t *testing.T) {
	block := make(chan struct{})

	server := testServer(t, &fakeGenerator{bundle: testBundle(), block: block})

	created := createLesson(t, server, `{"topic": "t"}`)

	resp, err := http.Post(server.URL+"/v1/lessons/"+created.ID, "application/json", strings.NewReader(`{"topic": "another"}`))
	require.NoError(t, err)

	resp.Body.Close()

	require.Equal(t, http.StatusConflict, resp.StatusCode)

	// The rejected submit must not disturb the active run.
	require.Equal(t, session.StateLoading, getLesson(t, server, created.ID).State)

	close(block)

	lesson := waitForState(t, server, created.ID, session.StateReady)
	require.Equal(t, "t", lesson.Topic)
}

func TestLessonResubmitUnknown(t *testing.T) {
	server := testServer(t, &fakeGenerator{bundle: testBundle()})

	resp, err := http.Post(server.URL+"/v1/lessons/missing", "application/json", strings.NewReader(`{"topic": "t"}`))
	require.NoError(t, err)

	resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLessonAudioDuration(t *testing.T) {
	bundle := testBundle()

	// One second of raw samples on slide 0, an already containerized
	// asset on slide 1.
	bundle.Audio[0] = generator.Asset{Content: make([]byte, 48000), ContentType: provider.ContentTypePCM}
	bundle.Audio[1] = generator.Asset{Content: []byte("mp3-bytes"), ContentType: "audio/mpeg"}

	server := testServer(t, &fakeGenerator{bundle: bundle})

	created := createLesson(t, server, `{"topic": "t"}`)
	lesson := waitForState(t, server, created.ID, session.StateReady)

	require.InDelta(t, 1.0, lesson.Deck[0].AudioDuration, 0.001)

	require.NotEmpty(t, lesson.Deck[1].AudioURL)
	require.Zero(t, lesson.Deck[1].AudioDuration)
}

func TestLessonDelete(t *testing.T) {
	server := testServer(t, &fakeGenerator{bundle: testBundle()})

	created := createLesson(t, server, `{"topic": "t"}`)
	waitForState(t, server, created.ID, session.StateReady)

	req, err := http.NewRequest("DELETE", server.URL+"/v1/lessons/"+created.ID, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	resp.Body.Close()

	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	getResp, err := http.Get(server.URL + "/v1/lessons/" + created.ID)
	require.NoError(t, err)

	getResp.Body.Close()

	require.Equal(t, http.StatusNotFound, getResp.StatusCode)
}
