package sourcing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"

	"github.com/spigell/candidate-scout/internal/analyzer"
	"github.com/spigell/candidate-scout/internal/candidate"
	"github.com/spigell/candidate-scout/internal/resume"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []Event
}

func (n *recordingNotifier) Notify(e Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, e)
}

func (n *recordingNotifier) all() []Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Event(nil), n.events...)
}

func newTestSearcher(t *testing.T, handler http.Handler) (*Searcher, *recordingNotifier) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := analyzer.New(zap.NewNop(), analyzer.Config{
		BaseURL: server.URL,
		APIKey:  "test-key",
	})

	notifier := &recordingNotifier{}
	searcher := NewSearcher(Deps{Analyzer: client, Logger: zap.NewNop()}, notifier, Config{})

	return searcher, notifier
}

func TestSearchRejectsEmptyInput(t *testing.T) {
	var calls atomic.Int32

	searcher, notifier := newTestSearcher(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		io.WriteString(w, `{}`)
	}))

	_, err := searcher.Search(context.Background(), Input{}, nil)
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}

	if calls.Load() != 0 {
		t.Fatalf("expected no network calls, got %d", calls.Load())
	}

	events := notifier.all()
	if len(events) != 1 {
		t.Fatalf("expected a single validation notification, got %d", len(events))
	}
	if events[0].Err == nil {
		t.Fatalf("expected validation event to carry an error")
	}
}

func TestSearchGithubOnly(t *testing.T) {
	searcher, _ := newTestSearcher(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/github/octocat" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		io.WriteString(w, `{"name": "The Octocat", "avatar_url": "http://x/o.png", "html_url": "http://github.com/octocat"}`)
	}))

	var handedOff *candidate.Record
	_, err := searcher.Search(context.Background(), Input{GithubUsername: "octocat"}, func(rec *candidate.Record) {
		handedOff = rec
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if handedOff == nil {
		t.Fatalf("expected handoff to be called")
	}
	if handedOff.Name != "The Octocat" {
		t.Fatalf("unexpected name: %q", handedOff.Name)
	}
	if handedOff.AvatarURL != "http://x/o.png" {
		t.Fatalf("unexpected avatar: %q", handedOff.AvatarURL)
	}
	if handedOff.GithubProfileURL != "http://github.com/octocat" {
		t.Fatalf("unexpected profile url: %q", handedOff.GithubProfileURL)
	}
	if len(handedOff.Skills) != 0 {
		t.Fatalf("expected empty skills, got %v", handedOff.Skills)
	}
	if handedOff.MatchScore != 0 {
		t.Fatalf("expected zero match score, got %v", handedOff.MatchScore)
	}
}

func TestSearchGithubAvatarBeatsInstagram(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/github/", func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `{"name": "The Octocat", "avatar_url": "http://x/github.png"}`)
	})
	mux.HandleFunc("/instagram/", func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `{"username": "octo", "profile_pic_url": "http://x/insta.png"}`)
	})

	searcher, _ := newTestSearcher(t, mux)

	var handedOff *candidate.Record
	_, err := searcher.Search(context.Background(), Input{
		GithubUsername:  "octocat",
		InstagramHandle: "octo",
	}, func(rec *candidate.Record) { handedOff = rec })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if handedOff.AvatarURL != "http://x/github.png" {
		t.Fatalf("github avatar must win, got %q", handedOff.AvatarURL)
	}
	if handedOff.InstagramHandle != "octo" {
		t.Fatalf("expected instagram handle to be set, got %q", handedOff.InstagramHandle)
	}
}

func TestSearchInstagramAvatarUsedWithoutGithub(t *testing.T) {
	searcher, _ := newTestSearcher(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `{"username": "octo", "profile_pic_url": "http://x/insta.png"}`)
	}))

	var handedOff *candidate.Record
	_, err := searcher.Search(context.Background(), Input{InstagramHandle: "octo"}, func(rec *candidate.Record) {
		handedOff = rec
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if handedOff.AvatarURL != "http://x/insta.png" {
		t.Fatalf("expected instagram avatar, got %q", handedOff.AvatarURL)
	}
}

func TestSearchBranchFailureIsIsolated(t *testing.T) {
	var resumeUploads atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/github/", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"detail": "github is down"}`, http.StatusBadGateway)
	})
	mux.HandleFunc("/portfolio", func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `{"title": "My Work"}`)
	})
	mux.HandleFunc("/instagram/", func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `{"username": "octo"}`)
	})
	mux.HandleFunc("/resume/upload", func(w http.ResponseWriter, _ *http.Request) {
		resumeUploads.Add(1)
		io.WriteString(w, `{"skills": ["Go"]}`)
	})

	searcher, notifier := newTestSearcher(t, mux)

	var handoffs int
	var handedOff *candidate.Record
	findings, err := searcher.Search(context.Background(), Input{
		GithubUsername:  "octocat",
		PortfolioURL:    "https://me.dev",
		InstagramHandle: "octo",
		Resume:          &resume.File{Name: "cv.pdf", Content: []byte("%PDF-1.4")},
	}, func(rec *candidate.Record) {
		handoffs++
		handedOff = rec
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if handoffs != 1 {
		t.Fatalf("expected exactly one handoff, got %d", handoffs)
	}
	if resumeUploads.Load() != 1 {
		t.Fatalf("expected resume upload despite github failure, got %d", resumeUploads.Load())
	}

	// github failed, its fields keep their defaults
	if handedOff.Name != candidate.DefaultName {
		t.Fatalf("expected default name, got %q", handedOff.Name)
	}
	if handedOff.GithubProfileURL != "" {
		t.Fatalf("expected empty github url, got %q", handedOff.GithubProfileURL)
	}

	// the siblings still ran and succeeded
	if handedOff.PortfolioURL != "https://me.dev" {
		t.Fatalf("expected portfolio url, got %q", handedOff.PortfolioURL)
	}
	if handedOff.InstagramHandle != "octo" {
		t.Fatalf("expected instagram handle, got %q", handedOff.InstagramHandle)
	}
	if findings.Resume == nil || len(findings.Resume.Skills) != 1 {
		t.Fatalf("expected resume findings, got %#v", findings.Resume)
	}

	var githubFailure bool
	for _, e := range notifier.all() {
		if e.Source == SourceGithub && e.Err != nil && strings.Contains(e.Message, "github is down") {
			githubFailure = true
		}
	}
	if !githubFailure {
		t.Fatalf("expected a github failure notification, got %v", notifier.all())
	}
}

func TestSearchNotFoundDetailSurfaces(t *testing.T) {
	searcher, notifier := newTestSearcher(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"detail": "not found"}`, http.StatusNotFound)
	}))

	var handedOff *candidate.Record
	_, err := searcher.Search(context.Background(), Input{InstagramHandle: "abc"}, func(rec *candidate.Record) {
		handedOff = rec
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(handedOff, candidate.NewRecord()) {
		t.Fatalf("expected default record, got %+v", handedOff)
	}

	var failures int
	for _, e := range notifier.all() {
		if e.Err != nil {
			failures++
			if !strings.Contains(e.Message, "not found") {
				t.Fatalf("expected detail in message, got %q", e.Message)
			}
		}
	}
	if failures != 1 {
		t.Fatalf("expected one failure notification, got %d", failures)
	}
}

func TestSearchBusyGuard(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var once sync.Once

	searcher, _ := newTestSearcher(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		once.Do(func() { close(started) })
		<-release
		io.WriteString(w, `{}`)
	}))

	done := make(chan error, 1)
	go func() {
		_, err := searcher.Search(context.Background(), Input{GithubUsername: "octocat"}, nil)
		done <- err
	}()

	<-started

	_, err := searcher.Search(context.Background(), Input{GithubUsername: "octocat"}, nil)
	if !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first search failed: %v", err)
	}

	// the guard clears once the first search finishes
	if _, err := searcher.Search(context.Background(), Input{GithubUsername: "octocat"}, nil); err != nil {
		t.Fatalf("expected searcher to be reusable, got %v", err)
	}
}

func TestSearchRecoversFromPanic(t *testing.T) {
	// A nil analyzer makes the first source blow up inside the run.
	notifier := &recordingNotifier{}
	searcher := NewSearcher(Deps{Analyzer: nil, Logger: zap.NewNop()}, notifier, Config{})

	var handoffs int
	_, err := searcher.Search(context.Background(), Input{GithubUsername: "octocat"}, func(*candidate.Record) {
		handoffs++
	})
	if err == nil {
		t.Fatalf("expected an error from the aborted search")
	}

	if handoffs != 0 {
		t.Fatalf("expected no handoff after an aborted search, got %d", handoffs)
	}

	var generic bool
	for _, e := range notifier.all() {
		if e.Source == "" && e.Err != nil {
			generic = true
			if strings.Contains(e.Message, "octocat") {
				t.Fatalf("expected a generic message, got %q", e.Message)
			}
		}
	}
	if !generic {
		t.Fatalf("expected a generic failure notification, got %v", notifier.all())
	}

	// The busy flag cleared despite the panic.
	if _, err := searcher.Search(context.Background(), Input{}, nil); !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected ErrNoInput from the follow-up search, got %v", err)
	}
}

func TestSearchHandoffOnTotalFailure(t *testing.T) {
	searcher, _ := newTestSearcher(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"detail": "nope"}`, http.StatusInternalServerError)
	}))

	var handedOff *candidate.Record
	_, err := searcher.Search(context.Background(), Input{
		GithubUsername: "octocat",
		PortfolioURL:   "https://me.dev",
	}, func(rec *candidate.Record) { handedOff = rec })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if handedOff == nil {
		t.Fatalf("expected handoff despite total failure")
	}
	if handedOff.Name != candidate.DefaultName {
		t.Fatalf("expected default-valued record, got %+v", handedOff)
	}
}
