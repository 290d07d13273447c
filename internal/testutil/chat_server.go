package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// ChatReply scripts one response of a ChatServer. A zero Status means 200.
type ChatReply struct {
	Status  int
	Content string
	Message string
}

// RecordedChat is a chat completion request seen by a ChatServer.
type RecordedChat struct {
	Model         string
	Prompt        string
	MaxTokens     int
	Temperature   float64
	Authorization string
}

// ChatServer fakes an OpenAI-compatible /chat/completions endpoint. Replies
// are served in order and the last one repeats.
type ChatServer struct {
	*httptest.Server
	mu       sync.Mutex
	replies  []ChatReply
	next     int
	requests []RecordedChat
}

// NewChatServer starts a fake chat server closed at test cleanup.
func NewChatServer(t testing.TB, replies ...ChatReply) *ChatServer {
	t.Helper()
	if len(replies) == 0 {
		replies = []ChatReply{{Content: "Cooperate"}}
	}
	server := &ChatServer{replies: replies}
	server.Server = httptest.NewServer(http.HandlerFunc(server.handle))
	t.Cleanup(server.Close)
	return server
}

// BaseURL returns the API base URL to configure clients with.
func (s *ChatServer) BaseURL() string {
	return s.URL + "/v1"
}

// Requests returns the recorded requests in arrival order.
func (s *ChatServer) Requests() []RecordedChat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedChat(nil), s.requests...)
}

func (s *ChatServer) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.URL.Path != "/v1/chat/completions" {
		http.NotFound(w, r)
		return
	}
	var payload struct {
		Model       string  `json:"model"`
		MaxTokens   int     `json:"max_tokens"`
		Temperature float64 `json:"temperature"`
		Messages    []struct {
			Content string `json:"content"`
		} `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	record := RecordedChat{
		Model:         payload.Model,
		MaxTokens:     payload.MaxTokens,
		Temperature:   payload.Temperature,
		Authorization: r.Header.Get("Authorization"),
	}
	if len(payload.Messages) > 0 {
		record.Prompt = payload.Messages[0].Content
	}

	s.mu.Lock()
	s.requests = append(s.requests, record)
	reply := s.replies[min(s.next, len(s.replies)-1)]
	s.next++
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if reply.Status != 0 && reply.Status != http.StatusOK {
		w.WriteHeader(reply.Status)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": map[string]string{"message": reply.Message}})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"choices": []map[string]any{{"message": map[string]string{"role": "assistant", "content": reply.Content}}},
	})
}
