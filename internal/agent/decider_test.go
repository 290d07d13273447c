package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"dilemma/internal/game"
	"dilemma/internal/testutil"
)

// scriptedReply is one canned chat client response.
type scriptedReply struct {
	text string
	err  error
}

// fakeChatClient replays replies in order and records prompts.
type fakeChatClient struct {
	replies []scriptedReply
	prompts []string
}

func (c *fakeChatClient) Complete(_ context.Context, req ChatRequest) (string, error) {
	c.prompts = append(c.prompts, req.Prompt)
	if len(c.replies) == 0 {
		return "", errors.New("no scripted reply")
	}
	reply := c.replies[0]
	c.replies = c.replies[1:]
	return reply.text, reply.err
}

func newTestDecider(client ChatClient, sleeper *testutil.Sleeper) *ModelDecider {
	decider := NewModelDecider(client, nil)
	decider.Retry = RetryPolicy{MaxAttempts: 3, Delay: 2 * time.Second, Sleep: sleeper.Sleep}
	return decider
}

var throttled = &APIError{StatusCode: 429, Message: "slow down"}

// TestDecideParsesKeywords verifies normalized replies.
func TestDecideParsesKeywords(t *testing.T) {
	client := &fakeChatClient{replies: []scriptedReply{{text: "I will DEFECT"}, {text: "cooperate!"}}}
	decider := newTestDecider(client, &testutil.Sleeper{})
	first, err := decider.Decide(context.Background(), "p1")
	if err != nil || first != game.Defect {
		t.Fatalf("first decision = %v, %v", first, err)
	}
	second, err := decider.Decide(context.Background(), "p2")
	if err != nil || second != game.Cooperate {
		t.Fatalf("second decision = %v, %v", second, err)
	}
	if len(client.prompts) != 2 || client.prompts[0] != "p1" {
		t.Fatalf("unexpected prompts %v", client.prompts)
	}
}

// TestDecideThrottledTwiceThenAmbiguous verifies retries end in the default move.
func TestDecideThrottledTwiceThenAmbiguous(t *testing.T) {
	client := &fakeChatClient{replies: []scriptedReply{{err: throttled}, {err: throttled}, {text: "hmm, let me think"}}}
	sleeper := &testutil.Sleeper{}
	move, err := newTestDecider(client, sleeper).Decide(context.Background(), "p")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if move != game.Cooperate {
		t.Fatalf("expected Cooperate, got %s", move)
	}
	if len(client.prompts) != 3 {
		t.Fatalf("expected 3 attempts, got %d", len(client.prompts))
	}
	if len(sleeper.Delays()) != 2 || sleeper.Delays()[0] != 2*time.Second {
		t.Fatalf("unexpected delays %v", sleeper.Delays())
	}
}

// TestDecideThrottleExhaustedDefaultsToCooperate verifies the bounded retry fallback.
func TestDecideThrottleExhaustedDefaultsToCooperate(t *testing.T) {
	client := &fakeChatClient{replies: []scriptedReply{{err: throttled}, {err: throttled}, {err: throttled}, {text: "defect"}}}
	sleeper := &testutil.Sleeper{}
	move, err := newTestDecider(client, sleeper).Decide(context.Background(), "p")
	if err != nil || move != game.Cooperate {
		t.Fatalf("expected Cooperate without error, got %v, %v", move, err)
	}
	if len(client.prompts) != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", len(client.prompts))
	}
	if len(sleeper.Delays()) != 2 {
		t.Fatalf("expected 2 inter-attempt delays, got %d", len(sleeper.Delays()))
	}
}

// TestDecideInvalidCredentialsIsFatal verifies credential failures are not retried.
func TestDecideInvalidCredentialsIsFatal(t *testing.T) {
	client := &fakeChatClient{replies: []scriptedReply{{err: &APIError{StatusCode: 401}}}}
	sleeper := &testutil.Sleeper{}
	_, err := newTestDecider(client, sleeper).Decide(context.Background(), "p")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if len(client.prompts) != 1 || len(sleeper.Delays()) != 0 {
		t.Fatalf("expected a single attempt without sleeping")
	}
}

// TestDecideOtherErrorIsUndecided verifies transient errors abort the decision.
func TestDecideOtherErrorIsUndecided(t *testing.T) {
	client := &fakeChatClient{replies: []scriptedReply{{err: errors.New("connection reset")}}}
	_, err := newTestDecider(client, &testutil.Sleeper{}).Decide(context.Background(), "p")
	if !errors.Is(err, ErrUndecided) {
		t.Fatalf("expected undecided, got %v", err)
	}
	if errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("transient error must not look like a credential failure")
	}
}

// TestDecideCancelledDuringBackoff verifies cancellation leaves the prompt undecided.
func TestDecideCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	client := &fakeChatClient{replies: []scriptedReply{{err: throttled}}}
	_, err := newTestDecider(client, &testutil.Sleeper{}).Decide(ctx, "p")
	if !errors.Is(err, ErrUndecided) {
		t.Fatalf("expected undecided after cancellation, got %v", err)
	}
}

// TestDecideWithoutClient verifies a zero decider fails cleanly.
func TestDecideWithoutClient(t *testing.T) {
	var decider *ModelDecider
	if _, err := decider.Decide(context.Background(), "p"); !errors.Is(err, ErrUndecided) {
		t.Fatalf("expected undecided, got %v", err)
	}
}

// TestNormalizeMove verifies keyword matching and the ambiguous default.
func TestNormalizeMove(t *testing.T) {
	cases := []struct {
		text string
		want game.Move
		ok   bool
	}{
		{"Cooperate", game.Cooperate, true},
		{"  defect  ", game.Defect, true},
		{"I choose to Defect.", game.Defect, true},
		{"cooperate or defect? cooperate", game.Cooperate, true},
		{"", game.Cooperate, false},
		{"pass", game.Cooperate, false},
	}
	for _, tc := range cases {
		got, ok := NormalizeMove(tc.text)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("NormalizeMove(%q) = %v, %v; want %v, %v", tc.text, got, ok, tc.want, tc.ok)
		}
	}
}

// TestSleepContextHonoursCancellation verifies the default sleeper stops early.
func TestSleepContextHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	if err := SleepContext(ctx, time.Minute); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatalf("sleep did not stop on cancellation")
	}
	if err := SleepContext(context.Background(), 0); err != nil {
		t.Fatalf("zero sleep: %v", err)
	}
}
