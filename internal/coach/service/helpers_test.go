package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"frugal-friend/internal/coach/repository"
	"frugal-friend/internal/entity"
)

var errStorageDown = errors.New("storage down")

type stubGenerator struct {
	text  string
	err   error
	delay time.Duration
	calls atomic.Int32
	hook  func(ctx context.Context)
}

func (g *stubGenerator) GenerateText(ctx context.Context, _ string) (string, error) {
	g.calls.Add(1)
	if g.hook != nil {
		g.hook(ctx)
	}
	if g.delay > 0 {
		select {
		case <-time.After(g.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return g.text, g.err
}

type fixedPrices map[string]float64

func (p fixedPrices) CurrentPrice(symbol string) float64 {
	if v, ok := p[symbol]; ok {
		return v
	}
	return 100
}

// failingSaves wraps a position repository and fails every Save.
type failingSaves struct {
	repository.PositionRepository
}

func (failingSaves) Save(context.Context, *entity.Position) error {
	return errStorageDown
}

// failingLessons wraps a user repository and fails every CompleteLesson.
type failingLessons struct {
	repository.UserRepository
}

func (failingLessons) CompleteLesson(context.Context, uint, int, int, string) error {
	return errStorageDown
}

// racingLessons bumps the stored progress just before completing, as a
// concurrent writer would.
type racingLessons struct {
	repository.UserRepository
}

func (r racingLessons) CompleteLesson(ctx context.Context, id uint, expected, next int, achievement string) error {
	if err := r.UserRepository.CompleteLesson(ctx, id, expected, next, "other_writer"); err != nil {
		return err
	}
	return r.UserRepository.CompleteLesson(ctx, id, expected, next, achievement)
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages map[int64][]string
	err      error
}

func (n *recordingNotifier) SendMessage(text string) error {
	return n.SendMessageUser(text, 0)
}

func (n *recordingNotifier) SendMessageUser(text string, chatID int64) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.messages == nil {
		n.messages = make(map[int64][]string)
	}
	n.messages[chatID] = append(n.messages[chatID], text)
	return n.err
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
