// Package lock provides keyed mutual exclusion used to serialize
// read-modify-write cycles on a single paper-trading position.
package lock

import (
	"context"
	"fmt"
)

// Unlock releases a lock obtained from a Locker. It must be called exactly once.
type Unlock func()

// Locker acquires an exclusive lock on key, blocking until it is available
// or ctx is done.
type Locker interface {
	Lock(ctx context.Context, key string) (Unlock, error)
}

// PositionKey is the lock key for one user's holding in one symbol.
func PositionKey(userID uint, symbol string) string {
	return fmt.Sprintf("position:%d:%s", userID, symbol)
}

// LessonKey is the lock key for one user's lesson progress.
func LessonKey(userID uint) string {
	return fmt.Sprintf("lesson:%d", userID)
}
