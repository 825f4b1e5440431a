package skitter

import (
	"errors"
	"fmt"
)

// ErrPrecondition is matched by every error reporting a world that does not
// hold exactly one window, camera, and enemy.
var ErrPrecondition = errors.New("skitter: world precondition violated")

// CardinalityError reports how many entities of a kind were found where
// exactly one was required.
type CardinalityError struct {
	Kind  string
	Count int
}

func (e *CardinalityError) Error() string {
	return fmt.Sprintf("skitter: want exactly one %s, found %d", e.Kind, e.Count)
}

// Is makes errors.Is(err, ErrPrecondition) match.
func (e *CardinalityError) Is(target error) bool {
	return target == ErrPrecondition
}
