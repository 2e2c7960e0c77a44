package apperror

import "errors"

var (
	ErrMalformedBoard  = errors.New("malformed board")
	ErrGameAlreadyOver = errors.New("game is already over")
	ErrInvalidState    = errors.New("board has no move to compute")

	ErrNoMoveSubmitted        = errors.New("no new move submitted")
	ErrMultipleMovesSubmitted = errors.New("more than one new move submitted")
	ErrPriorMoveAltered       = errors.New("a prior move was altered")
	ErrWrongMover             = errors.New("the new move must be a human move")
)

// IsValidation reports whether err is one of the turn-discipline violations
// a client can cause by submitting a bad snapshot.
func IsValidation(err error) bool {
	return errors.Is(err, ErrNoMoveSubmitted) ||
		errors.Is(err, ErrMultipleMovesSubmitted) ||
		errors.Is(err, ErrPriorMoveAltered) ||
		errors.Is(err, ErrWrongMover)
}
