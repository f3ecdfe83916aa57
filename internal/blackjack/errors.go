package blackjack

import "errors"

var (
	ErrInvalidBet        = errors.New("bet must be a positive amount")
	ErrInsufficientFunds = errors.New("insufficient funds for bet")
	ErrAlreadyInGame     = errors.New("player already has an active game")
	ErrDeckExhausted     = errors.New("deck exhausted")
	ErrNotYourTurn       = errors.New("not your turn")
	ErrNotParticipant    = errors.New("not a participant in this game")
	ErrGameNotFound      = errors.New("game not found")
	ErrGameFinished      = errors.New("game already finished")
	ErrTableTaken        = errors.New("table key already registered")
	ErrSelfChallenge     = errors.New("cannot challenge yourself")
)
