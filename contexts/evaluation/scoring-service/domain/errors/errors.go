package errors

import "errors"

var (
	ErrInvalidInput       = errors.New("evaluation input is invalid")
	ErrCriterionNotFound  = errors.New("evaluation criterion not found")
	ErrEvaluationNotFound = errors.New("evaluation entry not found")
	ErrScoreOutOfRange    = errors.New("score is outside the criterion range")
	ErrDuplicateOrder     = errors.New("criterion display order already in use")
)
