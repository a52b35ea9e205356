package domain

import "errors"

// ErrMalformedExpression is returned when the logic string cannot be parsed
// into a boolean expression over AND, OR, NOT and question identifiers.
var ErrMalformedExpression = errors.New("malformed expression")

// ErrUnknownQuestion is returned when the expression references a question
// id that is absent from the supplied question catalog.
var ErrUnknownQuestion = errors.New("unknown question")

// ErrEmptyQuestionSet is returned when the expression references variables
// but no questions were supplied at all.
var ErrEmptyQuestionSet = errors.New("no questions supplied")

// ErrResultNotFound is returned by result caches when a key has no entry.
var ErrResultNotFound = errors.New("result not found")
