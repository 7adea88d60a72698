package storage

import "errors"

var ErrCodeNotFound = errors.New("item not found in storage")
var ErrItemWithIDAlreadyExists = errors.New("item with this id already exists")
var ErrAlreadyVoted = errors.New("a ballot already exists for this voter")
var ErrSubmissionFailed = errors.New("ballot submission failed")
