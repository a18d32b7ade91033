package domain

import (
	"errors"
)

// The three experiment arms. Labels are internal only and must never be
// rendered in a participant-facing response.
const (
	VersionBaseline  = "v1"
	VersionRanked    = "v2"
	VersionExplained = "v3"
)

var Versions = []string{VersionBaseline, VersionRanked, VersionExplained}

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageUnauthorized         = "no active study session"
	MessageInternalError        = "something went wrong, please try again later"

	ErrParticipantNotFound = errors.New("participant not found")
	ErrNoActiveSession     = errors.New("no active study session")
)
