package scene

import "errors"

var (
	ErrNoBodies         = errors.New("scene has fewer than two bodies")
	ErrUnknownShape     = errors.New("unknown shape type")
	ErrDuplicateBody    = errors.New("duplicate body")
	ErrConflictingAngle = errors.New("both angle and angle_deg are set")
	ErrInvalidBody      = errors.New("invalid body")
)
