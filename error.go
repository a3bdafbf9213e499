package bounded

import "errors"

var (
	ErrAlreadyLocked   = errors.New("already locked")
	ErrAlreadyUnlocked = errors.New("already unlocked")
	ErrBadConstruction = errors.New("bad construction")
	ErrBadCredential   = errors.New("bad credential")
	ErrLocked          = errors.New("locked")
	ErrNotValid        = errors.New("invalid")
)
