package bounded

type lockState int

const (
	unlocked lockState = iota
	lockedTransient
	lockedPermanent
)

// Lock places a transient lock on the Value,
// blocking [*Value.SetState] until the returned Credential releases it
// through [*Value.Unlock].
//
// Each successful Lock issues a fresh Credential; only that exact
// Credential releases the lock.
// Locking a Value already locked either way fails with ErrAlreadyLocked;
// in Permissive Mode the zero-value Credential returns instead.
func (v *Value[T]) Lock() (Credential, error) {
	if v.lock != unlocked {
		return Credential{}, v.failed(ErrAlreadyLocked)
	}

	v.lock = lockedTransient
	v.cred = newCredential()
	v.debugf("transient lock placed")

	return v.cred, nil
}

// PermaLock locks the Value for the remainder of its lifetime.
//
// No Credential is issued and no sequence of calls releases the lock.
// PermaLock on a Value already locked either way fails with
// ErrAlreadyLocked; in Permissive Mode false returns instead.
func (v *Value[T]) PermaLock() (bool, error) {
	if v.lock != unlocked {
		return false, v.failed(ErrAlreadyLocked)
	}

	v.lock = lockedPermanent
	v.debugf("permanent lock placed")

	return true, nil
}

// Unlock releases a transient lock when cred matches the Credential
// issued by the [*Value.Lock] call that placed it,
// discarding the stored Credential on success.
//
// Unlocking an unlocked Value fails with ErrAlreadyUnlocked.
// A permanent lock, which no Credential can match, and a mismatched cred
// both fail with ErrBadCredential.
// In Permissive Mode every failure returns false and a nil error.
func (v *Value[T]) Unlock(cred Credential) (bool, error) {
	switch {
	case v.lock == unlocked:
		return false, v.failed(ErrAlreadyUnlocked)
	case v.lock == lockedPermanent, cred != v.cred:
		return false, v.failed(ErrBadCredential)
	}

	v.lock = unlocked
	v.cred = Credential{}
	v.debugf("transient lock released")

	return true, nil
}

// IsLocked asserts whether any lock, transient or permanent, is in place.
func (v *Value[T]) IsLocked() bool { return v.lock != unlocked }
