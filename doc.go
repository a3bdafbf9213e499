/*
Package bounded restricts a variable to one of a fixed, enumerated set of
values, with optional transient or permanent locking of the current value.

A [Value] is constructed once with its allowed states and holds the first of
them until [*Value.SetState] transitions it to another member of the set.
[*Value.Lock] gates mutation behind an unforgeable [Credential];
[*Value.PermaLock] freezes the Value for good.

Every fallible operation runs in one of two modes fixed at construction.
The default, [Permissive], never returns an error: a refused operation hands
back a benign sentinel such as the unchanged current state. [Strict] surfaces
each refusal as one of the package's sentinel errors.

	speed, err := bounded.New([]string{"OFF", "LOW", "MID", "HIGH"}, bounded.WithMode(bounded.Strict))
	if err != nil {
		// ...
	}

	speed.State()          // "OFF"
	speed.SetState("MID")  // "MID", nil
	cred, _ := speed.Lock()
	speed.SetState("LOW")  // "MID", ErrLocked
	speed.Unlock(cred)     // true, nil

A Value is not safe for concurrent use.
*/
package bounded
