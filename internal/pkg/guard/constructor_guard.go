package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is provided and the guarded object was not created through its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and commands are only created through
// their designated constructor functions. A zero-value struct fails validation,
// which lets handlers reject commands that bypassed construction.
//
// Example usage:
//
//	var ErrRunCommandIsNotConstructed = errors.New("RunCommand must be created via NewRunCommand")
//
//	type RunCommand struct {
//	    guard guard.ConstructorGuard
//	}
//
//	func NewRunCommand() RunCommand {
//	    return RunCommand{guard: guard.NewConstructorGuard()}
//	}
//
//	func (c *RunCommand) Validate() error {
//	    return c.guard.Validate(ErrRunCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it inside the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
