package ecs

// ErrorCode enumerates the failure kinds reported by the Manager. Every
// fallible operation also signals failure through its return value; the
// code is delivered to the error callback, if one is installed.
type ErrorCode uint8

const (
	ErrNone ErrorCode = iota
	// ErrInvalidPoolName reports an empty pool name, or the reserved
	// DefaultPoolName used where it is disallowed.
	ErrInvalidPoolName
	// ErrDuplicatePoolName reports a pool name that is already installed.
	ErrDuplicatePoolName
	// ErrPoolNotFound reports an unknown or detached pool name.
	ErrPoolNotFound
	// ErrPoolFull reports a pool with no free slot left.
	ErrPoolFull
	// ErrInvalidEntityID reports a sentinel or otherwise unusable entity id.
	ErrInvalidEntityID
	// ErrEntityNotFound reports an id that resolved in no pool.
	ErrEntityNotFound
	// ErrDuplicateSystem reports a system type or priority already in use.
	ErrDuplicateSystem
	// ErrComponentTypeUnknown reports a filter addition for a component
	// type that has never been registered.
	ErrComponentTypeUnknown
	// ErrMaxComponentTypesReached reports an exhausted signature width.
	ErrMaxComponentTypesReached
)

// ErrorCallback receives the error kind and a human-readable message.
// Callbacks are invoked synchronously from the failing operation.
type ErrorCallback func(code ErrorCode, msg string)

var errorMessages = map[ErrorCode]string{
	ErrInvalidPoolName:          "ecs: pool name can't be empty or \"" + DefaultPoolName + "\"",
	ErrDuplicatePoolName:        "ecs: a pool with the same name already exists",
	ErrPoolNotFound:             "ecs: failed to find pool",
	ErrPoolFull:                 "ecs: pool has no free slot",
	ErrInvalidEntityID:          "ecs: invalid entity id",
	ErrEntityNotFound:           "ecs: failed to find entity",
	ErrDuplicateSystem:          "ecs: system type or priority already registered",
	ErrComponentTypeUnknown:     "ecs: component type has never been registered",
	ErrMaxComponentTypesReached: "ecs: maximum number of component types reached",
}

// String returns the message associated with the code.
func (c ErrorCode) String() string {
	if msg, ok := errorMessages[c]; ok {
		return msg
	}
	return "ecs: no error"
}

// sendError invokes the installed callback, if any. Absent a callback,
// failures are visible only through return values.
func (m *Manager) sendError(code ErrorCode) {
	if m.errorCallback != nil && code != ErrNone {
		m.errorCallback(code, code.String())
	}
}

// SetErrorCallback installs cb as the receiver of error reports. A nil cb
// silences reporting.
func (m *Manager) SetErrorCallback(cb ErrorCallback) {
	m.errorCallback = cb
}
