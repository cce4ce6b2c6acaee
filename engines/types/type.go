package types

import (
	"errors"
	"fmt"
	"strings"
)

// Type identifies the scripting dialect an engine accepts. The dialect is
// resolved once, at engine construction, rather than looked up by name on
// every compile call.
type Type string

const (
	// JavaScript engine: https://github.com/dop251/goja
	JavaScript Type = "javascript"

	// Unsupported is returned by Parse when the requested dialect is not registered.
	Unsupported Type = "unsupported"
)

// ErrInvalidEngineType indicates the requested scripting dialect is not
// registered with this module, so no engine can be initialized for it.
var ErrInvalidEngineType = errors.New("invalid engine type")

func (t Type) String() string {
	return string(t)
}

// Parse resolves a dialect name into a Type. Accepts the canonical name and
// the common aliases "js" and "jxa" (JavaScript for Automation).
func Parse(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "javascript", "js", "jxa":
		return JavaScript, nil
	default:
		return Unsupported, fmt.Errorf("%w: %q", ErrInvalidEngineType, name)
	}
}
