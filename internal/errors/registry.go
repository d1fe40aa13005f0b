package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// Well-known error codes.
const (
	CodeConfigNotFound   = "E101"
	CodeConfigInvalid    = "E102"
	CodeUnsupportedShape = "E301"
	CodeBindingTornDown  = "E302"
	CodeBindingNotActive = "E303"
	CodeFrameTooLarge    = "E401"
	CodeFrameMalformed   = "E402"
)

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Config Errors (E101-E199)
	// ============================================

	CodeConfigNotFound: {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No classbind.json was found in the working directory or any parent directory.",
		DocURL:   "https://vango.dev/docs/classbind/errors/E101",
	},
	CodeConfigInvalid: {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "classbind.json could not be parsed or contains invalid values.",
		DocURL:   "https://vango.dev/docs/classbind/errors/E102",
	},

	// ============================================
	// Binding Errors (E301-E399)
	// ============================================

	CodeUnsupportedShape: {
		Category: CategoryValidation,
		Message:  "Unsupported class spec shape",
		Detail:   "The class spec is neither list-like nor map-like, so no differ can track it. Supply a string, a sequence, a set, or a name-to-bool mapping.",
		DocURL:   "https://vango.dev/docs/classbind/errors/E301",
	},
	CodeBindingTornDown: {
		Category: CategoryRuntime,
		Message:  "Operation on a torn-down binding",
		Detail:   "Teardown is terminal. Create a new binding instead of reusing one after Teardown.",
		DocURL:   "https://vango.dev/docs/classbind/errors/E302",
	},
	CodeBindingNotActive: {
		Category: CategoryRuntime,
		Message:  "Binding has no render target",
		Detail:   "A binding must be constructed with a render target and element ID before specs can be applied.",
		DocURL:   "https://vango.dev/docs/classbind/errors/E303",
	},

	// ============================================
	// Protocol Errors (E401-E499)
	// ============================================

	CodeFrameTooLarge: {
		Category: CategoryProtocol,
		Message:  "Patch frame exceeds limits",
		Detail:   "The encoded frame exceeds the configured patch count or class name length limits.",
		DocURL:   "https://vango.dev/docs/classbind/errors/E401",
	},
	CodeFrameMalformed: {
		Category: CategoryProtocol,
		Message:  "Malformed patch frame",
		Detail:   "The frame payload could not be decoded as msgpack or fails structural validation.",
		DocURL:   "https://vango.dev/docs/classbind/errors/E402",
	},
}

// Lookup returns the template registered for a code, if any.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
