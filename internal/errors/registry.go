package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Validation Errors (P100-P119)
	// ============================================

	"P100": {
		Category: CategoryValidation,
		Message:  "Pardna record is invalid",
		Detail:   "One or more fields failed validation. Fix the highlighted fields and submit again.",
		DocURL:   "https://pardna.dev/docs/errors/P100",
	},
	"P101": {
		Category: CategoryValidation,
		Message:  "Unknown payment frequency",
		Detail:   "Payment frequency must be one of DAILY, WEEKLY or MONTHLY.",
		DocURL:   "https://pardna.dev/docs/errors/P101",
	},

	// ============================================
	// Config Errors (P120-P139)
	// ============================================

	"P120": {
		Category: CategoryConfig,
		Message:  "Failed to read config file",
		Detail:   "The configuration file could not be read from disk.",
		DocURL:   "https://pardna.dev/docs/errors/P120",
	},
	"P121": {
		Category: CategoryConfig,
		Message:  "Invalid config syntax",
		Detail:   "pardna.json or pardna.yaml contains invalid syntax.",
		DocURL:   "https://pardna.dev/docs/errors/P121",
	},
	"P122": {
		Category: CategoryConfig,
		Message:  "Invalid config value",
		Detail:   "A configuration value is out of range or malformed.",
		DocURL:   "https://pardna.dev/docs/errors/P122",
	},

	// ============================================
	// CLI Errors (P140-P159)
	// ============================================

	"P140": {
		Category: CategoryCLI,
		Message:  "Invalid record file",
		Detail:   "The record file passed with --file could not be parsed.",
		DocURL:   "https://pardna.dev/docs/errors/P140",
	},
	"P141": {
		Category: CategoryCLI,
		Message:  "Prompt aborted",
		Detail:   "The interactive form was interrupted before it was submitted.",
		DocURL:   "https://pardna.dev/docs/errors/P141",
	},

	// ============================================
	// Submission Errors (P200-P299)
	// ============================================

	"P200": {
		Category: CategorySubmission,
		Message:  "Failed to create pardna",
		Detail:   "The create call failed. The form has been kept so the submission can be retried.",
		DocURL:   "https://pardna.dev/docs/errors/P200",
	},
	"P201": {
		Category: CategorySubmission,
		Message:  "GraphQL request returned errors",
		Detail:   "The server processed the request but rejected the mutation.",
		DocURL:   "https://pardna.dev/docs/errors/P201",
	},
	"P202": {
		Category: CategorySubmission,
		Message:  "Unexpected HTTP status",
		Detail:   "The GraphQL endpoint answered with a non-2xx status code.",
		DocURL:   "https://pardna.dev/docs/errors/P202",
	},
	"P203": {
		Category: CategorySubmission,
		Message:  "Submission already in progress",
		Detail:   "A create call is still outstanding for this form.",
		DocURL:   "https://pardna.dev/docs/errors/P203",
	},

	// ============================================
	// Invariant Violations (P300+)
	// ============================================

	"P300": {
		Category: CategoryInvariant,
		Message:  "List index out of range",
		Detail:   "A list operation was called with an index outside [0, length-1]. This is a programming error.",
		DocURL:   "https://pardna.dev/docs/errors/P300",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
