package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Configuration Errors (E100-E199)
	// ============================================

	"E100": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "The preact.json or preact.yaml file could not be parsed.",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Unknown log level",
		Detail:   "log.level must be one of debug, info, warn or error.",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Unknown log format",
		Detail:   "log.format must be text or json.",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Invalid metrics namespace",
		Detail:   "metrics.namespace may only contain letters, digits and underscores, and must not start with a digit.",
	},
	"E104": {
		Category: CategoryConfig,
		Message:  "Unsupported configuration file type",
		Detail:   "Configuration files must end in .json, .yaml or .yml.",
	},

	// ============================================
	// Markup Errors (E200-E299)
	// ============================================

	"E200": {
		Category: CategoryMarkup,
		Message:  "Malformed document",
		Detail:   "The document is not valid JSON or YAML.",
	},
	"E201": {
		Category: CategoryMarkup,
		Message:  "Element has no tag or component",
		Detail:   `An element object needs a "tag" string or a "component" name.`,
	},
	"E202": {
		Category: CategoryMarkup,
		Message:  "Element has both tag and component",
		Detail:   `An element object may name either a "tag" or a "component", not both.`,
	},
	"E203": {
		Category: CategoryMarkup,
		Message:  "Unknown component",
		Detail:   "The component name is not registered with the decoder.",
	},
	"E204": {
		Category: CategoryMarkup,
		Message:  "Invalid attributes",
		Detail:   `"attrs" must be an object with string keys.`,
	},
	"E205": {
		Category: CategoryMarkup,
		Message:  "Document root is not an element",
		Detail:   "The top-level value of a document must be an element object.",
	},
	"E206": {
		Category: CategoryMarkup,
		Message:  "Document nested too deeply",
		Detail:   "The document exceeds the maximum element nesting depth.",
	},
	"E207": {
		Category: CategoryMarkup,
		Message:  "Unknown element field",
		Detail:   `Element objects only accept "tag", "component", "attrs", "key" and "children".`,
	},

	// ============================================
	// CLI Errors (E300-E399)
	// ============================================

	"E300": {
		Category: CategoryCLI,
		Message:  "Cannot read input",
		Detail:   "The input file could not be opened or read.",
	},
	"E301": {
		Category: CategoryCLI,
		Message:  "Unknown input format",
		Detail:   "Use --format json or --format yaml, or give the file a .json, .yaml or .yml extension.",
	},
	"E302": {
		Category: CategoryCLI,
		Message:  "Cannot write output",
		Detail:   "The result could not be written.",
	},
	"E303": {
		Category: CategoryCLI,
		Message:  "Unknown output format",
		Detail:   "Use --output json or --output yaml.",
	},
}

// GetAllCodes returns all registered error codes in sorted order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
