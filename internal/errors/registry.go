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
	// Usage Errors (E100-E119)
	// ============================================

	"E101": {
		Category: CategoryUsage,
		Message:  "TabList must be inside Tabs",
		Detail:   "A TabList reads the shared selection index from its Tabs container. Rendering it without one has nothing to read from.",
		DocURL:   "https://vango.dev/docs/ui/errors/E101",
	},
	"E102": {
		Category: CategoryUsage,
		Message:  "Tab must be inside Tabs",
		Detail:   "A Tab sets the shared selection index when clicked and needs the Tabs container that owns it.",
		DocURL:   "https://vango.dev/docs/ui/errors/E102",
	},
	"E103": {
		Category: CategoryUsage,
		Message:  "TabPanels must be inside Tabs",
		Detail:   "TabPanels picks the panel at the active index of its Tabs container.",
		DocURL:   "https://vango.dev/docs/ui/errors/E103",
	},
	"E104": {
		Category: CategoryUsage,
		Message:  "TabPanel must be inside Tabs",
		Detail:   "A TabPanel is only rendered by a TabPanels group inside Tabs.",
		DocURL:   "https://vango.dev/docs/ui/errors/E104",
	},

	// ============================================
	// Config Errors (E120-E149)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "The configuration file could not be read or parsed.",
		DocURL:   "https://vango.dev/docs/ui/errors/E120",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Unsupported configuration format",
		Detail:   "Configuration files must end in .json, .yaml or .yml.",
		DocURL:   "https://vango.dev/docs/ui/errors/E121",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid port",
		Detail:   "The preview port must be between 0 and 65535.",
		DocURL:   "https://vango.dev/docs/ui/errors/E122",
	},
	"E123": {
		Category: CategoryConfig,
		Message:  "Invalid log setting",
		Detail:   "log.level must be debug, info, warn or error and log.format must be text or json.",
		DocURL:   "https://vango.dev/docs/ui/errors/E123",
	},
	"E141": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No vangoui.json or vangoui.yaml was found.",
		DocURL:   "https://vango.dev/docs/ui/errors/E141",
	},

	// ============================================
	// Protocol Errors (E160-E169)
	// ============================================

	"E160": {
		Category: CategoryProtocol,
		Message:  "Handler not found",
		Detail:   "The event targets an element with no handler for that event. The page may have re-rendered since the event was sent.",
		DocURL:   "https://vango.dev/docs/ui/errors/E160",
	},
	"E161": {
		Category: CategoryProtocol,
		Message:  "Malformed event frame",
		Detail:   "The preview client sent a frame that is not a valid JSON event.",
		DocURL:   "https://vango.dev/docs/ui/errors/E161",
	},

	// ============================================
	// Publish Errors (E170-E179)
	// ============================================

	"E170": {
		Category: CategoryPublish,
		Message:  "Snapshot upload failed",
		Detail:   "The gallery snapshot could not be written to the object store.",
		DocURL:   "https://vango.dev/docs/ui/errors/E170",
	},
	"E171": {
		Category: CategoryPublish,
		Message:  "Bucket not configured",
		Detail:   "Publishing needs a bucket name from --bucket or publish.bucket in the configuration file.",
		DocURL:   "https://vango.dev/docs/ui/errors/E171",
	},
}

// Lookup returns the template for a code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
