// Package errors provides structured, actionable error messages for vangoui.
//
// Every error carries a code (e.g. "E101") that maps to a registered
// template with a category, a short message, a longer detail and a
// documentation link. Callers decorate the error with a suggestion or an
// example before returning it.
//
// # Error Categories
//
//   - usage: programmer mistakes when composing widgets (tabs parts used
//     outside their container)
//   - config: configuration file problems
//   - protocol: malformed preview frames, unknown handlers
//   - publish: snapshot upload failures
//   - cli: command line usage
//
// # Usage
//
//	err := errors.New("E101").
//	    WithSuggestion("Pass the TabList to Tabs.Render")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E101: TabList must be inside Tabs
//	//
//	//   Hint: Pass the TabList to Tabs.Render
//	//
//	//   Learn more: https://vango.dev/docs/ui/errors/E101
package errors
