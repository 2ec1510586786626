// Package cmd provides the fusionsite command-line interface.
//
// # Available Commands
//
//   - serve: run the site with the contact wizard, metrics and live reload
//   - build: export every page and asset as static files
//   - routes: list the page routes
//   - audit: check every rendered page for accessibility problems
//   - config: show or validate the effective configuration
//   - quotes: list quote requests stored in the SQLite sink
//   - version: print build information
//
// # Command Examples
//
//	// Run locally with live reload
//	fusionsite serve --dev --port 3000
//
//	// Export to ./public
//	fusionsite build --out public
//
//	// Machine-readable audit report
//	fusionsite audit -f json
//
// # Configuration
//
// Settings come from flags, FUSIONSITE_* environment variables and the
// .fusionsite.yml file, in that order of precedence. FUSIONSITE_CONFIG_FILE
// points at a different file.
package cmd
