// Package config registers the site configuration. Importing the
// package runs every init below; Initialize only anchors the import.
package config

// Initialize loads the package and with it every config registration
func Initialize() {
}
