// Package utils provides small conversion helpers shared by the HTTP handlers
// and commands, such as lenient boolean parsing of form and query values.
package utils
