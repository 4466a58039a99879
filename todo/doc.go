// Package todo implements the todo domain model: items with a completion
// status, an ordered list with single selection, and a JSON file store.
package todo
