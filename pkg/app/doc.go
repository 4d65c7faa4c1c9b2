// Package app wires the journal, the calendar view and the collaborators
// (persistence, weather) into the operations the user interfaces call.
package app
