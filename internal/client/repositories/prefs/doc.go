// Package prefs persists client preferences in the local SQLite database.
//
// It plays the part of browser local storage: values survive restarts, are
// never synced with the server and are only removed explicitly. The
// registration latch and the remembered login email live here.
package prefs
