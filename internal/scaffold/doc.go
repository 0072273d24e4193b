// Package scaffold runs the create-kapp setup flow: it asks for a target
// folder and a starter template, resolves the folder to a canonical absolute
// path, downloads the starter archive, and extracts it into the folder.
//
// Every run is a single attempt. Failures are reported once and returned;
// nothing already created or extracted is rolled back.
package scaffold
