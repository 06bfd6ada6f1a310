// Package app provides the main application logic for the authentication
// handshake and token inspection. It wires the API client, the console
// prompter, and the services together, and persists the results to the
// configuration file.
package app
