// Package services contains the domain service modules of the client: thin
// wrappers that translate domain request/response shapes to and from the
// HTTP access layer, one per backend surface (auth, users, trips, tickets).
// They hold no state; session state lives in the session package.
package services
