// Package store holds the in-memory registry of applicants. The registry is
// the single mutable resource of the application: it keeps applicants in
// insertion order and guarantees that no two of them share a name.
//
// The registry performs no locking. Callers that share a registry between
// goroutines must serialize access themselves.
package store
