// Package jsonstore persists the applicant registry as a JSON document.
//
// The adapter half (Serialize, ToModel) is a structural bridge between
// store.Registry and the document; every domain rule is enforced by replaying
// the domain constructors and Registry.Add on load. The storage half
// (FileStorage, AutosaveHandler) moves documents to and from disk.
package jsonstore
