// Package events provides types and interfaces for reacting to changes of the
// applicant registry.
//
// Services emit a RegistryChangedEvent after every successful mutation without
// knowing which handlers will process it. The primary components are:
// - RegistryChangedEvent: a snapshot of the registry taken right after a change
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
