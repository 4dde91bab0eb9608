// Package ports defines the interfaces between the checker's application
// layer and its adapters. Inbound documents arrive through DocumentSource;
// failure rendering goes out through MessageRenderer.
package ports
