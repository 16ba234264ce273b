// Package files provides file system discovery for observation source
// files.
//
// Discovery finds Excel and CSV observation exports in a directory,
// skipping Excel lock files, and returns them sorted by name so that
// merge order follows session order.
//
// Example usage:
//
//	discovery := files.NewDiscovery("/path/to/base")
//	sources, err := discovery.FindObservationFiles("exports")
package files
