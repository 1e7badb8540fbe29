// Package metadata provides read-only access to a build system's recipe
// and package metadata.
//
// The Provider interface is what the search core consumes: forward maps
// from recipe filenames to names and provides, runtime maps from package
// and runtime-provide names to producing filenames, the preferred filename
// order, and scope resolution. Cache implements Provider on top of a YAML
// metadata cache file exported by the build system.
package metadata
