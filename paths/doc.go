// Package paths should be used whenever a request to the filesystem is made
// for a configuration or resource file. The functions herein make sure the
// correct path (current directory override, falling back to the user's
// config directory) is used for the resource, rather than scattering
// os.UserConfigDir calls across the tree.
package paths
