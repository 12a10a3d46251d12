// Package platform provides the filesystem operations the dispatcher needs
// before invoking the compiler.
package platform
