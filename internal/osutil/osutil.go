// Package osutil holds operating system constants shared across fractal.
package osutil

const Windows = "windows"

type exitCode int

const ExitError exitCode = 1

// DirPermission is the mode of directories fractal creates for its config
// and log files.
const DirPermission = 0o755
