// Package paths builds configuration file paths under a base directory.
//
//	builder, err := paths.FromHomeSubdir(".claude")
//	if err != nil {
//	    // errors.Is(err, paths.ErrHomeDir)
//	}
//	settingsPath := builder.Build("settings.json") // ~/.claude/settings.json
//
// Build does no I/O; pair it with config.Load and config.Save.
package paths
