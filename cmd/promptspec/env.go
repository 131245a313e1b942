package main

import (
	"fmt"
	"os"
	"strings"
)

// handleEnv implements `promptspec env`: print where configuration came
// from and what it resolved to.
func handleEnv() error {
	cfg := loadConfig()
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}

	fmt.Printf("Working dir:    %s\n", wd)
	if cfg.GlobalPath != "" {
		fmt.Printf("Global config:  %s\n", cfg.GlobalPath)
	} else {
		fmt.Println("Global config:  (none)")
	}
	if cfg.ProjectPath != "" {
		fmt.Printf("Project config: %s\n", cfg.ProjectPath)
	} else {
		fmt.Println("Project config: (none)")
	}

	fmt.Printf("Default model:  %s\n", cfg.DefaultModel)

	dirs := cfg.EffectiveSpecsDirs(wd)
	if len(dirs) == 0 {
		fmt.Println("Specs dirs:     (none)")
	} else {
		fmt.Printf("Specs dirs:     %s\n", strings.Join(dirs, string(os.PathListSeparator)))
	}

	if len(cfg.InternalVariables) > 0 {
		fmt.Printf("Internal vars:  %s\n", strings.Join(cfg.InternalVariables, ", "))
	}

	if cfg.Hub.Owner != "" {
		fmt.Printf("Hub:            %s/%s", cfg.Hub.Owner, cfg.Hub.Repo)
		if cfg.Hub.Path != "" {
			fmt.Printf("/%s", cfg.Hub.Path)
		}
		fmt.Println()
	} else {
		fmt.Println("Hub:            (not configured)")
	}

	if cfg.Inspector.Enabled {
		fmt.Printf("Inspector:      enabled on port %d\n", cfg.Inspector.Port)
	} else {
		fmt.Println("Inspector:      disabled")
	}

	return nil
}
