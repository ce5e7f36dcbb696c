package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// convertFolder assembles all square PNGs in source into a single ICO file
// at dest. The container is built fully in memory and written in one shot,
// so a failing conversion never leaves a partial file behind.
func convertFolder(source, dest string) error {
	log.Printf("Converting %s -> %s", source, dest)

	frames, err := collectFrames(source)
	if err != nil {
		return err
	}

	if err := writeSink(dest, encodeICO(frames)); err != nil {
		return err
	}

	log.Printf("Wrote %s (%d frames)", dest, len(frames))
	return nil
}

// writeSink writes data to path, creating parent directories as needed.
func writeSink(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
