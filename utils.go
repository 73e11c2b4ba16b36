package main

import (
	"fmt"
	"os"
	"path/filepath"
)

func saveToFiles(tile Tile, ts *TileSet) error {
	dir := filepath.Join(ts.Root, fmt.Sprintf(`%d`, tile.T.Z), fmt.Sprintf(`%d`, tile.T.X))
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}
	fileName := filepath.Join(dir, fmt.Sprintf(`%d.%s`, tile.T.Y, ts.Format))
	return os.WriteFile(fileName, tile.C, os.ModePerm)
}
