package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/paulmach/orb/maptile"
)

// TileSet 瓦片数据集, 目录结构为 root/z/x/y.format
type TileSet struct {
	Name   string
	Root   string
	Min    int
	Max    int
	Format string
}

// GetTilePath 获取瓦片文件路径
func (ts *TileSet) GetTilePath(t maptile.Tile) string {
	return filepath.Join(ts.GetLevelDir(int(t.Z)), strconv.Itoa(int(t.X)),
		fmt.Sprintf(`%d.%s`, t.Y, ts.Format))
}

// GetLevelDir 获取级别目录路径
func (ts *TileSet) GetLevelDir(zoom int) string {
	return filepath.Join(ts.Root, strconv.Itoa(zoom))
}
