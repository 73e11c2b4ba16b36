package main

import "github.com/paulmach/orb/maptile"

// TileSize 默认瓦片大小
const TileSize = 256

// ZoomMin 最小级别
const ZoomMin = 0

// ZoomMax 最大级别
const ZoomMax = 24

// Tile 自定义瓦片存储
type Tile struct {
	T maptile.Tile
	C []byte
}

// Level 级别&瓦片数
type Level struct {
	Zoom  int
	Count int64
}

// Constants representing TileFormat types
const (
	PNG string = "png"
	JPG        = "jpg"
	GIF        = "gif"
	BMP        = "bmp"
	TIF        = "tif"
)
