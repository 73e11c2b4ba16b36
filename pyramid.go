package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/paulmach/orb/maptile"
)

// FindLastZoomLevel 从 Max 向 Min 查找最后一个存在的级别目录,
// 都不存在时回落到 Min
func FindLastZoomLevel(ts *TileSet) int {
	for zoom := ts.Max; zoom >= ts.Min; zoom-- {
		if _, err := os.Stat(ts.GetLevelDir(zoom)); err == nil {
			return zoom
		}
	}
	return ts.Min
}

// CollectTiles 枚举指定级别下的全部瓦片坐标
// 级别目录不存在或不可读视为空级别, 瓦片命名不是整数坐标则该数据集已损坏
func CollectTiles(ts *TileSet, zoom int) ([]maptile.Tile, error) {
	tiles := make([]maptile.Tile, 0)
	xEntries, err := os.ReadDir(ts.GetLevelDir(zoom))
	if err != nil {
		return tiles, nil
	}
	suffix := "." + ts.Format
	for _, xe := range xEntries {
		yEntries, err := os.ReadDir(filepath.Join(ts.GetLevelDir(zoom), xe.Name()))
		if err != nil {
			continue
		}
		for _, ye := range yEntries {
			if ye.IsDir() || !strings.HasSuffix(ye.Name(), suffix) {
				continue
			}
			x, err := strconv.ParseUint(xe.Name(), 10, 32)
			if err != nil {
				return nil, fmt.Errorf("bad tile x dir %s/%s: %s", xe.Name(), ye.Name(), err)
			}
			y, err := strconv.ParseUint(strings.TrimSuffix(ye.Name(), suffix), 10, 32)
			if err != nil {
				return nil, fmt.Errorf("bad tile y file %s/%s: %s", xe.Name(), ye.Name(), err)
			}
			tiles = append(tiles, maptile.Tile{X: uint32(x), Y: uint32(y), Z: maptile.Zoom(zoom)})
		}
	}
	return tiles, nil
}

// BackTiles 源瓦片坐标映射到上一级目标坐标并去重, 保持枚举顺序
func BackTiles(tiles []maptile.Tile) []maptile.Tile {
	seen := make(map[maptile.Tile]struct{}, len(tiles))
	backs := make([]maptile.Tile, 0, len(tiles)/4+1)
	for _, t := range tiles {
		b := maptile.Tile{X: t.X / 2, Y: t.Y / 2, Z: t.Z - 1}
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		backs = append(backs, b)
	}
	return backs
}

// ReduceTile 将下一级的四个象限瓦片合成为一张目标瓦片并落盘
// 落盘尺寸为 2*TileSize, 作为更上一级的输入时再缩回 TileSize
func ReduceTile(ts *TileSet, back maptile.Tile) error {
	// 透明画布, 缺失象限保持全透明
	output := imaging.New(TileSize*2, TileSize*2, color.NRGBA{})

	for i := uint32(0); i < 2; i++ {
		for j := uint32(0); j < 2; j++ {
			src := maptile.Tile{X: back.X*2 + i, Y: back.Y*2 + j, Z: back.Z + 1}
			path := ts.GetTilePath(src)
			if _, err := os.Stat(path); err != nil {
				if os.IsNotExist(err) {
					continue
				}
				return fmt.Errorf("stat tile %s: %s", path, err)
			}
			img, err := imaging.Open(path)
			if err != nil {
				return fmt.Errorf("decode tile %s: %s", path, err)
			}
			quad := imaging.Resize(img, TileSize, TileSize, imaging.Lanczos)
			output = imaging.Paste(output, quad, image.Pt(int(i)*TileSize, int(j)*TileSize))
		}
	}

	format, err := imaging.FormatFromExtension(ts.Format)
	if err != nil {
		return fmt.Errorf("tile format %s: %s", ts.Format, err)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, output, format); err != nil {
		return fmt.Errorf("encode tile %v: %s", back, err)
	}
	return saveToFiles(Tile{T: back, C: buf.Bytes()}, ts)
}
