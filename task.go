package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/paulmach/orb/maptile"
	"github.com/teris-io/shortid"
	pb "gopkg.in/cheggaaa/pb.v1"
)

func InitTask() {
	start := time.Now()

	ts := &TileSet{
		Name:   conf.Ts.Name,
		Root:   conf.Ts.Folder,
		Min:    conf.Ts.Min,
		Max:    conf.Ts.Max,
		Format: conf.Ts.Format,
	}
	if ts.Root == "" {
		log.Fatal("tile folder is empty, set ts.folder or -f ~")
	}
	if _, err := os.Stat(ts.Root); err != nil {
		log.Fatalf("folder does not exist: %s", ts.Root)
	}

	task := NewTask(ts, conf.Task.Workers)
	// 注册安全退出
	SafeExitInst.Register(task.AbortFun)

	// 开始合成
	if err := task.Build(); err != nil {
		log.Fatalf("task %s aborted, details: %s", task.ID, err)
	}

	secs := time.Since(start).Seconds()
	log.Printf("\n%.3fs finished...", secs)
}

// Task 金字塔合成任务
type Task struct {
	ID          string
	Name        string
	TileSet     *TileSet
	Levels      []Level
	Total       int64
	Quiet       bool
	workerCount int
	tileWG      sync.WaitGroup
	abort       chan struct{}
	abortOnce   sync.Once
	workers     chan struct{}
}

// NewTask 创建合成任务
func NewTask(ts *TileSet, workers int) *Task {
	id, _ := shortid.Generate()
	if workers < 1 {
		workers = 1
	}

	task := Task{
		ID:          id,
		Name:        ts.Name,
		TileSet:     ts,
		workerCount: workers,
	}

	task.abort = make(chan struct{})
	task.workers = make(chan struct{}, task.workerCount)

	return &task
}

// AbortFun 结束任务
func (task *Task) AbortFun() {
	task.abortOnce.Do(func() { close(task.abort) })
}

// Build 自最精细级别逐级向下合成, 直到 Min 级别
// 即使某级别枚举为空也继续向下走完全部级别
func (task *Task) Build() error {
	zoom := FindLastZoomLevel(task.TileSet)
	log.Infof("Task %s starting zoom level: %d", task.ID, zoom)

	for ; zoom > task.TileSet.Min; zoom-- {
		tiles, err := CollectTiles(task.TileSet, zoom)
		if err != nil {
			return err
		}
		log.Infof("zoom: %d, tiles: %d \n", zoom, len(tiles))
		task.Levels = append(task.Levels, Level{Zoom: zoom, Count: int64(len(tiles))})
		task.Total += int64(len(tiles))

		if err := task.reduceLevel(BackTiles(tiles), zoom-1); err != nil {
			return err
		}
	}
	return nil
}

// reduceLevel 合成一个目标级别
// 目标坐标已去重, 同一文件不会有两个 worker 同时写
// 该级别全部落盘后才返回, 保证上一级读到的输入是完整的
func (task *Task) reduceLevel(backs []maptile.Tile, zoom int) error {
	if err := os.MkdirAll(task.TileSet.GetLevelDir(zoom), os.ModePerm); err != nil {
		return err
	}

	bar := pb.New(len(backs)).Prefix(fmt.Sprintf("Zoom %d : ", zoom))
	bar.NotPrint = task.Quiet
	bar.SetRefreshRate(time.Second)
	bar.Start()

	errc := make(chan error, 1)
	canceled := false
loop:
	for _, back := range backs {
		select {
		case err := <-errc:
			task.tileWG.Wait()
			bar.Finish()
			return err
		case <-task.abort:
			log.Infof("Task %s got canceled.", task.Name)
			canceled = true
			break loop
		case task.workers <- struct{}{}:
		}
		task.tileWG.Add(1)
		go func(back maptile.Tile) {
			start := time.Now()
			// workers完成并清退
			defer func() {
				task.tileWG.Done()
				<-task.workers
			}()
			if err := ReduceTile(task.TileSet, back); err != nil {
				select {
				case errc <- err:
				default:
				}
				return
			}
			bar.Increment()
			cost := time.Since(start).Milliseconds()
			log.Debugf("tile(z:%d, x:%d, y:%d), %dms ...\n", back.Z, back.X, back.Y, cost)
		}(back)
	}
	// 等待该层结束
	task.tileWG.Wait()
	select {
	case err := <-errc:
		bar.Finish()
		return err
	default:
	}
	if canceled {
		bar.Finish()
		return fmt.Errorf("task %s canceled", task.ID)
	}
	bar.FinishPrint(fmt.Sprintf("Task %s Zoom %d finished ~", task.ID, zoom))
	return nil
}
