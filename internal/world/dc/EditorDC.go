package dc

import (
	"context"
	"sync"
	"time"

	"RpgTools/internal/world/app/port"
	"RpgTools/internal/world/entity"
	"RpgTools/modules/kit/errx"
	"RpgTools/modules/kit/logx"

	"go.uber.org/zap"
)

const (
	defaultFlushEvery = 3 * time.Second
	retryBackoff      = 200 * time.Millisecond
)

var errNoRepository = errx.ErrUnavailable.WithData("reason", "editor repository is nil")

// EditorDC 持有一个设定的 RpgData，并在后台 goroutine 里把快照写入存储。
//
// Load/Flush/IsDirty 只能在拥有数据的 actor 里调用；写库在 writerLoop 里进行，
// 多次 Flush 只保留版本最高的待写快照。
type EditorDC struct {
	repo       port.DataRepository
	log        logx.Logger
	data       *entity.RpgData
	flushEvery time.Duration

	mu      sync.Mutex
	pending *entity.RpgPersistSnapshot
	version uint64
	saved   uint64
	closed  bool

	wake chan struct{}
	stop chan struct{}
	done chan struct{}
}

func NewEditorDC(repo port.DataRepository, log logx.Logger, flushEvery time.Duration) *EditorDC {
	if log == nil {
		log = logx.Nop()
	}
	if flushEvery <= 0 {
		flushEvery = defaultFlushEvery
	}
	d := &EditorDC{
		repo:       repo,
		log:        log,
		flushEvery: flushEvery,
		wake:       make(chan struct{}, 1),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
	go d.writerLoop()
	return d
}

func (d *EditorDC) Load(ctx context.Context, setting string) (*entity.RpgData, error) {
	if d.repo == nil {
		return nil, errNoRepository
	}
	data, err := d.repo.Load(ctx, setting)
	if err != nil {
		return nil, err
	}
	d.data = data
	// 新快照的版本必须高于库里已有的，否则会被当成旧快照丢弃
	d.mu.Lock()
	d.version = data.Version()
	d.saved = data.Version()
	d.mu.Unlock()
	return data, nil
}

// Flush 把当前脏数据做成快照排入写队列，不等待写库完成。
func (d *EditorDC) Flush(ctx context.Context) error {
	if !d.IsDirty() {
		return nil
	}
	if d.repo == nil {
		return errNoRepository
	}
	s, ok := d.buildNextSnapshot()
	if !ok {
		return nil
	}
	d.enqueueLatest(s)
	return nil
}

func (d *EditorDC) IsDirty() bool {
	return d.data != nil && d.data.Dirty()
}

func (d *EditorDC) Data() *entity.RpgData {
	return d.data
}

func (d *EditorDC) FlushEvery() time.Duration {
	return d.flushEvery
}

// SavedVersion 返回已成功写入存储的最高快照版本。
func (d *EditorDC) SavedVersion() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.saved
}

// Close 排入最后一次快照，等待写库循环退出。
func (d *EditorDC) Close(ctx context.Context) error {
	_ = d.Flush(ctx)

	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.stop)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *EditorDC) buildNextSnapshot() (*entity.RpgPersistSnapshot, bool) {
	if d.data == nil {
		return nil, false
	}
	d.mu.Lock()
	d.version++
	version := d.version
	d.mu.Unlock()

	s, ok := d.data.BuildPersistSnapshot(version)
	if !ok {
		return nil, false
	}
	d.data.ClearDirty()
	return s, true
}

// enqueueLatest 用更高版本的快照覆盖待写快照并唤醒写库循环。
func (d *EditorDC) enqueueLatest(s *entity.RpgPersistSnapshot) {
	if s == nil {
		return
	}
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	if d.pending == nil || d.pending.Version < s.Version {
		d.pending = s
	}
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
}

func (d *EditorDC) popPending() *entity.RpgPersistSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	s := d.pending
	d.pending = nil
	return s
}

// requeueOnError 写库失败时把快照放回去，已有更新的快照则丢弃旧的。
// 返回 false 表示已关闭，不再重试。
func (d *EditorDC) requeueOnError(s *entity.RpgPersistSnapshot) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return false
	}
	if d.pending == nil || d.pending.Version < s.Version {
		d.pending = s
	}
	return true
}

func (d *EditorDC) writerLoop() {
	defer close(d.done)
	for {
		select {
		case <-d.wake:
			d.consumePending()
		case <-d.stop:
			d.consumePending()
			return
		}
	}
}

func (d *EditorDC) consumePending() {
	for {
		s := d.popPending()
		if s == nil {
			return
		}
		if err := d.repo.Save(context.Background(), s); err != nil {
			logx.ReportSysErrorWithLoggerContext(context.Background(), d.log,
				logx.NewSysLog("editor_dc_save", err),
				zap.String("setting", s.Setting), zap.Uint64("version", s.Version))
			if !d.requeueOnError(s) {
				return
			}
			time.Sleep(retryBackoff)
			continue
		}
		d.mu.Lock()
		if s.Version > d.saved {
			d.saved = s.Version
		}
		d.mu.Unlock()
	}
}
