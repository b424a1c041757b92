package actors

import (
	"context"
	"time"

	"RpgTools/internal/shared/actor/messages"
	"RpgTools/internal/world/app"
	"RpgTools/internal/world/app/port"
	"RpgTools/internal/world/dc"
	"RpgTools/internal/world/entity"
	"RpgTools/modules/kit/logx"

	"github.com/asynkron/protoactor-go/actor"
	"go.uber.org/zap"
)

type State int

const (
	None State = iota
	Init
	Online
	Offline
	Stopping
)

// EditorActor 独占一个设定的 RpgData。actor 逐条处理消息，所有读写因此天然串行。
type EditorActor struct {
	state      State
	setting    string
	dc         *dc.EditorDC
	data       *entity.RpgData
	service    *app.EditorService
	log        logx.Logger
	dispatcher *Dispatcher
	flushStop  chan struct{}
}

type flushTick struct{}

func (flushTick) NotInfluenceReceiveTimeout() {}

func NewEditorActor(setting string, repo port.DataRepository, log logx.Logger, flushEvery time.Duration) *EditorActor {
	if log == nil {
		log = logx.Nop()
	}
	log = log.With(zap.String("setting", setting))
	return &EditorActor{
		state:      None,
		setting:    setting,
		dc:         dc.NewEditorDC(repo, log, flushEvery),
		service:    app.NewEditorService(log),
		log:        log,
		dispatcher: NewDispatcher(),
	}
}

func (a *EditorActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		a.state = Init
		a.init(ctx)
	case *actor.Stopping:
		a.stopFlushLoop()
		closeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := a.dc.Close(closeCtx); err != nil {
			logx.ReportSysErrorWithLoggerContext(closeCtx, a.log, logx.NewSysLog("editor_dc_close", err))
		}
		a.state = Stopping
	case *actor.Stopped:
		a.stopFlushLoop()
		a.state = Offline
	case *actor.Restarting:
		a.stopFlushLoop()
		a.state = Init
	case flushTick:
		if a.state != Online {
			return
		}
		if err := a.dc.Flush(context.Background()); err != nil {
			logx.ReportSysErrorWithLoggerContext(context.Background(), a.log, logx.NewSysLog("editor_periodic_flush", err))
		}
	case messages.EditorMessage:
		if a.state != Online {
			ctx.Respond(failReply(errNotOnline.WithData("setting", a.setting)))
			return
		}
		a.dispatcher.Dispatch(ctx, a, msg)
	}
}

func (a *EditorActor) init(ctx actor.Context) {
	data, err := a.dc.Load(context.Background(), a.setting)
	if err != nil {
		logx.ReportSysErrorWithLoggerContext(context.Background(), a.log, logx.NewSysLog("editor_load", err))
		a.state = Stopping
		ctx.Stop(ctx.Self())
		return
	}
	a.data = data
	a.state = Online
	a.log.Info("editor online",
		zap.Int("towns", data.Towns.Len()),
		zap.Int("buildings", data.Buildings.Len()),
		zap.Int("streets", data.Streets.Len()))
	a.startFlushLoop(ctx)
}

func (a *EditorActor) Setting() string {
	return a.setting
}

func (a *EditorActor) Data() *entity.RpgData {
	return a.data
}

func (a *EditorActor) DC() *dc.EditorDC {
	return a.dc
}

func (a *EditorActor) startFlushLoop(ctx actor.Context) {
	if a.flushStop != nil {
		return
	}
	interval := a.dc.FlushEvery()
	if interval <= 0 {
		return
	}
	a.flushStop = make(chan struct{})
	self := ctx.Self()
	root := ctx.ActorSystem().Root

	go func(stop <-chan struct{}, every time.Duration) {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				root.Send(self, flushTick{})
			case <-stop:
				return
			}
		}
	}(a.flushStop, interval)
}

func (a *EditorActor) stopFlushLoop() {
	if a.flushStop == nil {
		return
	}
	close(a.flushStop)
	a.flushStop = nil
}
