package actors

import (
	"time"

	"RpgTools/internal/shared/actor/messages"
	"RpgTools/internal/world/app/port"
	"RpgTools/modules/kit/logx"

	"github.com/asynkron/protoactor-go/actor"
	"go.uber.org/zap"
)

// ManagerActor 为每个设定懒创建一个 EditorActor 并转发命令。
type ManagerActor struct {
	repo       port.DataRepository
	log        logx.Logger
	flushEvery time.Duration
	editors    map[string]*actor.PID
}

func NewManagerActor(repo port.DataRepository, log logx.Logger, flushEvery time.Duration) *ManagerActor {
	if log == nil {
		log = logx.Nop()
	}
	return &ManagerActor{
		repo:       repo,
		log:        log,
		flushEvery: flushEvery,
		editors:    make(map[string]*actor.PID),
	}
}

func (m *ManagerActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Terminated:
		for setting, pid := range m.editors {
			if pid.Equal(msg.Who) {
				delete(m.editors, setting)
				m.log.Info("editor actor terminated", zap.String("setting", setting))
			}
		}
	case messages.EditorMessage:
		if msg == nil {
			ctx.Respond(failReply(errNilRequest))
			return
		}
		if msg.Setting() == "" {
			ctx.Respond(failReply(errNoSetting))
			return
		}
		ctx.Forward(m.getOrSpawn(ctx, msg.Setting()))
	}
}

func (m *ManagerActor) getOrSpawn(ctx actor.Context, setting string) *actor.PID {
	if pid, ok := m.editors[setting]; ok && pid != nil {
		return pid
	}
	props := actor.PropsFromProducer(func() actor.Actor {
		return NewEditorActor(setting, m.repo, m.log, m.flushEvery)
	})
	pid := ctx.Spawn(props)
	ctx.Watch(pid)
	m.editors[setting] = pid
	return pid
}
