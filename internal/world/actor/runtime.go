// Package actor 把编辑器 actor 系统包装成带超时的同步调用接口。
package actor

import (
	"context"
	"time"

	"RpgTools/internal/shared/actor/messages"
	"RpgTools/internal/world/actors"
	"RpgTools/internal/world/app/port"
	"RpgTools/modules/kit/errx"
	"RpgTools/modules/kit/logx"
	"RpgTools/modules/kit/tracex"

	protoactor "github.com/asynkron/protoactor-go/actor"
)

const defaultAskTimeout = 3 * time.Second

var (
	ErrNotReady      = errx.NewSys(errx.CodeUnavailable, "actor runtime 未初始化")
	ErrRequestFailed = errx.NewSys(errx.CodeTimeout, "actor 请求失败")
	ErrBadReply      = errx.NewSys(errx.CodeInternal, "actor 回复类型错误")
)

type Runtime struct {
	system  *protoactor.ActorSystem
	root    *protoactor.RootContext
	manager *protoactor.PID
	timeout time.Duration
}

type Options struct {
	AskTimeout time.Duration
	FlushEvery time.Duration
	Logger     logx.Logger
}

func NewRuntime(repo port.DataRepository, opts Options) *Runtime {
	if opts.AskTimeout <= 0 {
		opts.AskTimeout = defaultAskTimeout
	}

	system := protoactor.NewActorSystem()
	root := system.Root
	managerProps := protoactor.PropsFromProducer(func() protoactor.Actor {
		return actors.NewManagerActor(repo, opts.Logger, opts.FlushEvery)
	})
	manager := root.Spawn(managerProps)

	return &Runtime{
		system:  system,
		root:    root,
		manager: manager,
		timeout: opts.AskTimeout,
	}
}

// Shutdown 先优雅停止 manager，子 actor 随之停止并把脏数据写完。
func (r *Runtime) Shutdown() {
	if r == nil {
		return
	}
	if r.root != nil && r.manager != nil {
		_ = r.root.PoisonFuture(r.manager).Wait()
	}
	if r.system != nil {
		r.system.Shutdown()
	}
}

func (r *Runtime) CreateTown(ctx context.Context, setting string, width, height int) (int, error) {
	return r.command(ctx, &messages.CreateTown{EditorBase: base(ctx, setting), Width: width, Height: height})
}

func (r *Runtime) ResizeTown(ctx context.Context, setting string, town, width, height int) error {
	_, err := r.command(ctx, &messages.ResizeTown{EditorBase: base(ctx, setting), Town: town, Width: width, Height: height})
	return err
}

func (r *Runtime) DeleteTown(ctx context.Context, setting string, town int) error {
	_, err := r.command(ctx, &messages.DeleteTown{EditorBase: base(ctx, setting), Town: town})
	return err
}

func (r *Runtime) GetTown(ctx context.Context, setting string, town int) (*messages.TownView, error) {
	res, err := r.request(r.manager, &messages.GetTown{EditorBase: base(ctx, setting), Town: town}, r.timeoutFromContext(ctx))
	if err != nil {
		return nil, err
	}
	switch v := res.(type) {
	case *messages.TownView:
		if !v.OK {
			return nil, errx.NewBiz(errx.Code(v.Code), v.Message)
		}
		return v, nil
	case *messages.Reply:
		return nil, replyError(v)
	}
	return nil, ErrBadReply
}

// Stats 同时用作就绪检查：设定加载失败时 actor 不在线，这里返回错误。
func (r *Runtime) Stats(ctx context.Context, setting string) (*messages.StatsView, error) {
	res, err := r.request(r.manager, &messages.Stats{EditorBase: base(ctx, setting)}, r.timeoutFromContext(ctx))
	if err != nil {
		return nil, err
	}
	switch v := res.(type) {
	case *messages.StatsView:
		return v, nil
	case *messages.Reply:
		return nil, replyError(v)
	}
	return nil, ErrBadReply
}

func (r *Runtime) CreateBuilding(ctx context.Context, setting string, town, tile, width, height int) (int, error) {
	return r.command(ctx, &messages.CreateBuilding{EditorBase: base(ctx, setting), Town: town, Tile: tile, Width: width, Height: height})
}

func (r *Runtime) ResizeBuilding(ctx context.Context, setting string, building, width, height int) error {
	_, err := r.command(ctx, &messages.ResizeBuilding{EditorBase: base(ctx, setting), Building: building, Width: width, Height: height})
	return err
}

func (r *Runtime) DeleteBuilding(ctx context.Context, setting string, building int) error {
	_, err := r.command(ctx, &messages.DeleteBuilding{EditorBase: base(ctx, setting), Building: building})
	return err
}

func (r *Runtime) Rename(ctx context.Context, setting, kind string, id int, name string) error {
	_, err := r.command(ctx, &messages.Rename{EditorBase: base(ctx, setting), Kind: kind, ID: id, Name: name})
	return err
}

func (r *Runtime) Save(ctx context.Context, setting string) error {
	_, err := r.command(ctx, &messages.Save{EditorBase: base(ctx, setting)})
	return err
}

func (r *Runtime) CreateStreet(ctx context.Context, setting string) (int, error) {
	return r.command(ctx, &messages.CreateStreet{EditorBase: base(ctx, setting)})
}

func (r *Runtime) AddStreetToTile(ctx context.Context, setting string, town, tile, street int) error {
	_, err := r.command(ctx, &messages.AddStreetToTile{EditorBase: base(ctx, setting), Town: town, Tile: tile, Street: street})
	return err
}

func (r *Runtime) RemoveStreetFromTile(ctx context.Context, setting string, town, tile int) error {
	_, err := r.command(ctx, &messages.RemoveStreetFromTile{EditorBase: base(ctx, setting), Town: town, Tile: tile})
	return err
}

func (r *Runtime) AddStreetToEdge(ctx context.Context, setting string, town, tile int, side messages.Side, street int) error {
	_, err := r.command(ctx, &messages.AddStreetToEdge{EditorBase: base(ctx, setting), Town: town, Tile: tile, Side: side, Street: street})
	return err
}

func (r *Runtime) RemoveStreetFromEdge(ctx context.Context, setting string, town, tile int, side messages.Side) error {
	_, err := r.command(ctx, &messages.RemoveStreetFromEdge{EditorBase: base(ctx, setting), Town: town, Tile: tile, Side: side})
	return err
}

func (r *Runtime) DeleteStreet(ctx context.Context, setting string, street int) error {
	_, err := r.command(ctx, &messages.DeleteStreet{EditorBase: base(ctx, setting), Street: street})
	return err
}

func (r *Runtime) CreateRiver(ctx context.Context, setting string) (int, error) {
	return r.command(ctx, &messages.CreateRiver{EditorBase: base(ctx, setting)})
}

func (r *Runtime) DeleteRiver(ctx context.Context, setting string, river int) error {
	_, err := r.command(ctx, &messages.DeleteRiver{EditorBase: base(ctx, setting), River: river})
	return err
}

func (r *Runtime) CreateMountain(ctx context.Context, setting string) (int, error) {
	return r.command(ctx, &messages.CreateMountain{EditorBase: base(ctx, setting)})
}

func (r *Runtime) DeleteMountain(ctx context.Context, setting string, mountain int) error {
	_, err := r.command(ctx, &messages.DeleteMountain{EditorBase: base(ctx, setting), Mountain: mountain})
	return err
}

func (r *Runtime) EditTerrain(ctx context.Context, setting string, town, tile int, terrain string, ref int) error {
	_, err := r.command(ctx, &messages.EditTerrain{EditorBase: base(ctx, setting), Town: town, Tile: tile, Terrain: terrain, Ref: ref})
	return err
}

// GenerateTerrain 返回被改写的格子数。
func (r *Runtime) GenerateTerrain(ctx context.Context, setting string, town, mountain int, seed int64) (int, error) {
	res, err := r.ask(ctx, &messages.GenerateTerrain{EditorBase: base(ctx, setting), Town: town, Mountain: mountain, Seed: seed})
	if err != nil {
		return 0, err
	}
	return res.Count, nil
}

func base(ctx context.Context, setting string) messages.EditorBase {
	_, tid := tracex.Ensure(ctx)
	return messages.EditorBase{SettingName: setting, Trace: tid}
}

func (r *Runtime) command(ctx context.Context, msg messages.EditorMessage) (int, error) {
	res, err := r.ask(ctx, msg)
	if err != nil {
		return 0, err
	}
	return res.ID, nil
}

func (r *Runtime) ask(ctx context.Context, msg messages.EditorMessage) (*messages.Reply, error) {
	res, err := r.request(r.manager, msg, r.timeoutFromContext(ctx))
	if err != nil {
		return nil, err
	}
	reply, ok := res.(*messages.Reply)
	if !ok || reply == nil {
		return nil, ErrBadReply
	}
	if !reply.OK {
		return nil, replyError(reply)
	}
	return reply, nil
}

// replyError 按回复重建 errx 错误，调用方可以直接 errors.Is(err, app.ErrLotOccupied)。
func replyError(reply *messages.Reply) error {
	code := errx.Code(reply.Code)
	var e *errx.Error
	if reply.Biz {
		e = errx.NewBiz(code, reply.Message)
	} else {
		e = errx.NewSys(code, reply.Message)
	}
	return e.WithDataMap(reply.Data)
}

func (r *Runtime) request(pid *protoactor.PID, msg any, timeout time.Duration) (any, error) {
	if r == nil || r.root == nil || pid == nil {
		return nil, ErrNotReady
	}

	future := r.root.RequestFuture(pid, msg, timeout)
	res, err := future.Result()
	if err != nil {
		return nil, ErrRequestFailed.WithCause(err)
	}
	return res, nil
}

func (r *Runtime) timeoutFromContext(ctx context.Context) time.Duration {
	if r == nil || r.timeout <= 0 {
		return defaultAskTimeout
	}
	if ctx == nil {
		return r.timeout
	}
	deadline, ok := ctx.Deadline()
	if !ok {
		return r.timeout
	}
	remain := time.Until(deadline)
	if remain <= 0 {
		return time.Millisecond
	}
	if remain < r.timeout {
		return remain
	}
	return r.timeout
}
