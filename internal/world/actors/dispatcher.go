package actors

import (
	"reflect"

	"RpgTools/internal/shared/actor/messages"

	"github.com/asynkron/protoactor-go/actor"
)

// Dispatcher 按消息的具体类型把命令路由到处理函数。
type Dispatcher struct {
	handlers map[reflect.Type]Handler
}

type Handler struct {
	fn      reflect.Value
	reqType reflect.Type
}

func NewDispatcher() *Dispatcher {
	d := &Dispatcher{handlers: make(map[reflect.Type]Handler)}
	d.registerAll()
	return d
}

func (d *Dispatcher) registerAll() {
	register(d, EH.HandleCreateTown)
	register(d, EH.HandleResizeTown)
	register(d, EH.HandleDeleteTown)
	register(d, EH.HandleGetTown)
	register(d, EH.HandleCreateBuilding)
	register(d, EH.HandleResizeBuilding)
	register(d, EH.HandleDeleteBuilding)
	register(d, EH.HandleRename)
	register(d, EH.HandleSave)
	register(d, EH.HandleStats)
	register(d, EH.HandleCreateStreet)
	register(d, EH.HandleAddStreetToTile)
	register(d, EH.HandleRemoveStreetFromTile)
	register(d, EH.HandleAddStreetToEdge)
	register(d, EH.HandleRemoveStreetFromEdge)
	register(d, EH.HandleDeleteStreet)
	register(d, EH.HandleCreateRiver)
	register(d, EH.HandleDeleteRiver)
	register(d, EH.HandleCreateMountain)
	register(d, EH.HandleDeleteMountain)
	register(d, EH.HandleEditTerrain)
	register(d, EH.HandleGenerateTerrain)
}

func register[Req messages.EditorMessage](
	d *Dispatcher,
	fn func(ctx actor.Context, a *EditorActor, req Req),
) {
	reqType := reflect.TypeOf((*Req)(nil)).Elem()
	if _, dup := d.handlers[reqType]; dup {
		panic("dispatcher: duplicate handler for " + reqType.String())
	}
	d.handlers[reqType] = Handler{fn: reflect.ValueOf(fn), reqType: reqType}
}

// Has 判断消息类型是否有处理函数。
func (d *Dispatcher) Has(req messages.EditorMessage) bool {
	_, ok := d.handlers[reflect.TypeOf(req)]
	return ok
}

func (d *Dispatcher) Dispatch(ctx actor.Context, a *EditorActor, req messages.EditorMessage) {
	if req == nil {
		ctx.Respond(failReply(errNilRequest))
		return
	}
	handler, ok := d.handlers[reflect.TypeOf(req)]
	if !ok {
		ctx.Respond(failReply(errNoHandler.WithData("type", reflect.TypeOf(req).String())))
		return
	}
	handler.fn.Call([]reflect.Value{
		reflect.ValueOf(ctx),
		reflect.ValueOf(a),
		reflect.ValueOf(req),
	})
}
