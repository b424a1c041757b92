package actors

import (
	"context"
	"strings"

	"RpgTools/internal/core/geom"
	"RpgTools/internal/shared/actor/messages"
	"RpgTools/internal/world/app"
	"RpgTools/internal/world/entity"
	"RpgTools/modules/kit/errx"
	"RpgTools/modules/kit/logx"
	"RpgTools/modules/kit/tracex"

	"github.com/asynkron/protoactor-go/actor"
	"go.uber.org/zap"
)

type EditorHandler struct{}

var EH = &EditorHandler{}

// reply 在接口层对每条命令只记一次日志，然后回复。
func (h *EditorHandler) reply(ctx actor.Context, a *EditorActor, msg messages.EditorMessage, action string, id int, err error) {
	logCtx := tracex.WithTraceID(context.Background(), msg.TraceID())
	if err != nil {
		logx.ReportErrorWithLoggerContext(logCtx, a.log, action, err)
		ctx.Respond(failReply(err))
		return
	}
	logx.ReportCommandWithLoggerContext(logCtx, a.log, action, "", false, zap.Int("id", id))
	ctx.Respond(okReply(id))
}

func (h *EditorHandler) HandleCreateTown(ctx actor.Context, a *EditorActor, req *messages.CreateTown) {
	id, err := a.service.CreateTown(a.data, geom.NewSize(req.Width, req.Height))
	h.reply(ctx, a, req, "create_town", int(id), err)
}

func (h *EditorHandler) HandleResizeTown(ctx actor.Context, a *EditorActor, req *messages.ResizeTown) {
	err := a.service.ResizeTown(a.data, entity.TownID(req.Town), req.Width, req.Height)
	h.reply(ctx, a, req, "resize_town", req.Town, err)
}

func (h *EditorHandler) HandleDeleteTown(ctx actor.Context, a *EditorActor, req *messages.DeleteTown) {
	err := a.service.DeleteTown(a.data, entity.TownID(req.Town))
	h.reply(ctx, a, req, "delete_town", req.Town, err)
}

func (h *EditorHandler) HandleGetTown(ctx actor.Context, a *EditorActor, req *messages.GetTown) {
	town, ok := a.data.Towns.Get(entity.TownID(req.Town))
	if !ok {
		e := app.ErrTownNotFound.WithData("town", req.Town)
		ctx.Respond(&messages.TownView{Code: e.CodeText(), Message: e.Msg()})
		return
	}
	size := town.Size()
	tiles := town.Map().Tiles()
	view := &messages.TownView{
		OK:     true,
		ID:     int(town.ID()),
		Name:   town.Name().String(),
		Width:  size.Width(),
		Height: size.Height(),
		Tiles:  make([]messages.TileView, 0, len(tiles)),
	}
	for _, tile := range tiles {
		view.Tiles = append(view.Tiles, messages.TileView{
			Terrain:      tile.Terrain.String(),
			Construction: tile.Construction.String(),
		})
	}
	ctx.Respond(view)
}

func (h *EditorHandler) HandleCreateBuilding(ctx actor.Context, a *EditorActor, req *messages.CreateBuilding) {
	lot := entity.BigLot(entity.TownID(req.Town), req.Tile, geom.NewSize(req.Width, req.Height))
	id, err := a.service.CreateBuilding(a.data, lot)
	h.reply(ctx, a, req, "create_building", int(id), err)
}

func (h *EditorHandler) HandleResizeBuilding(ctx actor.Context, a *EditorActor, req *messages.ResizeBuilding) {
	err := a.service.ResizeBuilding(a.data, entity.BuildingID(req.Building), req.Width, req.Height)
	h.reply(ctx, a, req, "resize_building", req.Building, err)
}

func (h *EditorHandler) HandleDeleteBuilding(ctx actor.Context, a *EditorActor, req *messages.DeleteBuilding) {
	err := a.service.DeleteBuilding(a.data, entity.BuildingID(req.Building))
	h.reply(ctx, a, req, "delete_building", req.Building, err)
}

func (h *EditorHandler) HandleRename(ctx actor.Context, a *EditorActor, req *messages.Rename) {
	var err error
	switch strings.ToLower(req.Kind) {
	case "town":
		err = a.service.UpdateTownName(a.data, entity.TownID(req.ID), req.Name)
	case "building":
		err = a.service.UpdateBuildingName(a.data, entity.BuildingID(req.ID), req.Name)
	case "street":
		err = a.service.UpdateStreetName(a.data, entity.StreetID(req.ID), req.Name)
	case "river":
		err = a.service.UpdateRiverName(a.data, entity.RiverID(req.ID), req.Name)
	case "mountain":
		err = a.service.UpdateMountainName(a.data, entity.MountainID(req.ID), req.Name)
	default:
		err = errx.ErrInvalidArgument.WithData("kind", req.Kind)
	}
	h.reply(ctx, a, req, "rename_"+strings.ToLower(req.Kind), req.ID, err)
}

func (h *EditorHandler) HandleSave(ctx actor.Context, a *EditorActor, req *messages.Save) {
	err := a.dc.Flush(context.Background())
	if err != nil {
		err = app.ErrUnavailable.WithReason(app.ReasonRepoUnavailable).WithCause(err)
	}
	h.reply(ctx, a, req, "save", 0, err)
}

func (h *EditorHandler) HandleStats(ctx actor.Context, a *EditorActor, req *messages.Stats) {
	ctx.Respond(&messages.StatsView{
		Towns:        a.data.Towns.Len(),
		Buildings:    a.data.Buildings.Len(),
		Streets:      a.data.Streets.Len(),
		Rivers:       a.data.Rivers.Len(),
		Mountains:    a.data.Mountains.Len(),
		Dirty:        a.data.Dirty(),
		SavedVersion: a.dc.SavedVersion(),
	})
}

func (h *EditorHandler) HandleCreateStreet(ctx actor.Context, a *EditorActor, req *messages.CreateStreet) {
	id := a.service.CreateStreet(a.data)
	h.reply(ctx, a, req, "create_street", int(id), nil)
}

func (h *EditorHandler) HandleAddStreetToTile(ctx actor.Context, a *EditorActor, req *messages.AddStreetToTile) {
	err := a.service.AddStreetToTile(a.data, entity.TownID(req.Town), req.Tile, entity.StreetID(req.Street))
	h.reply(ctx, a, req, "add_street_to_tile", req.Street, err)
}

func (h *EditorHandler) HandleRemoveStreetFromTile(ctx actor.Context, a *EditorActor, req *messages.RemoveStreetFromTile) {
	err := a.service.RemoveStreetFromTile(a.data, entity.TownID(req.Town), req.Tile)
	h.reply(ctx, a, req, "remove_street_from_tile", req.Tile, err)
}

func (h *EditorHandler) HandleAddStreetToEdge(ctx actor.Context, a *EditorActor, req *messages.AddStreetToEdge) {
	err := a.service.AddStreetToEdge(a.data, entity.TownID(req.Town), req.Tile, toSide(req.Side), entity.StreetID(req.Street))
	h.reply(ctx, a, req, "add_street_to_edge", req.Street, err)
}

func (h *EditorHandler) HandleRemoveStreetFromEdge(ctx actor.Context, a *EditorActor, req *messages.RemoveStreetFromEdge) {
	err := a.service.RemoveStreetFromEdge(a.data, entity.TownID(req.Town), req.Tile, toSide(req.Side))
	h.reply(ctx, a, req, "remove_street_from_edge", req.Tile, err)
}

func (h *EditorHandler) HandleDeleteStreet(ctx actor.Context, a *EditorActor, req *messages.DeleteStreet) {
	err := a.service.DeleteStreet(a.data, entity.StreetID(req.Street))
	h.reply(ctx, a, req, "delete_street", req.Street, err)
}

func (h *EditorHandler) HandleCreateRiver(ctx actor.Context, a *EditorActor, req *messages.CreateRiver) {
	id := a.service.CreateRiver(a.data)
	h.reply(ctx, a, req, "create_river", int(id), nil)
}

func (h *EditorHandler) HandleDeleteRiver(ctx actor.Context, a *EditorActor, req *messages.DeleteRiver) {
	err := a.service.DeleteRiver(a.data, entity.RiverID(req.River))
	h.reply(ctx, a, req, "delete_river", req.River, err)
}

func (h *EditorHandler) HandleCreateMountain(ctx actor.Context, a *EditorActor, req *messages.CreateMountain) {
	id := a.service.CreateMountain(a.data)
	h.reply(ctx, a, req, "create_mountain", int(id), nil)
}

func (h *EditorHandler) HandleDeleteMountain(ctx actor.Context, a *EditorActor, req *messages.DeleteMountain) {
	err := a.service.DeleteMountain(a.data, entity.MountainID(req.Mountain))
	h.reply(ctx, a, req, "delete_mountain", req.Mountain, err)
}

func (h *EditorHandler) HandleEditTerrain(ctx actor.Context, a *EditorActor, req *messages.EditTerrain) {
	terrain, err := parseTerrain(req.Terrain, req.Ref)
	if err == nil {
		err = a.service.EditTerrain(a.data, entity.TownID(req.Town), req.Tile, terrain)
	}
	h.reply(ctx, a, req, "edit_terrain", req.Tile, err)
}

func (h *EditorHandler) HandleGenerateTerrain(ctx actor.Context, a *EditorActor, req *messages.GenerateTerrain) {
	cfg := app.DefaultTerrainGenConfig(entity.MountainID(req.Mountain))
	cfg.Seed = req.Seed
	changed, err := a.service.GenerateTerrain(a.data, entity.TownID(req.Town), cfg)
	logCtx := tracex.WithTraceID(context.Background(), req.TraceID())
	if err != nil {
		logx.ReportErrorWithLoggerContext(logCtx, a.log, "generate_terrain", err)
		ctx.Respond(failReply(err))
		return
	}
	logx.ReportCommandWithLoggerContext(logCtx, a.log, "generate_terrain", "", false, zap.Int("changed", changed))
	ctx.Respond(countReply(changed))
}

func toSide(s messages.Side) geom.Side {
	switch s {
	case messages.SideLeft:
		return geom.Left
	case messages.SideBottom:
		return geom.Bottom
	case messages.SideRight:
		return geom.Right
	default:
		return geom.Top
	}
}

func parseTerrain(kind string, ref int) (entity.Terrain, error) {
	switch strings.ToLower(kind) {
	case "", "plain":
		return entity.PlainTerrain(), nil
	case "hill":
		return entity.HillTerrain(entity.MountainID(ref)), nil
	case "mountain":
		return entity.MountainTerrain(entity.MountainID(ref)), nil
	case "river":
		return entity.RiverTerrain(entity.RiverID(ref)), nil
	}
	return entity.Terrain{}, errx.ErrInvalidArgument.WithData("terrain", kind)
}
