package app

import "RpgTools/modules/kit/errx"

// Code 是编辑器用例的错误码。
type Code = errx.Code

const (
	CodeTownNotFound     Code = "WORLD_TOWN_NOT_FOUND"
	CodeBuildingNotFound Code = "WORLD_BUILDING_NOT_FOUND"
	CodeStreetNotFound   Code = "WORLD_STREET_NOT_FOUND"
	CodeRiverNotFound    Code = "WORLD_RIVER_NOT_FOUND"
	CodeMountainNotFound Code = "WORLD_MOUNTAIN_NOT_FOUND"
	CodeTileOutsideTown  Code = "WORLD_TILE_OUTSIDE_TOWN"
	CodeLotOccupied      Code = "WORLD_LOT_OCCUPIED"
	CodeLotOutsideTown   Code = "WORLD_LOT_OUTSIDE_TOWN"
	CodeNotAStreet       Code = "WORLD_NOT_A_STREET"
	CodeDuplicateName    Code = "WORLD_DUPLICATE_NAME"
	CodeDeleteBlocked    Code = "WORLD_DELETE_BLOCKED"
	CodeElementNotFound  Code = "WORLD_ELEMENT_NOT_FOUND"
	CodeTownTooLarge     Code = "WORLD_TOWN_TOO_LARGE"
	// 名字非法复用实体层的错误码
	CodeInvalidName Code = "WORLD_INVALID_NAME"

	CodeInternal    Code = errx.CodeInternal
	CodeUnavailable Code = errx.CodeUnavailable
)

type Error = errx.Error

// 哨兵错误，通过 WithData/WithReason 派生，不要直接修改。
var (
	ErrTownNotFound     = errx.NewBiz(CodeTownNotFound, "城镇不存在")
	ErrBuildingNotFound = errx.NewBiz(CodeBuildingNotFound, "建筑不存在")
	ErrStreetNotFound   = errx.NewBiz(CodeStreetNotFound, "街道不存在")
	ErrRiverNotFound    = errx.NewBiz(CodeRiverNotFound, "河流不存在")
	ErrMountainNotFound = errx.NewBiz(CodeMountainNotFound, "山脉不存在")
	ErrTileOutsideTown  = errx.NewBiz(CodeTileOutsideTown, "格子不在城镇内")
	ErrLotOccupied      = errx.NewBiz(CodeLotOccupied, "地块已被占用")
	ErrLotOutsideTown   = errx.NewBiz(CodeLotOutsideTown, "地块超出城镇范围")
	ErrNotAStreet       = errx.NewBiz(CodeNotAStreet, "该位置不是街道")
	ErrDuplicateName    = errx.NewBiz(CodeDuplicateName, "名字已存在")
	ErrDeleteBlocked    = errx.NewBiz(CodeDeleteBlocked, "仍被引用，无法删除")
	ErrElementNotFound  = errx.NewBiz(CodeElementNotFound, "实体不存在")
	ErrTownTooLarge     = errx.NewBiz(CodeTownTooLarge, "城镇尺寸超出上限")
	ErrInternal         = errx.ErrInternal
	ErrUnavailable      = errx.ErrUnavailable
)
