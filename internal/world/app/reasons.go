package app

type Reason struct {
	Code    string
	Message string
}

func (r Reason) ReasonCode() string {
	return r.Code
}

func NewReason(c, m string) Reason {
	return Reason{Code: c, Message: m}
}

var (
	// 业务拒绝
	ReasonBlockedByBuilding = NewReason("BLOCKED_BY_BUILDING", "被其他建筑阻挡")
	ReasonBlockedByStreet   = NewReason("BLOCKED_BY_STREET", "被街道阻挡")
	ReasonTownTooSmall      = NewReason("TOWN_TOO_SMALL", "城镇尺寸不足")
	ReasonUsedByTowns       = NewReason("USED_BY_TOWNS", "仍被城镇使用")
	ReasonHasBuildings      = NewReason("HAS_BUILDINGS", "城镇内仍有建筑")
	ReasonEmptyName         = NewReason("EMPTY_NAME", "名字为空")
)

var (
	// 技术故障
	ReasonLotClearFailed  = NewReason("LOT_CLEAR_FAILED", "清空旧地块失败")
	ReasonLotApplyFailed  = NewReason("LOT_APPLY_FAILED", "写入新地块失败")
	ReasonRepoUnavailable = NewReason("REPO_UNAVAILABLE", "存储不可用")
	ReasonDataCorrupt     = NewReason("DATA_CORRUPT", "数据损坏")
)
