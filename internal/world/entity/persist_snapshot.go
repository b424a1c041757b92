package entity

// RpgPersistSnapshot 是一次落盘的完整数据，各切片按 id 顺序排列。
type RpgPersistSnapshot struct {
	Version   uint64
	Setting   string
	Buildings []Building
	Mountains []Mountain
	Rivers    []River
	Streets   []Street
	Towns     []Town
}
