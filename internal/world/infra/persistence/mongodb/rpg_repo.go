// Package mongodb 把每个设定存成一个文档，_id 为设定名。
package mongodb

import (
	"context"
	"errors"

	"RpgTools/internal/world/entity"
	"RpgTools/internal/world/infra/persistence/model"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const defaultCollectionName = "rpg_settings"

var errNilCollection = errors.New("mongodb rpg collection is nil")

type RpgRepository struct {
	coll *mongo.Collection
}

func NewRpgRepository(db *mongo.Database, collection string) *RpgRepository {
	if collection == "" {
		collection = defaultCollectionName
	}
	return &RpgRepository{
		coll: db.Collection(collection),
	}
}

func (r *RpgRepository) Load(ctx context.Context, setting string) (*entity.RpgData, error) {
	if r == nil || r.coll == nil {
		return nil, errNilCollection
	}

	var doc model.SettingDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": setting}).Decode(&doc)
	if err == nil {
		return model.DataFromDoc(doc)
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entity.NewRpgData(setting), nil
	}
	return nil, err
}

// Save 整体覆盖文档。过滤条件带上版本号，旧快照不会覆盖新数据。
func (r *RpgRepository) Save(ctx context.Context, s *entity.RpgPersistSnapshot) error {
	if s == nil {
		return nil
	}
	if r == nil || r.coll == nil {
		return errNilCollection
	}

	doc := model.SnapshotToDoc(s)
	_, err := r.coll.ReplaceOne(
		ctx,
		bson.M{"_id": doc.Setting, "version": bson.M{"$lte": doc.Version}},
		doc,
		options.Replace().SetUpsert(true),
	)
	// 版本更新的文档已存在时，upsert 会撞主键，此时视为已被新版本覆盖
	if mongo.IsDuplicateKeyError(err) {
		return nil
	}
	return err
}
