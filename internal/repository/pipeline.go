package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/plantnet/marketplace/internal/persistence"
)

const (
	joinedPlantsField = "plants"
	plantObjectIDTmp  = "plantObjectId"
)

// EnrichmentPipeline joins matched orders to their plant and copies the plant's display fields
// onto the order. $unwind without preserveNullAndEmptyArrays drops orders whose plant no longer
// exists. Unparseable plantId values convert to null instead of failing the whole aggregation.
func EnrichmentPipeline(match bson.D) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$addFields", Value: bson.D{
			{Key: plantObjectIDTmp, Value: bson.D{{Key: "$convert", Value: bson.D{
				{Key: "input", Value: "$plantId"},
				{Key: "to", Value: "objectId"},
				{Key: "onError", Value: nil},
				{Key: "onNull", Value: nil},
			}}}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: persistence.PlantsCollection},
			{Key: "localField", Value: plantObjectIDTmp},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: joinedPlantsField},
		}}},
		{{Key: "$unwind", Value: "$" + joinedPlantsField}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "name", Value: "$" + joinedPlantsField + ".name"},
			{Key: "category", Value: "$" + joinedPlantsField + ".category"},
			{Key: "image", Value: "$" + joinedPlantsField + ".image"},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: joinedPlantsField, Value: 0},
			{Key: plantObjectIDTmp, Value: 0},
		}}},
	}
}
