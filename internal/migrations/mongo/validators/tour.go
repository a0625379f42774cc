package validators

import "go.mongodb.org/mongo-driver/bson"

var TourValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"_id", "name", "price", "category"},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 120,
			},

			"price": bson.M{
				"bsonType": "number",
				"minimum":  0,
			},

			"category": bson.M{
				"bsonType": "string",
				"enum":     []string{"historical", "adventure", "wellness", "cultural"},
			},

			"rating": bson.M{
				"bsonType": "number",
				"minimum":  0,
				"maximum":  5,
			},

			"review_count": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  0,
			},

			"highlights": bson.M{
				"bsonType": "array",
				"items":    bson.M{"bsonType": "string"},
			},

			"includes": bson.M{
				"bsonType": "array",
				"items":    bson.M{"bsonType": "string"},
			},
		},
	},
}
