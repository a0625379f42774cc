package validators

import "go.mongodb.org/mongo-driver/bson"

var WishlistValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"_id", "items", "updated_at"},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 64,
			},

			"items": bson.M{
				"bsonType": "array",
				"maxItems": 200,
				"items": bson.M{
					"bsonType": "object",
					"required": []string{"id", "name", "estimated_budget", "priority", "added_date"},
					"properties": bson.M{
						"id": bson.M{
							"bsonType":  "string",
							"minLength": 1,
							"maxLength": 64,
						},
						"name": bson.M{
							"bsonType":  "string",
							"minLength": 2,
							"maxLength": 120,
						},
						"estimated_budget": bson.M{
							"bsonType": "number",
							"minimum":  0,
						},
						"priority": bson.M{
							"bsonType": "string",
							"enum":     []string{"low", "medium", "high"},
						},
						"added_date": bson.M{
							"bsonType": "date",
						},
						"tour_id": bson.M{
							"bsonType": "string",
						},
					},
				},
			},

			"updated_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
