package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"booking_id",
			"session_id",
			"tour",
			"guest_info",
			"quote",
			"status",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType":  "string",
				"minLength": 36,
				"maxLength": 36,
			},

			"booking_id": bson.M{
				"bsonType": "string",
				"pattern":  "^ST[0-9]{6}$",
			},

			"session_id": bson.M{
				"bsonType":  "string",
				"minLength": 36,
				"maxLength": 36,
			},

			"user_id": bson.M{
				"bsonType":  "string",
				"maxLength": 64,
			},

			"tour": bson.M{
				"bsonType": "object",
				"required": []string{"_id", "name", "price"},
			},

			"guest_info": bson.M{
				"bsonType": "object",
				"required": []string{"number_of_guests", "lead_guest"},
				"properties": bson.M{
					"number_of_guests": bson.M{
						"bsonType": []string{"int", "long"},
						"minimum":  1,
						"maximum":  50,
					},
					"lead_guest": bson.M{
						"bsonType": "object",
						"required": []string{"first_name", "last_name", "email", "phone"},
					},
				},
			},

			"quote": bson.M{
				"bsonType": "object",
				"required": []string{"subtotal", "service_fee", "taxes", "total"},
			},

			"status": bson.M{
				"bsonType": "string",
				"enum":     []string{"confirmed"},
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
