// Package docs registers the OpenAPI document served at /swagger/*.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/appointments": {
            "get": {
                "tags": ["appointments"],
                "summary": "List a patient's appointments for a day",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "email", "in": "query", "required": true},
                    {"type": "string", "name": "date", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Appointment"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "post": {
                "tags": ["appointments"],
                "summary": "Book an appointment",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Appointment"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/InsertResult"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/appointments/{id}": {
            "get": {
                "tags": ["appointments"],
                "summary": "Get an appointment by id",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Appointment"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "put": {
                "tags": ["appointments"],
                "summary": "Record the payment for an appointment",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object", "properties": {"payment": {"$ref": "#/definitions/Payment"}}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/UpdateResult"}}
                }
            }
        },
        "/doctors": {
            "get": {
                "tags": ["doctors"],
                "summary": "List doctors",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Doctor"}}}
                }
            },
            "post": {
                "tags": ["doctors"],
                "summary": "Add a doctor with a profile image",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"type": "string", "name": "name", "in": "formData", "required": true},
                    {"type": "string", "name": "email", "in": "formData", "required": true},
                    {"type": "file", "name": "image", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/InsertResult"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/users": {
            "post": {
                "tags": ["users"],
                "summary": "Register a user",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/User"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/InsertResult"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "put": {
                "tags": ["users"],
                "summary": "Create or update a user by email",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/User"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/UpdateResult"}}
                }
            }
        },
        "/users/admin": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Grant the admin role to a user",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"type": "object", "properties": {"email": {"type": "string"}}}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/UpdateResult"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/users/{email}": {
            "get": {
                "tags": ["users"],
                "summary": "Report whether a user is an admin",
                "parameters": [{"type": "string", "name": "email", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"admin": {"type": "boolean"}}}}
                }
            }
        },
        "/create-payment-intent": {
            "post": {
                "tags": ["payments"],
                "summary": "Create a card payment intent",
                "parameters": [
                    {"type": "string", "name": "Idempotency-Key", "in": "header"},
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object", "properties": {"price": {"type": "number"}}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"clientSecret": {"type": "string"}}}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/Error"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        }
    },
    "definitions": {
        "Error": {"type": "object", "properties": {"error": {"type": "string"}}},
        "Payment": {
            "type": "object",
            "properties": {
                "amount": {"type": "number"},
                "transaction": {"type": "string"},
                "last4": {"type": "string"},
                "created": {"type": "integer"}
            }
        },
        "Appointment": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "patientName": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "date": {"type": "string"},
                "time": {"type": "string"},
                "serviceName": {"type": "string"},
                "price": {"type": "number"},
                "payment": {"$ref": "#/definitions/Payment"}
            }
        },
        "Doctor": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "image": {"type": "string", "format": "byte"}
            }
        },
        "User": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "displayName": {"type": "string"}
            }
        },
        "InsertResult": {
            "type": "object",
            "properties": {
                "acknowledged": {"type": "boolean"},
                "insertedId": {"type": "string"}
            }
        },
        "UpdateResult": {
            "type": "object",
            "properties": {
                "acknowledged": {"type": "boolean"},
                "matchedCount": {"type": "integer"},
                "modifiedCount": {"type": "integer"},
                "upsertedCount": {"type": "integer"},
                "upsertedId": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Doctors Portal API",
	Description:      "Appointment booking, doctor profiles, admin roles and card payment intents.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
