// Package docs serves the OpenAPI description of the championship API.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/register": {
            "post": {
                "description": "Stores the player, assigns a registration code and emails it.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["players"],
                "summary": "Register a player",
                "parameters": [
                    {"description": "Player details", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/services.RegisterPlayerInput"}}
                ],
                "responses": {
                    "201": {"description": "message and player", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Malformed body", "schema": {"$ref": "#/definitions/handlers.errorEnvelope"}},
                    "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/handlers.errorEnvelope"}},
                    "422": {"description": "Field errors", "schema": {"type": "object", "additionalProperties": true}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/handlers.errorEnvelope"}}
                }
            }
        },
        "/players": {
            "get": {
                "description": "Newest first. search filters by name, email or address.",
                "produces": ["application/json"],
                "tags": ["players"],
                "summary": "List registered players",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Page size", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Fuzzy search", "name": "search", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PlayerPage"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorEnvelope"}}
                }
            }
        },
        "/team-pairings": {
            "get": {
                "description": "Round-robin over clubs built from complete registrations.",
                "produces": ["application/json"],
                "tags": ["schedules"],
                "summary": "League schedule",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "1 or 2", "name": "legs", "in": "query"},
                    {"type": "string", "description": "Fuzzy filter on club, league or player", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorEnvelope"}}
                }
            }
        },
        "/team-pairings/export.xlsx": {
            "get": {
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["schedules"],
                "summary": "League schedule as an Excel workbook",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "1 or 2", "name": "legs", "in": "query"},
                    {"type": "string", "description": "Fuzzy filter", "name": "q", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}
            }
        },
        "/knockout": {
            "get": {
                "produces": ["application/json"],
                "tags": ["schedules"],
                "summary": "Knockout bracket",
                "parameters": [
                    {"type": "integer", "description": "Shuffle seed for a reproducible draw", "name": "seed", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorEnvelope"}}
                }
            }
        },
        "/knockout/export.xlsx": {
            "get": {
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["schedules"],
                "summary": "Knockout bracket as an Excel workbook",
                "parameters": [
                    {"type": "integer", "description": "Shuffle seed", "name": "seed", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}
            }
        },
        "/playoffs": {
            "get": {
                "produces": ["application/json"],
                "tags": ["schedules"],
                "summary": "Random playoff round over individual players",
                "parameters": [
                    {"type": "integer", "description": "Shuffle seed", "name": "seed", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorEnvelope"}}
                }
            }
        },
        "/admin/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Admin login",
                "parameters": [
                    {"description": "Credentials", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/services.LoginInput"}}
                ],
                "responses": {
                    "200": {"description": "token", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.errorEnvelope"}}
                }
            }
        },
        "/clear-all": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Delete every registered player",
                "responses": {
                    "200": {"description": "message and deletedCount", "schema": {"type": "object", "additionalProperties": true}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.errorEnvelope"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handlers.errorEnvelope"}}
                }
            }
        },
        "/schedules/publish": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Publish the league schedule to object storage",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "1 or 2", "name": "legs", "in": "query"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/storage.UploadResult"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.errorEnvelope"}},
                    "503": {"description": "Storage not configured", "schema": {"$ref": "#/definitions/handlers.errorEnvelope"}}
                }
            }
        },
        "/schedules/{scheduleID}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Remove a published schedule",
                "parameters": [
                    {"type": "string", "description": "Published schedule id", "name": "scheduleID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        }
    },
    "definitions": {
        "handlers.errorEnvelope": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "services.RegisterPlayerInput": {
            "type": "object",
            "properties": {
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "email": {"type": "string"},
                "address": {"type": "string"},
                "league": {"type": "string"},
                "club": {"type": "string"}
            }
        },
        "services.LoginInput": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "models.Player": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "email": {"type": "string"},
                "address": {"type": "string"},
                "league": {"type": "string"},
                "club": {"type": "string"},
                "code": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "models.PlayerPage": {
            "type": "object",
            "properties": {
                "players": {"type": "array", "items": {"$ref": "#/definitions/models.Player"}},
                "total": {"type": "integer"},
                "page": {"type": "integer"},
                "totalPages": {"type": "integer"}
            }
        },
        "storage.UploadResult": {
            "type": "object",
            "properties": {
                "key": {"type": "string"},
                "location": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Championship API",
	Description:      "Player registration and schedule generation for the championship.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
