// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/server/main.go -o docs
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
        "/hooks/autoname": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["hooks"],
                "summary": "Assign a series name",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.HookRequest"}}],
                "responses": {"200": {"description": "Assigned name"}, "422": {"description": "Invalid document data"}}
            }
        },
        "/hooks/validate": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["hooks"],
                "summary": "Apply location rules",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.HookRequest"}}],
                "responses": {"200": {"description": "Updated document"}, "422": {"description": "Rule violation"}}
            }
        },
        "/hooks/saved": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["hooks"],
                "summary": "Record a saved version",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.HookRequest"}}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/query/warehouses": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["query"],
                "summary": "Search warehouses valid for a location",
                "parameters": [
                    {"type": "string", "name": "txt", "in": "query"},
                    {"type": "integer", "name": "start", "in": "query"},
                    {"type": "integer", "name": "page_len", "in": "query"},
                    {"type": "string", "name": "location", "in": "query"},
                    {"type": "string", "name": "shipping_location", "in": "query"},
                    {"type": "string", "name": "dispatch_location", "in": "query"},
                    {"type": "string", "name": "parent_doctype", "in": "query"},
                    {"type": "string", "name": "parent", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/query/addresses": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["query"],
                "summary": "Search addresses valid for a shipping or dispatch location",
                "parameters": [
                    {"type": "string", "name": "txt", "in": "query"},
                    {"type": "string", "name": "location", "in": "query"},
                    {"type": "string", "name": "shipping_location", "in": "query"},
                    {"type": "string", "name": "dispatch_location", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/locations/{name}/warehouses": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["query"],
                "summary": "List warehouses valid for a location",
                "parameters": [{"type": "string", "name": "name", "in": "path", "required": true}, {"type": "integer", "name": "offset", "in": "query", "default": 0}, {"type": "integer", "name": "limit", "in": "query", "default": 20}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/reports/location-coverage": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["reports"],
                "summary": "Export location coverage",
                "parameters": [{"type": "string", "name": "format", "in": "query"}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid format"}}
            }
        }
    },
    "definitions": {
        "handler.HookRequest": {
            "type": "object",
            "required": ["doc"],
            "properties": {
                "doc": {"type": "object"},
                "previous": {"type": "object"},
                "today": {"type": "string", "example": "2025-04-01"}
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
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Location Based Series API",
	Description:      "Naming series and location validation hooks for transaction documents.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
