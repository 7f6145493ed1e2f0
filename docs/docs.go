// Package docs registers the API description served at /swagger.
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
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/admin/venue-layouts": {
            "get": {"tags": ["layouts"], "summary": "List venue layouts", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["layouts"], "summary": "Create a venue layout", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/admin/venue-layouts/{id}/sessions": {
            "post": {"tags": ["sessions"], "summary": "Open an editing session on a layout", "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"201": {"description": "Created"}}}
        },
        "/admin/layout-sessions/{sessionId}/quick-stands": {
            "post": {"tags": ["builder"], "summary": "Add a stand with one tier, one section and default rows", "security": [{"BearerAuth": []}],
                "parameters": [{"name": "sessionId", "in": "path", "required": true, "type": "string"}],
                "responses": {"201": {"description": "Created"}}}
        },
        "/admin/layout-sessions/{sessionId}/save": {
            "post": {"tags": ["sessions"], "summary": "Persist the session's layout", "security": [{"BearerAuth": []}],
                "parameters": [{"name": "sessionId", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/venue-layouts/{id}/summary": {
            "get": {"tags": ["layouts"], "summary": "Capacity per stand and layout totals",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Venue Layout Builder API",
	Description:      "Builds and serves stadium seating layouts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
