// Package docs registers the OpenAPI document served by the Swagger UI.
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
        "/api/v1/sentiment/analyze": {
            "post": {
                "tags": ["Sentiment"],
                "summary": "Analyze an influencer for a brand",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/analyzeReq"}},
                    {"in": "query", "name": "include_posts", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Validation failed"},
                    "429": {"description": "Too many requests"}
                }
            }
        },
        "/api/v1/sentiment/posts": {
            "get": {
                "tags": ["Sentiment"],
                "summary": "Preview synthetic posts",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "query", "name": "influencer", "type": "string", "required": true},
                    {"in": "query", "name": "brand", "type": "string"},
                    {"in": "query", "name": "platform", "type": "string"},
                    {"in": "query", "name": "limit", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Validation failed"}}
            }
        },
        "/api/v1/trackers": {
            "get": {
                "tags": ["Trackers"],
                "summary": "List trackers",
                "parameters": [
                    {"in": "query", "name": "brand", "type": "string"},
                    {"in": "query", "name": "platform", "type": "string"},
                    {"in": "query", "name": "page", "type": "integer"},
                    {"in": "query", "name": "limit", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Trackers"],
                "summary": "Create a tracker",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/trackerReq"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Validation failed"}}
            }
        },
        "/api/v1/trackers/{id}": {
            "get": {
                "tags": ["Trackers"],
                "summary": "Get a tracker",
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "put": {
                "tags": ["Trackers"],
                "summary": "Update a tracker",
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/trackerReq"}}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "tags": ["Trackers"],
                "summary": "Delete a tracker",
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        },
        "/api/v1/briefs": {
            "get": {
                "tags": ["Briefs"],
                "summary": "List briefs",
                "parameters": [
                    {"in": "query", "name": "tracker_id", "type": "string"},
                    {"in": "query", "name": "page", "type": "integer"},
                    {"in": "query", "name": "limit", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/briefs/generate": {
            "post": {
                "tags": ["Briefs"],
                "summary": "Generate a brief now",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/generateReq"}}],
                "responses": {"201": {"description": "Created"}, "404": {"description": "Tracker not found"}}
            }
        },
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}, "503": {"description": "A dependency is down"}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}}
    },
    "definitions": {
        "analyzeReq": {
            "type": "object",
            "required": ["influencer", "brand"],
            "properties": {
                "influencer": {"type": "string"},
                "brand": {"type": "string"},
                "platform": {"type": "string", "enum": ["instagram", "youtube", "tiktok", "twitter"]},
                "limit": {"type": "integer", "minimum": 1, "maximum": 50}
            }
        },
        "trackerReq": {
            "type": "object",
            "properties": {
                "influencer": {"type": "string"},
                "brand": {"type": "string"},
                "platform": {"type": "string"},
                "notes": {"type": "string"}
            }
        },
        "generateReq": {
            "type": "object",
            "required": ["tracker_id"],
            "properties": {"tracker_id": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "BrandPulse API",
	Description:      "Influencer sentiment and brand alignment analysis.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
