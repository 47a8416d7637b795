// Package docs registers the generated OpenAPI specification for the
// pulse service with swag so echo-swagger can serve it.
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
        "/pulse": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pulse"],
                "summary": "Get the pulse overview",
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/pulse/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pulse"],
                "summary": "Get the comparative daily history",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Trailing window in days (default 90, clamped to 1-365)",
                        "name": "days",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/pulse/{overlord}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pulse"],
                "summary": "Get one overlord's detail",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Overlord key",
                        "name": "overlord",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/jobs/pulse/run": {
            "get": {
                "produces": ["application/json"],
                "tags": ["jobs"],
                "summary": "Trigger a pulse ingestion run",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"},
                    "409": {"description": "Conflict"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/admin/pulse/refresh": {
            "post": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Trigger a pulse ingestion run (admin)",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"},
                    "409": {"description": "Conflict"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/admin/pulse/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Get operational pulse status (admin)",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Overlord Pulse API",
	Description:      "News volume and sentiment tracking for the overlord roster.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
