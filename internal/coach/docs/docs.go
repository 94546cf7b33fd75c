// Package docs registers the Swagger document of the coach API.
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
        "/trades": {
            "post": {"tags": ["trading"], "summary": "Execute a paper trade", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "X-User-ID", "in": "header", "required": true},
                    {"description": "Trade to execute", "name": "trade", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.TradeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TradeOutcome"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.TradeOutcome"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.TradeOutcome"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.TradeOutcome"}}
                }
            }
        },
        "/portfolio": {
            "get": {"tags": ["trading"], "summary": "Get the portfolio", "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "User ID", "name": "X-User-ID", "in": "header", "required": true}],
                "responses": {"200": {"description": "OK"}, "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}
            }
        },
        "/market/assets": {
            "get": {"tags": ["market"], "summary": "List assets", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/market/assets/{symbol}/history": {
            "get": {"tags": ["market"], "summary": "Get price history", "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "Asset symbol", "name": "symbol", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}
            }
        },
        "/lessons": {
            "get": {"tags": ["lessons"], "summary": "Get lesson progress", "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "User ID", "name": "X-User-ID", "in": "header", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/lessons/advance": {
            "post": {"tags": ["lessons"], "summary": "Unlock the next lesson", "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "User ID", "name": "X-User-ID", "in": "header", "required": true}],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}
            }
        },
        "/expenses": {
            "get": {"tags": ["activity"], "summary": "List expenses", "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "User ID", "name": "X-User-ID", "in": "header", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {"tags": ["activity"], "summary": "Log an expense", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "User ID", "name": "X-User-ID", "in": "header", "required": true}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}
            }
        },
        "/incomes": {
            "post": {"tags": ["activity"], "summary": "Log an income", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "User ID", "name": "X-User-ID", "in": "header", "required": true}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}
            }
        },
        "/streak": {
            "get": {"tags": ["activity"], "summary": "Get the logging streak", "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "User ID", "name": "X-User-ID", "in": "header", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/coach/summary": {
            "get": {"tags": ["coach"], "summary": "Get the weekly financial snapshot", "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "User ID", "name": "X-User-ID", "in": "header", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/simulator/runs": {
            "post": {"tags": ["simulator"], "summary": "Run an investment simulation", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "User ID", "name": "X-User-ID", "in": "header", "required": true}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}
            }
        },
        "/onboarding": {
            "post": {"tags": ["users"], "summary": "Complete onboarding", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "User ID", "name": "X-User-ID", "in": "header", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}
            }
        },
        "/users/me": {
            "get": {"tags": ["users"], "summary": "Get the profile", "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "User ID", "name": "X-User-ID", "in": "header", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "dto.TradeRequest": {"type": "object", "properties": {
            "symbol": {"type": "string", "example": "TECH"},
            "action": {"type": "string", "example": "buy"},
            "amount": {"type": "number", "example": 250},
            "asset_type": {"type": "string", "example": "Stock"}
        }},
        "dto.TradeOutcome": {"type": "object", "properties": {
            "status": {"type": "string"},
            "message": {"type": "string"},
            "advice": {"type": "string"},
            "symbol": {"type": "string"},
            "trade_id": {"type": "string"},
            "action": {"type": "string"},
            "price": {"type": "number"},
            "shares": {"type": "number"},
            "average_cost": {"type": "number"}
        }}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Frugal Friend Coach API",
	Description:      "Paper trading ledger and progress gated financial coach.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
